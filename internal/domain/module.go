package domain

import "context"

// Module is a row of module reference data (the screens/areas other HRMS
// records relate to).
type Module struct {
	AuditModel
	ModuleName  string `gorm:"column:module_name;size:255;not null" json:"module_name"`
	Description string `gorm:"column:description;size:500" json:"description"`
	IsActive    string `gorm:"column:is_active;size:1;default:Y" json:"is_active"`
}

// TableName maps Module onto the legacy HRMS table.
func (Module) TableName() string {
	return "hrms_m_module"
}

// ModuleRepository defines the data access interface for module reference data.
type ModuleRepository interface {
	Create(ctx context.Context, m *Module) error
	GetByID(ctx context.Context, id uint) (*Module, error)
	List(ctx context.Context, p ListParams) (*PageResult[Module], error)
	Update(ctx context.Context, m *Module) error
	Delete(ctx context.Context, id uint) error
}

// ModuleService defines the business logic interface for module reference data.
type ModuleService interface {
	CreateModule(ctx context.Context, m *Module) (*Module, error)
	GetModule(ctx context.Context, id uint) (*Module, error)
	ListModules(ctx context.Context, p ListParams) (*PageResult[Module], error)
	UpdateModule(ctx context.Context, id uint, m *Module) (*Module, error)
	DeleteModule(ctx context.Context, id uint) error
}
