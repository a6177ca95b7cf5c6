package domain

import "context"

// Branch represents an office branch in the branch master table.
type Branch struct {
	AuditModel
	BranchName string `gorm:"column:branch_name;size:255;not null" json:"branch_name"`
	Location   string `gorm:"column:location;size:255" json:"location"`
	Address    string `gorm:"column:address;size:500" json:"address"`
	IsActive   string `gorm:"column:is_active;size:1;default:Y" json:"is_active"`
}

// TableName maps Branch onto the legacy HRMS table.
func (Branch) TableName() string {
	return "hrms_m_branch_master"
}

// BranchRepository defines the data access interface for branches.
type BranchRepository interface {
	Create(ctx context.Context, b *Branch) error
	GetByID(ctx context.Context, id uint) (*Branch, error)
	List(ctx context.Context, p ListParams) (*PageResult[Branch], error)
	Update(ctx context.Context, b *Branch) error
	Delete(ctx context.Context, id uint) error
}

// BranchService defines the business logic interface for branches.
type BranchService interface {
	CreateBranch(ctx context.Context, b *Branch) (*Branch, error)
	GetBranch(ctx context.Context, id uint) (*Branch, error)
	ListBranches(ctx context.Context, p ListParams) (*PageResult[Branch], error)
	UpdateBranch(ctx context.Context, id uint, b *Branch) (*Branch, error)
	DeleteBranch(ctx context.Context, id uint) error
}
