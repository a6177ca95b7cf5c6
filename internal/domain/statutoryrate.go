package domain

import (
	"context"
	"time"
)

// StatutoryRate represents one statutory deduction/contribution rate
// (tax bands, social security, levies) with its validity window.
type StatutoryRate struct {
	AuditModel
	RateType      string    `gorm:"column:rate_type;size:100;not null" json:"rate_type"`
	RateValue     float64   `gorm:"column:rate_value" json:"rate_value"`
	EffectiveFrom time.Time `gorm:"column:effective_from" json:"effective_from"`
	EffectiveTo   time.Time `gorm:"column:effective_to" json:"effective_to"`
	IsActive      string    `gorm:"column:is_active;size:1;default:Y" json:"is_active"`
}

// TableName maps StatutoryRate onto the legacy HRMS table.
func (StatutoryRate) TableName() string {
	return "hrms_m_statutory_rate"
}

// StatutoryRateRepository defines the data access interface for statutory rates.
type StatutoryRateRepository interface {
	Create(ctx context.Context, r *StatutoryRate) error
	GetByID(ctx context.Context, id uint) (*StatutoryRate, error)
	List(ctx context.Context, p ListParams) (*PageResult[StatutoryRate], error)
	Update(ctx context.Context, r *StatutoryRate) error
	Delete(ctx context.Context, id uint) error
}

// StatutoryRateService defines the business logic interface for statutory rates.
type StatutoryRateService interface {
	CreateRate(ctx context.Context, r *StatutoryRate) (*StatutoryRate, error)
	GetRate(ctx context.Context, id uint) (*StatutoryRate, error)
	ListRates(ctx context.Context, p ListParams) (*PageResult[StatutoryRate], error)
	UpdateRate(ctx context.Context, id uint, r *StatutoryRate) (*StatutoryRate, error)
	DeleteRate(ctx context.Context, id uint) error
}
