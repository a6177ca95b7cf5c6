package domain

import (
	"context"
	"time"
)

// EmploymentContract represents a contract between the company and a
// candidate. Responses eagerly include the candidate's id and full name.
type EmploymentContract struct {
	AuditModel
	CandidateID       uint          `gorm:"column:candidate_id;not null" json:"candidate_id"`
	ContractStartDate time.Time     `gorm:"column:contract_start_date" json:"contract_start_date"`
	ContractEndDate   time.Time     `gorm:"column:contract_end_date" json:"contract_end_date"`
	ContractType      string        `gorm:"column:contract_type;size:100" json:"contract_type"`
	DocumentPath      string        `gorm:"column:document_path;size:500" json:"document_path"`
	Description       string        `gorm:"column:description;size:1000" json:"description"`
	Candidate         *CandidateRef `gorm:"foreignKey:CandidateID;references:ID" json:"contracted_candidate,omitempty"`
}

// TableName maps EmploymentContract onto the legacy HRMS table.
func (EmploymentContract) TableName() string {
	return "hrms_d_employment_contract"
}

// EmploymentContractRepository defines the data access interface for contracts.
type EmploymentContractRepository interface {
	Create(ctx context.Context, ec *EmploymentContract) error
	GetByID(ctx context.Context, id uint) (*EmploymentContract, error)
	List(ctx context.Context, p ListParams) (*PageResult[EmploymentContract], error)
	Update(ctx context.Context, ec *EmploymentContract) error
	Delete(ctx context.Context, id uint) error
}

// EmploymentContractService defines the business logic interface for contracts.
type EmploymentContractService interface {
	CreateContract(ctx context.Context, ec *EmploymentContract) (*EmploymentContract, error)
	GetContract(ctx context.Context, id uint) (*EmploymentContract, error)
	ListContracts(ctx context.Context, p ListParams) (*PageResult[EmploymentContract], error)
	UpdateContract(ctx context.Context, id uint, ec *EmploymentContract) (*EmploymentContract, error)
	DeleteContract(ctx context.Context, id uint) error
}
