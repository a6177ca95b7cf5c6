package domain

import "context"

// Candidate represents a person in the candidate master table. Employment
// contracts and appraisals reference candidates by id.
type Candidate struct {
	AuditModel
	FullName string `gorm:"column:full_name;size:255;not null" json:"full_name"`
	Email    string `gorm:"column:email;size:255" json:"email"`
	Phone    string `gorm:"column:phone;size:50" json:"phone"`
	IsActive string `gorm:"column:is_active;size:1;default:Y" json:"is_active"`
}

// TableName maps Candidate onto the legacy HRMS table.
func (Candidate) TableName() string {
	return "hrms_d_candidate_master"
}

// CandidateRef is a read-only projection of a candidate used when a related
// record eagerly includes the candidate's display fields.
type CandidateRef struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"column:full_name" json:"full_name"`
}

// TableName maps CandidateRef onto the same table as Candidate.
func (CandidateRef) TableName() string {
	return "hrms_d_candidate_master"
}

// CandidateDirectory is the capability other entities use to validate a
// candidate foreign key before a write.
type CandidateDirectory interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// CandidateRepository defines the data access interface for candidates.
type CandidateRepository interface {
	CandidateDirectory
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id uint) (*Candidate, error)
	List(ctx context.Context, p ListParams) (*PageResult[Candidate], error)
	Update(ctx context.Context, c *Candidate) error
	Delete(ctx context.Context, id uint) error
}

// CandidateService defines the business logic interface for candidates.
type CandidateService interface {
	CreateCandidate(ctx context.Context, c *Candidate) (*Candidate, error)
	GetCandidate(ctx context.Context, id uint) (*Candidate, error)
	ListCandidates(ctx context.Context, p ListParams) (*PageResult[Candidate], error)
	UpdateCandidate(ctx context.Context, id uint, c *Candidate) (*Candidate, error)
	DeleteCandidate(ctx context.Context, id uint) error
}
