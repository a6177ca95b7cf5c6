package domain

import (
	"context"
	"time"
)

// Appraisal represents one appraisal entry for a candidate.
type Appraisal struct {
	AuditModel
	CandidateID   uint          `gorm:"column:candidate_id;not null" json:"candidate_id"`
	ReviewPeriod  string        `gorm:"column:review_period;size:100" json:"review_period"`
	AppraisalDate time.Time     `gorm:"column:appraisal_date" json:"appraisal_date"`
	Rating        float64       `gorm:"column:rating" json:"rating"`
	Remarks       string        `gorm:"column:remarks;size:1000" json:"remarks"`
	Candidate     *CandidateRef `gorm:"foreignKey:CandidateID;references:ID" json:"appraised_candidate,omitempty"`
}

// TableName maps Appraisal onto the legacy HRMS table.
func (Appraisal) TableName() string {
	return "hrms_d_appraisal_entry"
}

// AppraisalRepository defines the data access interface for appraisals.
type AppraisalRepository interface {
	Create(ctx context.Context, a *Appraisal) error
	GetByID(ctx context.Context, id uint) (*Appraisal, error)
	List(ctx context.Context, p ListParams) (*PageResult[Appraisal], error)
	Update(ctx context.Context, a *Appraisal) error
	Delete(ctx context.Context, id uint) error
}

// AppraisalService defines the business logic interface for appraisals.
type AppraisalService interface {
	CreateAppraisal(ctx context.Context, a *Appraisal) (*Appraisal, error)
	GetAppraisal(ctx context.Context, id uint) (*Appraisal, error)
	ListAppraisals(ctx context.Context, p ListParams) (*PageResult[Appraisal], error)
	UpdateAppraisal(ctx context.Context, id uint, a *Appraisal) (*Appraisal, error)
	DeleteAppraisal(ctx context.Context, id uint) error
}
