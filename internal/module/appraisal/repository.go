package appraisal

import (
	"context"

	"gorm.io/gorm"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// appraisalOrder is the fixed tiebreak sequence for appraisal listing,
// table-qualified because search may join the candidate table.
var appraisalOrder = []string{
	"hrms_d_appraisal_entry.updatedate desc",
	"hrms_d_appraisal_entry.createdate desc",
}

// appraisalRepository implements domain.AppraisalRepository on the generic
// engine, eagerly loading the candidate display fields.
type appraisalRepository struct {
	*pkg.Repository[domain.Appraisal]
}

// NewAppraisalRepository creates an AppraisalRepository backed by the given database.
func NewAppraisalRepository(db *gorm.DB) domain.AppraisalRepository {
	return &appraisalRepository{
		Repository: pkg.NewRepository[domain.Appraisal](
			db, "appraisal entry", appraisalOrder, "Candidate"),
	}
}

// List returns one page of appraisals. Search is a disjunction across the
// joined candidate's full_name and the review_period column; the date range
// applies to createdate; candidate_id narrows to one candidate.
func (r *appraisalRepository) List(ctx context.Context, p domain.ListParams) (*domain.PageResult[domain.Appraisal], error) {
	page, size := p.PageSize()

	filters := []pkg.Scope{
		pkg.DateRange("hrms_d_appraisal_entry.createdate", p.StartDate, p.EndDate),
		pkg.FieldEquals("candidate_id", p.CandidateID),
	}
	if p.Search != "" {
		filters = append(filters,
			joinCandidate,
			pkg.SearchContains(p.Search,
				"hrms_d_candidate_master.full_name",
				"hrms_d_appraisal_entry.review_period",
			),
		)
	}

	return r.Repository.List(ctx, filters, page, size)
}

// joinCandidate joins the candidate master so search can reach full_name.
func joinCandidate(db *gorm.DB) *gorm.DB {
	return db.Joins("LEFT JOIN hrms_d_candidate_master ON hrms_d_candidate_master.id = hrms_d_appraisal_entry.candidate_id")
}
