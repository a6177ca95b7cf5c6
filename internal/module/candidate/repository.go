package candidate

import (
	"context"

	"gorm.io/gorm"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// candidateOrder is the fixed tiebreak sequence for candidate listing.
var candidateOrder = []string{
	"full_name asc",
	"updatedate desc",
	"createdate desc",
}

// candidateRepository implements domain.CandidateRepository on the generic
// engine. Exists is promoted from the engine and backs the foreign-key checks
// run by the contract and appraisal services.
type candidateRepository struct {
	*pkg.Repository[domain.Candidate]
}

// NewCandidateRepository creates a CandidateRepository backed by the given database.
func NewCandidateRepository(db *gorm.DB) domain.CandidateRepository {
	return &candidateRepository{
		Repository: pkg.NewRepository[domain.Candidate](db, "candidate", candidateOrder),
	}
}

// List returns one page of candidates: contains-search across full_name and
// email plus an inclusive createdate range.
func (r *candidateRepository) List(ctx context.Context, p domain.ListParams) (*domain.PageResult[domain.Candidate], error) {
	page, size := p.PageSize()
	filters := []pkg.Scope{
		pkg.SearchContains(p.Search, "full_name", "email"),
		pkg.DateRange("createdate", p.StartDate, p.EndDate),
	}
	return r.Repository.List(ctx, filters, page, size)
}
