package branch

import (
	"context"

	"gorm.io/gorm"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// branchOrder is the fixed tiebreak sequence for branch listing.
var branchOrder = []string{
	"branch_name asc",
	"updatedate desc",
	"createdate desc",
}

// branchRepository implements domain.BranchRepository on the generic engine.
type branchRepository struct {
	*pkg.Repository[domain.Branch]
}

// NewBranchRepository creates a BranchRepository backed by the given database.
func NewBranchRepository(db *gorm.DB) domain.BranchRepository {
	return &branchRepository{
		Repository: pkg.NewRepository[domain.Branch](db, "branch", branchOrder),
	}
}

// List returns one page of branches matching the filter conjunction:
// contains-search on branch_name plus an inclusive createdate range.
func (r *branchRepository) List(ctx context.Context, p domain.ListParams) (*domain.PageResult[domain.Branch], error) {
	page, size := p.PageSize()
	filters := []pkg.Scope{
		pkg.SearchContains(p.Search, "branch_name"),
		pkg.DateRange("createdate", p.StartDate, p.EndDate),
	}
	return r.Repository.List(ctx, filters, page, size)
}
