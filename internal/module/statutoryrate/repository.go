package statutoryrate

import (
	"context"

	"gorm.io/gorm"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// rateOrder is the fixed tiebreak sequence for statutory rate listing.
var rateOrder = []string{
	"rate_type asc",
	"updatedate desc",
	"createdate desc",
}

// rateRepository implements domain.StatutoryRateRepository on the generic engine.
type rateRepository struct {
	*pkg.Repository[domain.StatutoryRate]
}

// NewRateRepository creates a StatutoryRateRepository backed by the given database.
func NewRateRepository(db *gorm.DB) domain.StatutoryRateRepository {
	return &rateRepository{
		Repository: pkg.NewRepository[domain.StatutoryRate](db, "statutory rate", rateOrder),
	}
}

// List returns one page of statutory rates: contains-search on rate_type plus
// an inclusive createdate range.
func (r *rateRepository) List(ctx context.Context, p domain.ListParams) (*domain.PageResult[domain.StatutoryRate], error) {
	page, size := p.PageSize()
	filters := []pkg.Scope{
		pkg.SearchContains(p.Search, "rate_type"),
		pkg.DateRange("createdate", p.StartDate, p.EndDate),
	}
	return r.Repository.List(ctx, filters, page, size)
}
