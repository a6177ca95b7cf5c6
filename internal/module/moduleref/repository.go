package moduleref

import (
	"context"

	"gorm.io/gorm"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// moduleOrder is the fixed tiebreak sequence for module listing. It determines
// pagination between pages and is deliberately name-first.
var moduleOrder = []string{
	"module_name asc",
	"updatedate desc",
	"createdate desc",
}

// moduleRepository implements domain.ModuleRepository on the generic engine.
type moduleRepository struct {
	*pkg.Repository[domain.Module]
}

// NewModuleRepository creates a ModuleRepository backed by the given database.
func NewModuleRepository(db *gorm.DB) domain.ModuleRepository {
	return &moduleRepository{
		Repository: pkg.NewRepository[domain.Module](db, "module", moduleOrder),
	}
}

// List returns one page of modules: contains-search on module_name plus the
// coerced active flag.
func (r *moduleRepository) List(ctx context.Context, p domain.ListParams) (*domain.PageResult[domain.Module], error) {
	page, size := p.PageSize()
	filters := []pkg.Scope{
		pkg.SearchContains(p.Search, "module_name"),
		pkg.ActiveFlag(p.IsActive),
	}
	return r.Repository.List(ctx, filters, page, size)
}
