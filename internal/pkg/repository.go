package pkg

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hrstack/hrms/internal/domain"
)

// Keyed is satisfied by every record embedding domain.AuditModel.
type Keyed interface {
	PrimaryKey() uint
}

// Repository implements the generic paginated CRUD pattern shared by every
// HRMS entity. Entities differ only in their filter conjunction, their fixed
// ordering sequence, and any eager-loaded relations, all of which are
// supplied at construction.
type Repository[T Keyed] struct {
	db       *gorm.DB
	entity   string   // display name used in error messages, e.g. "branch"
	order    []string // fixed ordering applied to every list query
	preloads []string // relations eagerly loaded on reads and returned writes
}

// NewRepository creates a Repository for one entity. order entries are raw
// ORDER BY fragments ("branch_name asc") applied in sequence; they come from
// code, never from request input.
func NewRepository[T Keyed](db *gorm.DB, entity string, order []string, preloads ...string) *Repository[T] {
	return &Repository[T]{
		db:       db,
		entity:   entity,
		order:    order,
		preloads: preloads,
	}
}

// Create inserts a new record. When the entity eagerly includes a relation,
// the record is re-read so the caller gets the joined display fields.
func (r *Repository[T]) Create(ctx context.Context, rec *T) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return domain.NewAppError(domain.CodeData, "error creating "+r.entity, err)
	}
	if len(r.preloads) > 0 {
		return r.reload(ctx, rec)
	}
	return nil
}

// GetByID retrieves a record by primary key, with any eager relations.
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var rec T
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	if err := q.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewAppError(domain.CodeNotFound, r.entity+" not found", nil)
		}
		return nil, domain.NewAppError(domain.CodeUnavailable, "error retrieving "+r.entity, err)
	}
	return &rec, nil
}

// List runs the count and data queries under the identical filter conjunction
// and returns one page. The two queries are separate round trips; pagination
// metadata may skew under concurrent writes, which this layer accepts.
func (r *Repository[T]) List(ctx context.Context, filters []Scope, page, size int) (*domain.PageResult[T], error) {
	base := r.db.WithContext(ctx).Model(new(T)).Scopes(filters...)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, domain.NewAppError(domain.CodeUnavailable, "error retrieving "+r.entity+" list", err)
	}

	q := base.Scopes(Paginate(page, size))
	for _, o := range r.order {
		q = q.Order(o)
	}
	for _, p := range r.preloads {
		q = q.Preload(p)
	}

	var data []T
	if err := q.Find(&data).Error; err != nil {
		return nil, domain.NewAppError(domain.CodeUnavailable, "error retrieving "+r.entity+" list", err)
	}

	return domain.NewPageResult(data, total, page, size), nil
}

// Update saves changes to an existing record and re-reads it when eager
// relations are configured.
func (r *Repository[T]) Update(ctx context.Context, rec *T) error {
	if err := r.db.WithContext(ctx).Save(rec).Error; err != nil {
		return domain.NewAppError(domain.CodeData, "error updating "+r.entity, err)
	}
	if len(r.preloads) > 0 {
		return r.reload(ctx, rec)
	}
	return nil
}

// Delete removes a record by primary key. Deleting an id that does not exist
// is a data error, never a silent success.
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return domain.NewAppError(domain.CodeData, "error deleting "+r.entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewAppError(domain.CodeData, "error deleting "+r.entity, errors.New("record does not exist"))
	}
	return nil
}

// Exists reports whether a record with the given primary key is present.
// It backs the foreign-key existence checks run before dependent writes.
func (r *Repository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, domain.NewAppError(domain.CodeUnavailable, "error checking "+r.entity, err)
	}
	return count > 0, nil
}

// reload re-reads rec by primary key including eager relations.
func (r *Repository[T]) reload(ctx context.Context, rec *T) error {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	if err := q.First(rec, (*rec).PrimaryKey()).Error; err != nil {
		return domain.NewAppError(domain.CodeUnavailable, "error retrieving "+r.entity, err)
	}
	return nil
}
