package statutoryrate

import (
	"context"
	"strings"

	"github.com/hrstack/hrms/internal/domain"
)

// rateService implements domain.StatutoryRateService.
type rateService struct {
	repo domain.StatutoryRateRepository
}

// NewRateService creates a StatutoryRateService with the given repository.
func NewRateService(repo domain.StatutoryRateRepository) domain.StatutoryRateService {
	return &rateService{repo: repo}
}

// CreateRate normalizes the input, applies audit defaults, and persists it.
func (s *rateService) CreateRate(ctx context.Context, r *domain.StatutoryRate) (*domain.StatutoryRate, error) {
	r.RateType = strings.TrimSpace(r.RateType)
	if r.RateType == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "rate_type is required", nil)
	}
	if r.IsActive == "" {
		r.IsActive = domain.ActiveYes
	}
	r.StampCreateDefaults()

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// GetRate retrieves a statutory rate by ID.
func (s *rateService) GetRate(ctx context.Context, id uint) (*domain.StatutoryRate, error) {
	return s.repo.GetByID(ctx, id)
}

// ListRates returns a paginated list of statutory rates.
func (s *rateService) ListRates(ctx context.Context, p domain.ListParams) (*domain.PageResult[domain.StatutoryRate], error) {
	return s.repo.List(ctx, p)
}

// UpdateRate loads the existing rate, merges the changed fields, and saves.
func (s *rateService) UpdateRate(ctx context.Context, id uint, r *domain.StatutoryRate) (*domain.StatutoryRate, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if rt := strings.TrimSpace(r.RateType); rt != "" {
		existing.RateType = rt
	}
	if r.RateValue != 0 {
		existing.RateValue = r.RateValue
	}
	if !r.EffectiveFrom.IsZero() {
		existing.EffectiveFrom = r.EffectiveFrom
	}
	if !r.EffectiveTo.IsZero() {
		existing.EffectiveTo = r.EffectiveTo
	}
	if r.IsActive != "" {
		existing.IsActive = r.IsActive
	}
	existing.StampUpdate(r.UpdatedBy)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteRate removes a statutory rate by ID.
func (s *rateService) DeleteRate(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
