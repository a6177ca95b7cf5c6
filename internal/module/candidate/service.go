package candidate

import (
	"context"
	"net/mail"
	"strings"

	"github.com/hrstack/hrms/internal/domain"
)

// candidateService implements domain.CandidateService.
type candidateService struct {
	repo domain.CandidateRepository
}

// NewCandidateService creates a CandidateService with the given repository.
func NewCandidateService(repo domain.CandidateRepository) domain.CandidateService {
	return &candidateService{repo: repo}
}

// CreateCandidate validates and normalizes the input, applies audit defaults,
// and persists it.
func (s *candidateService) CreateCandidate(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Email = strings.TrimSpace(c.Email)

	if c.FullName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "full_name is required", nil)
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return nil, domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
		}
	}
	if c.IsActive == "" {
		c.IsActive = domain.ActiveYes
	}
	c.StampCreateDefaults()

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCandidate retrieves a candidate by ID.
func (s *candidateService) GetCandidate(ctx context.Context, id uint) (*domain.Candidate, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCandidates returns a paginated list of candidates.
func (s *candidateService) ListCandidates(ctx context.Context, p domain.ListParams) (*domain.PageResult[domain.Candidate], error) {
	return s.repo.List(ctx, p)
}

// UpdateCandidate loads the existing candidate, merges the changed fields, and saves.
func (s *candidateService) UpdateCandidate(ctx context.Context, id uint, c *domain.Candidate) (*domain.Candidate, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(c.FullName); name != "" {
		existing.FullName = name
	}
	if email := strings.TrimSpace(c.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
		}
		existing.Email = email
	}
	if c.Phone != "" {
		existing.Phone = c.Phone
	}
	if c.IsActive != "" {
		existing.IsActive = c.IsActive
	}
	existing.StampUpdate(c.UpdatedBy)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCandidate removes a candidate by ID.
func (s *candidateService) DeleteCandidate(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
