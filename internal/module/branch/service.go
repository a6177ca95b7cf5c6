package branch

import (
	"context"
	"strings"

	"github.com/hrstack/hrms/internal/domain"
)

// branchService implements domain.BranchService.
type branchService struct {
	repo domain.BranchRepository
}

// NewBranchService creates a BranchService with the given repository.
func NewBranchService(repo domain.BranchRepository) domain.BranchService {
	return &branchService{repo: repo}
}

// CreateBranch normalizes the input, applies audit defaults, and persists it.
func (s *branchService) CreateBranch(ctx context.Context, b *domain.Branch) (*domain.Branch, error) {
	b.BranchName = strings.TrimSpace(b.BranchName)
	if b.BranchName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "branch_name is required", nil)
	}
	if b.IsActive == "" {
		b.IsActive = domain.ActiveYes
	}
	b.StampCreateDefaults()

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetBranch retrieves a branch by ID.
func (s *branchService) GetBranch(ctx context.Context, id uint) (*domain.Branch, error) {
	return s.repo.GetByID(ctx, id)
}

// ListBranches returns a paginated list of branches.
func (s *branchService) ListBranches(ctx context.Context, p domain.ListParams) (*domain.PageResult[domain.Branch], error) {
	return s.repo.List(ctx, p)
}

// UpdateBranch loads the existing branch, merges the changed fields, stamps
// the updater, and persists the result.
func (s *branchService) UpdateBranch(ctx context.Context, id uint, b *domain.Branch) (*domain.Branch, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(b.BranchName); name != "" {
		existing.BranchName = name
	}
	if b.Location != "" {
		existing.Location = b.Location
	}
	if b.Address != "" {
		existing.Address = b.Address
	}
	if b.IsActive != "" {
		existing.IsActive = b.IsActive
	}
	existing.StampUpdate(b.UpdatedBy)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteBranch removes a branch by ID.
func (s *branchService) DeleteBranch(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
