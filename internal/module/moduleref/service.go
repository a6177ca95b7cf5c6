package moduleref

import (
	"context"
	"strings"

	"github.com/hrstack/hrms/internal/domain"
)

// moduleService implements domain.ModuleService.
type moduleService struct {
	repo domain.ModuleRepository
}

// NewModuleService creates a ModuleService with the given repository.
func NewModuleService(repo domain.ModuleRepository) domain.ModuleService {
	return &moduleService{repo: repo}
}

// CreateModule normalizes the input, applies audit defaults, and persists it.
func (s *moduleService) CreateModule(ctx context.Context, m *domain.Module) (*domain.Module, error) {
	m.ModuleName = strings.TrimSpace(m.ModuleName)
	if m.ModuleName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "module_name is required", nil)
	}
	if m.IsActive == "" {
		m.IsActive = domain.ActiveYes
	}
	m.StampCreateDefaults()

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetModule retrieves a module by ID.
func (s *moduleService) GetModule(ctx context.Context, id uint) (*domain.Module, error) {
	return s.repo.GetByID(ctx, id)
}

// ListModules returns a paginated list of modules.
func (s *moduleService) ListModules(ctx context.Context, p domain.ListParams) (*domain.PageResult[domain.Module], error) {
	return s.repo.List(ctx, p)
}

// UpdateModule loads the existing module, merges the changed fields, and saves.
func (s *moduleService) UpdateModule(ctx context.Context, id uint, m *domain.Module) (*domain.Module, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(m.ModuleName); name != "" {
		existing.ModuleName = name
	}
	if m.Description != "" {
		existing.Description = m.Description
	}
	if m.IsActive != "" {
		existing.IsActive = m.IsActive
	}
	existing.StampUpdate(m.UpdatedBy)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteModule removes a module by ID.
func (s *moduleService) DeleteModule(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
