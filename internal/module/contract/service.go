package contract

import (
	"context"
	"strings"
	"time"

	"github.com/hrstack/hrms/internal/domain"
)

// contractService implements domain.EmploymentContractService. Writes that
// reference a candidate validate the foreign key through the candidate
// directory first, so a dangling reference surfaces as a domain-level 404
// instead of a low-level constraint failure.
//
// The existence check and the write are two round trips; a candidate deleted
// between them is not caught here.
type contractService struct {
	repo       domain.EmploymentContractRepository
	candidates domain.CandidateDirectory
}

// NewContractService creates an EmploymentContractService with the given
// repository and candidate directory.
func NewContractService(repo domain.EmploymentContractRepository, candidates domain.CandidateDirectory) domain.EmploymentContractService {
	return &contractService{repo: repo, candidates: candidates}
}

// CreateContract validates the candidate reference, normalizes the input,
// applies audit defaults, and persists it. The returned record includes the
// candidate's display fields.
func (s *contractService) CreateContract(ctx context.Context, ec *domain.EmploymentContract) (*domain.EmploymentContract, error) {
	if err := s.checkCandidate(ctx, ec.CandidateID); err != nil {
		return nil, err
	}

	normalizeContract(ec)
	ec.StampCreateDefaults()

	if err := s.repo.Create(ctx, ec); err != nil {
		return nil, err
	}
	return ec, nil
}

// GetContract retrieves a contract by ID.
func (s *contractService) GetContract(ctx context.Context, id uint) (*domain.EmploymentContract, error) {
	return s.repo.GetByID(ctx, id)
}

// ListContracts returns a paginated list of contracts.
func (s *contractService) ListContracts(ctx context.Context, p domain.ListParams) (*domain.PageResult[domain.EmploymentContract], error) {
	return s.repo.List(ctx, p)
}

// UpdateContract re-validates the candidate reference whenever the request
// carries one, merges the changed fields into the stored record, and saves.
func (s *contractService) UpdateContract(ctx context.Context, id uint, ec *domain.EmploymentContract) (*domain.EmploymentContract, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if ec.CandidateID != 0 {
		if err := s.checkCandidate(ctx, ec.CandidateID); err != nil {
			return nil, err
		}
		if ec.CandidateID != existing.CandidateID {
			existing.CandidateID = ec.CandidateID
			existing.Candidate = nil
		}
	}
	if !ec.ContractStartDate.IsZero() {
		existing.ContractStartDate = ec.ContractStartDate
	}
	if !ec.ContractEndDate.IsZero() {
		existing.ContractEndDate = ec.ContractEndDate
	}
	if ct := strings.TrimSpace(ec.ContractType); ct != "" {
		existing.ContractType = ct
	}
	if ec.DocumentPath != "" {
		existing.DocumentPath = ec.DocumentPath
	}
	if ec.Description != "" {
		existing.Description = ec.Description
	}
	existing.StampUpdate(ec.UpdatedBy)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteContract removes a contract by ID.
func (s *contractService) DeleteContract(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// checkCandidate fails with NotFound when the referenced candidate is absent.
func (s *contractService) checkCandidate(ctx context.Context, candidateID uint) error {
	if candidateID == 0 {
		return domain.NewAppError(domain.CodeValidation, "candidate_id is required", nil)
	}
	ok, err := s.candidates.Exists(ctx, candidateID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewAppError(domain.CodeNotFound, "Candidate not found", nil)
	}
	return nil
}

// normalizeContract fills in the defaults for optional contract fields.
func normalizeContract(ec *domain.EmploymentContract) {
	now := time.Now()
	if ec.ContractStartDate.IsZero() {
		ec.ContractStartDate = now
	}
	if ec.ContractEndDate.IsZero() {
		ec.ContractEndDate = now
	}
	ec.ContractType = strings.TrimSpace(ec.ContractType)
}
