package appraisal

import (
	"context"
	"strings"
	"time"

	"github.com/hrstack/hrms/internal/domain"
)

// appraisalService implements domain.AppraisalService. The candidate foreign
// key is validated through the candidate directory before any write.
type appraisalService struct {
	repo       domain.AppraisalRepository
	candidates domain.CandidateDirectory
}

// NewAppraisalService creates an AppraisalService with the given repository
// and candidate directory.
func NewAppraisalService(repo domain.AppraisalRepository, candidates domain.CandidateDirectory) domain.AppraisalService {
	return &appraisalService{repo: repo, candidates: candidates}
}

// CreateAppraisal validates the candidate reference, normalizes the input,
// applies audit defaults, and persists it.
func (s *appraisalService) CreateAppraisal(ctx context.Context, a *domain.Appraisal) (*domain.Appraisal, error) {
	if err := s.checkCandidate(ctx, a.CandidateID); err != nil {
		return nil, err
	}

	a.ReviewPeriod = strings.TrimSpace(a.ReviewPeriod)
	if a.AppraisalDate.IsZero() {
		a.AppraisalDate = time.Now()
	}
	a.StampCreateDefaults()

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAppraisal retrieves an appraisal by ID.
func (s *appraisalService) GetAppraisal(ctx context.Context, id uint) (*domain.Appraisal, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAppraisals returns a paginated list of appraisals.
func (s *appraisalService) ListAppraisals(ctx context.Context, p domain.ListParams) (*domain.PageResult[domain.Appraisal], error) {
	return s.repo.List(ctx, p)
}

// UpdateAppraisal re-validates the candidate reference whenever the request
// carries one, merges the changed fields into the stored record, and saves.
func (s *appraisalService) UpdateAppraisal(ctx context.Context, id uint, a *domain.Appraisal) (*domain.Appraisal, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if a.CandidateID != 0 {
		if err := s.checkCandidate(ctx, a.CandidateID); err != nil {
			return nil, err
		}
		if a.CandidateID != existing.CandidateID {
			existing.CandidateID = a.CandidateID
			existing.Candidate = nil
		}
	}
	if rp := strings.TrimSpace(a.ReviewPeriod); rp != "" {
		existing.ReviewPeriod = rp
	}
	if !a.AppraisalDate.IsZero() {
		existing.AppraisalDate = a.AppraisalDate
	}
	if a.Rating != 0 {
		existing.Rating = a.Rating
	}
	if a.Remarks != "" {
		existing.Remarks = a.Remarks
	}
	existing.StampUpdate(a.UpdatedBy)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteAppraisal removes an appraisal by ID.
func (s *appraisalService) DeleteAppraisal(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// checkCandidate fails with NotFound when the referenced candidate is absent.
func (s *appraisalService) checkCandidate(ctx context.Context, candidateID uint) error {
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
