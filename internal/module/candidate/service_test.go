package candidate

import (
	"context"
	"testing"

	"github.com/hrstack/hrms/internal/domain"
)

func newService(t *testing.T) domain.CandidateService {
	t.Helper()
	return NewCandidateService(NewCandidateRepository(setupTestDB(t)))
}

func TestCreateCandidate_ValidatesEmail(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.CreateCandidate(ctx, &domain.Candidate{FullName: "Jordan Reed", Email: "not-an-email"})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for bad email, got %v", err)
	}

	created, err := svc.CreateCandidate(ctx, &domain.Candidate{FullName: "Jordan Reed", Email: "jreed@example.com"})
	if err != nil {
		t.Fatalf("CreateCandidate: %v", err)
	}
	if created.IsActive != domain.ActiveYes {
		t.Errorf("IsActive = %q; want default Y", created.IsActive)
	}
}

func TestCreateCandidate_NameRequired(t *testing.T) {
	svc := newService(t)

	_, err := svc.CreateCandidate(context.Background(), &domain.Candidate{FullName: "  "})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestUpdateCandidate_RejectsBadEmailWithoutSaving(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.CreateCandidate(ctx, &domain.Candidate{FullName: "Jordan Reed", Email: "jreed@example.com"})
	if err != nil {
		t.Fatalf("CreateCandidate: %v", err)
	}

	_, err = svc.UpdateCandidate(ctx, created.ID, &domain.Candidate{Email: "broken"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	got, err := svc.GetCandidate(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCandidate: %v", err)
	}
	if got.Email != "jreed@example.com" {
		t.Errorf("email changed to %q after rejected update", got.Email)
	}
}
