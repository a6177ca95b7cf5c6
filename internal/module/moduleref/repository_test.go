package moduleref

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/hrstack/hrms/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Module{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seed(t *testing.T, repo domain.ModuleRepository, name, active string) {
	t.Helper()
	m := &domain.Module{ModuleName: name, IsActive: active}
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("seed %s: %v", name, err)
	}
}

func TestList_ActiveFlag(t *testing.T) {
	repo := NewModuleRepository(setupTestDB(t))
	ctx := context.Background()

	seed(t, repo, "Payroll", domain.ActiveYes)
	seed(t, repo, "Recruitment", domain.ActiveYes)
	seed(t, repo, "Legacy Reports", domain.ActiveNo)

	result, err := repo.List(ctx, domain.ListParams{IsActive: "true"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalCount != 2 {
		t.Errorf("active TotalCount = %d; want 2", result.TotalCount)
	}

	result, err = repo.List(ctx, domain.ListParams{IsActive: "false"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalCount != 1 || result.Data[0].ModuleName != "Legacy Reports" {
		t.Errorf("inactive page = %+v; want [Legacy Reports]", result.Data)
	}

	// Unrecognized flag values do not filter.
	result, err = repo.List(ctx, domain.ListParams{IsActive: "banana"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalCount != 3 {
		t.Errorf("unfiltered TotalCount = %d; want 3", result.TotalCount)
	}
}

func TestList_SearchAndOrder(t *testing.T) {
	repo := NewModuleRepository(setupTestDB(t))
	ctx := context.Background()

	seed(t, repo, "Payroll", domain.ActiveYes)
	seed(t, repo, "Payments", domain.ActiveYes)
	seed(t, repo, "Recruitment", domain.ActiveYes)

	result, err := repo.List(ctx, domain.ListParams{Search: "PAY"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalCount != 2 {
		t.Fatalf("TotalCount = %d; want 2", result.TotalCount)
	}
	if result.Data[0].ModuleName != "Payments" || result.Data[1].ModuleName != "Payroll" {
		t.Errorf("order = [%s %s]; want name ascending", result.Data[0].ModuleName, result.Data[1].ModuleName)
	}
}
