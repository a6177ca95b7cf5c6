package pkg

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/hrstack/hrms/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupScopeDB creates an in-memory SQLite database with the branch table
// for exercising filter scopes against real SQL.
func setupScopeDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Branch{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedBranches(t *testing.T, db *gorm.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		b := domain.Branch{BranchName: name, IsActive: domain.ActiveYes}
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("seed branch %q: %v", name, err)
		}
	}
}

func listNames(t *testing.T, db *gorm.DB, scopes ...Scope) []string {
	t.Helper()
	var rows []domain.Branch
	if err := db.Model(&domain.Branch{}).Scopes(scopes...).Order("branch_name asc").Find(&rows).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.BranchName)
	}
	return names
}

func TestSearchContains_CaseInsensitive(t *testing.T) {
	db := setupScopeDB(t)
	seedBranches(t, db, "Head Office", "Regional Hub", "Warehouse")

	got := listNames(t, db, SearchContains("OFFICE", "branch_name"))
	if len(got) != 1 || got[0] != "Head Office" {
		t.Errorf("search OFFICE = %v; want [Head Office]", got)
	}
}

func TestSearchContains_EmptyTermIsNoop(t *testing.T) {
	db := setupScopeDB(t)
	seedBranches(t, db, "A", "B")

	got := listNames(t, db, SearchContains("  ", "branch_name"))
	if len(got) != 2 {
		t.Errorf("blank search returned %d rows; want 2", len(got))
	}
}

func TestSearchContains_MultipleColumns(t *testing.T) {
	db := setupScopeDB(t)
	b1 := domain.Branch{BranchName: "North", Location: "Riverside"}
	b2 := domain.Branch{BranchName: "Riverside", Location: "South"}
	b3 := domain.Branch{BranchName: "East", Location: "West"}
	for _, b := range []domain.Branch{b1, b2, b3} {
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got := listNames(t, db, SearchContains("riverside", "branch_name", "location"))
	if len(got) != 2 {
		t.Errorf("multi-column search returned %v; want 2 rows", got)
	}
}

func TestDateRange_MalformedBoundIsNoop(t *testing.T) {
	db := setupScopeDB(t)
	seedBranches(t, db, "A", "B", "C")

	for _, tc := range [][2]string{
		{"not-a-date", "2026-01-01"},
		{"2026-01-01", "bogus"},
		{"", "2026-01-01"},
		{"2026-01-01", ""},
	} {
		got := listNames(t, db, DateRange("createdate", tc[0], tc[1]))
		if len(got) != 3 {
			t.Errorf("DateRange(%q, %q) filtered rows; want no-op", tc[0], tc[1])
		}
	}
}

func TestDateRange_InclusiveBounds(t *testing.T) {
	db := setupScopeDB(t)

	mk := func(name string, day int) {
		b := domain.Branch{BranchName: name}
		b.CreateDate = time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	mk("early", 1)
	mk("mid", 15)
	mk("late", 30)

	got := listNames(t, db, DateRange("createdate", "2026-03-01", "2026-03-15"))
	if len(got) != 2 {
		t.Errorf("range returned %v; want [early mid]", got)
	}
}

func TestActiveFlag(t *testing.T) {
	db := setupScopeDB(t)
	active := domain.Branch{BranchName: "open", IsActive: domain.ActiveYes}
	inactive := domain.Branch{BranchName: "closed", IsActive: domain.ActiveNo}
	for _, b := range []domain.Branch{active, inactive} {
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	tests := []struct {
		raw  string
		want int
	}{
		{"true", 1},
		{"TRUE", 1},
		{"false", 1},
		{"", 2},
		{"yes", 2},
		{"1", 2},
	}
	for _, tt := range tests {
		got := listNames(t, db, ActiveFlag(tt.raw))
		if len(got) != tt.want {
			t.Errorf("ActiveFlag(%q) returned %d rows; want %d", tt.raw, len(got), tt.want)
		}
	}
}

func TestFieldEquals_ZeroIsNoop(t *testing.T) {
	db := setupScopeDB(t)
	seedBranches(t, db, "A", "B")

	if got := listNames(t, db, FieldEquals("id", 0)); len(got) != 2 {
		t.Errorf("FieldEquals(0) returned %d rows; want 2", len(got))
	}
	if got := listNames(t, db, FieldEquals("id", 1)); len(got) != 1 {
		t.Errorf("FieldEquals(1) returned %d rows; want 1", len(got))
	}
}

func TestPaginate(t *testing.T) {
	db := setupScopeDB(t)
	seedBranches(t, db, "a", "b", "c", "d", "e")

	var rows []domain.Branch
	if err := db.Scopes(Paginate(2, 2)).Order("branch_name asc").Find(&rows).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 || rows[0].BranchName != "c" || rows[1].BranchName != "d" {
		t.Errorf("page 2 of size 2 = %+v; want [c d]", rows)
	}
}

func TestParseDate(t *testing.T) {
	valid := []string{
		"2026-03-15",
		"2026-03-15 10:30:00",
		"2026-03-15T10:30:00Z",
	}
	for _, s := range valid {
		if _, ok := ParseDate(s); !ok {
			t.Errorf("ParseDate(%q) failed; want success", s)
		}
	}

	invalid := []string{"", "  ", "15/03/2026", "yesterday"}
	for _, s := range invalid {
		if _, ok := ParseDate(s); ok {
			t.Errorf("ParseDate(%q) succeeded; want failure", s)
		}
	}
}

func TestParseListParams(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/branches?page=3&size=20&search=%20hub%20&startDate=2026-01-01&endDate=2026-02-01&is_active=true&candidate_id=7", nil)

	p := ParseListParams(c)
	if p.Page != 3 || p.Size != 20 {
		t.Errorf("page/size = %d/%d; want 3/20", p.Page, p.Size)
	}
	if p.Search != "hub" {
		t.Errorf("Search = %q; want trimmed %q", p.Search, "hub")
	}
	if p.StartDate != "2026-01-01" || p.EndDate != "2026-02-01" {
		t.Errorf("dates = %q/%q", p.StartDate, p.EndDate)
	}
	if p.IsActive != "true" {
		t.Errorf("IsActive = %q; want true", p.IsActive)
	}
	if p.CandidateID != 7 {
		t.Errorf("CandidateID = %d; want 7", p.CandidateID)
	}
}

func TestParseListParams_MalformedNumbers(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/branches?page=abc&size=-5&candidate_id=x", nil)

	p := ParseListParams(c)
	if p.Page != 0 {
		t.Errorf("Page = %d; want 0 (coerced later)", p.Page)
	}
	if p.Size != -5 {
		t.Errorf("Size = %d; want -5 (coerced later)", p.Size)
	}
	if p.CandidateID != 0 {
		t.Errorf("CandidateID = %d; want 0", p.CandidateID)
	}

	page, size := p.PageSize()
	if page != 1 || size != 10 {
		t.Errorf("effective page/size = %d/%d; want 1/10", page, size)
	}
}
