package pkg

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrstack/hrms/internal/domain"
)

// Scope is a GORM query modifier. Entity repositories compose their filter
// conjunction out of the scopes below.
type Scope = func(db *gorm.DB) *gorm.DB

// dateLayouts are the accepted textual date formats for startDate/endDate
// query parameters, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseListParams extracts the list-query inputs from the request. Numeric
// parameters that fail to parse are left at zero and coerced to the defaults
// later; date strings are passed through raw and validated by DateRange.
func ParseListParams(c *gin.Context) domain.ListParams {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	p := domain.ListParams{
		Page:      page,
		Size:      size,
		Search:    strings.TrimSpace(c.Query("search")),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		IsActive:  c.Query("is_active"),
	}

	if cid, err := strconv.ParseUint(c.Query("candidate_id"), 10, 32); err == nil {
		p.CandidateID = uint(cid)
	}

	return p
}

// Paginate applies LIMIT/OFFSET for the given effective page and size.
// Callers must pass values already normalized by ListParams.PageSize.
func Paginate(page, size int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * size).Limit(size)
	}
}

// SearchContains applies a case-insensitive contains match of term across the
// given columns, OR-ed together. An empty term is a no-op. Column names are
// supplied by repositories, never by callers of the HTTP API.
func SearchContains(term string, columns ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + strings.ToLower(term) + "%"
		var (
			clauses []string
			args    []any
		)
		for _, col := range columns {
			clauses = append(clauses, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		return db.Where(strings.Join(clauses, " OR "), args...)
	}
}

// DateRange applies an inclusive range on column when both bounds parse as
// dates. A malformed or missing bound makes the whole range a no-op rather
// than an error.
func DateRange(column, start, end string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		from, okFrom := ParseDate(start)
		to, okTo := ParseDate(end)
		if !okFrom || !okTo {
			return db
		}
		return db.Where(column+" >= ? AND "+column+" <= ?", from, to)
	}
}

// ActiveFlag coerces a textual boolean into the stored Y/N encoding and
// filters on is_active. Values other than "true"/"false" (case-insensitive)
// are ignored.
func ActiveFlag(raw string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true":
			return db.Where("is_active = ?", domain.ActiveYes)
		case "false":
			return db.Where("is_active = ?", domain.ActiveNo)
		default:
			return db
		}
	}
}

// FieldEquals applies an equality predicate on column when id is non-zero.
func FieldEquals(column string, id uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if id == 0 {
			return db
		}
		return db.Where(column+" = ?", id)
	}
}

// ParseDate parses implementation-defined date text, trying each accepted
// layout in order.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
