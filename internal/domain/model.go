package domain

import (
	"math"
	"time"
)

// Values stored in the is_active column.
const (
	ActiveYes = "Y"
	ActiveNo  = "N"
)

// Defaults stamped onto records when the caller omits them.
const (
	DefaultActorID = 1
	DefaultLogInst = 1
)

// AuditModel is the common base struct for all HRMS records. Column names
// follow the legacy HRMS schema (createdby, createdate, ...), so the Go field
// names and the persisted names diverge deliberately.
type AuditModel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedBy  int       `gorm:"column:createdby" json:"createdby"`
	CreateDate time.Time `gorm:"column:createdate;autoCreateTime" json:"createdate"`
	UpdatedBy  int       `gorm:"column:updatedby" json:"updatedby"`
	UpdateDate time.Time `gorm:"column:updatedate;autoUpdateTime" json:"updatedate"`
	LogInst    int       `gorm:"column:log_inst" json:"log_inst"`
}

// PrimaryKey returns the record's id. It exists so generic repositories can
// re-read a record after insert without knowing its concrete type.
func (m AuditModel) PrimaryKey() uint {
	return m.ID
}

// StampCreateDefaults fills in the audit defaults for a new record.
func (m *AuditModel) StampCreateDefaults() {
	if m.CreatedBy == 0 {
		m.CreatedBy = DefaultActorID
	}
	if m.LogInst == 0 {
		m.LogInst = DefaultLogInst
	}
}

// StampUpdate records who performed an update. The updatedate column is
// refreshed by the ORM on save.
func (m *AuditModel) StampUpdate(updatedBy int) {
	if updatedBy == 0 {
		updatedBy = DefaultActorID
	}
	m.UpdatedBy = updatedBy
}

// ListParams carries the raw list-query inputs as they arrive from the HTTP
// layer. Invalid or absent values are tolerated here and normalized by
// PageSize; malformed dates make the date filter a no-op further down.
type ListParams struct {
	Page        int
	Size        int
	Search      string
	StartDate   string
	EndDate     string
	IsActive    string
	CandidateID uint
}

// Pagination defaults.
const (
	DefaultPage = 1
	DefaultSize = 10
)

// PageSize returns the effective page and size, coercing invalid or absent
// values to the defaults. skip = (page-1)*size is therefore never negative.
func (p ListParams) PageSize() (page, size int) {
	page, size = p.Page, p.Size
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultSize
	}
	return page, size
}

// PageResult is the uniform shape of every paginated list response.
type PageResult[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"currentPage"`
	Size        int   `json:"size"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
}

// NewPageResult builds a PageResult from one page of data and the matching
// total count. TotalPages is ceil(total/size), zero when nothing matched.
func NewPageResult[T any](data []T, total int64, page, size int) *PageResult[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(size)))
	}
	return &PageResult[T]{
		Data:        data,
		CurrentPage: page,
		Size:        size,
		TotalPages:  totalPages,
		TotalCount:  total,
	}
}
