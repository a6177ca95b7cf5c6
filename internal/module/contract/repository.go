package contract

import (
	"context"

	"gorm.io/gorm"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// contractOrder is the fixed tiebreak sequence for contract listing. Columns
// are table-qualified because the search filter may join the candidate table,
// which carries the same audit column names.
var contractOrder = []string{
	"hrms_d_employment_contract.updatedate desc",
	"hrms_d_employment_contract.createdate desc",
}

// contractRepository implements domain.EmploymentContractRepository on the
// generic engine, eagerly loading the candidate display fields.
type contractRepository struct {
	*pkg.Repository[domain.EmploymentContract]
}

// NewContractRepository creates an EmploymentContractRepository backed by the
// given database.
func NewContractRepository(db *gorm.DB) domain.EmploymentContractRepository {
	return &contractRepository{
		Repository: pkg.NewRepository[domain.EmploymentContract](
			db, "employment contract", contractOrder, "Candidate"),
	}
}

// List returns one page of contracts. The search term is a disjunction across
// the joined candidate's full_name and the contract_type column; the date
// range applies to createdate; candidate_id narrows to one candidate.
func (r *contractRepository) List(ctx context.Context, p domain.ListParams) (*domain.PageResult[domain.EmploymentContract], error) {
	page, size := p.PageSize()

	filters := []pkg.Scope{
		pkg.DateRange("hrms_d_employment_contract.createdate", p.StartDate, p.EndDate),
		pkg.FieldEquals("candidate_id", p.CandidateID),
	}
	if p.Search != "" {
		filters = append(filters,
			joinCandidate,
			pkg.SearchContains(p.Search,
				"hrms_d_candidate_master.full_name",
				"hrms_d_employment_contract.contract_type",
			),
		)
	}

	return r.Repository.List(ctx, filters, page, size)
}

// joinCandidate joins the candidate master so search can reach full_name.
// The relation is one-to-one, so the join never inflates the count query.
func joinCandidate(db *gorm.DB) *gorm.DB {
	return db.Joins("LEFT JOIN hrms_d_candidate_master ON hrms_d_candidate_master.id = hrms_d_employment_contract.candidate_id")
}
