package contract

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// ContractHandler handles REST API requests for the employment contract resource.
type ContractHandler struct {
	svc domain.EmploymentContractService
}

// NewContractHandler creates a ContractHandler with the given service.
func NewContractHandler(svc domain.EmploymentContractService) *ContractHandler {
	return &ContractHandler{svc: svc}
}

// Create handles POST /api/v1/contracts.
func (h *ContractHandler) Create(c *gin.Context) {
	var req CreateContractRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	ec := &domain.EmploymentContract{
		CandidateID:       req.CandidateID,
		ContractStartDate: parseDateOrZero(req.ContractStartDate),
		ContractEndDate:   parseDateOrZero(req.ContractEndDate),
		ContractType:      req.ContractType,
		DocumentPath:      req.DocumentPath,
		Description:       req.Description,
	}
	ec.CreatedBy = req.CreatedBy
	ec.LogInst = req.LogInst

	created, err := h.svc.CreateContract(c.Request.Context(), ec)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, "employment contract created successfully", created)
}

// Get handles GET /api/v1/contracts/:id.
func (h *ContractHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	ec, err := h.svc.GetContract(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "", ec)
}

// List handles GET /api/v1/contracts.
func (h *ContractHandler) List(c *gin.Context) {
	result, err := h.svc.ListContracts(c.Request.Context(), pkg.ParseListParams(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/contracts/:id.
func (h *ContractHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateContractRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	ec := &domain.EmploymentContract{
		CandidateID:       req.CandidateID,
		ContractStartDate: parseDateOrZero(req.ContractStartDate),
		ContractEndDate:   parseDateOrZero(req.ContractEndDate),
		ContractType:      req.ContractType,
		DocumentPath:      req.DocumentPath,
		Description:       req.Description,
	}
	ec.UpdatedBy = req.UpdatedBy

	updated, err := h.svc.UpdateContract(c.Request.Context(), id, ec)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "employment contract updated successfully", updated)
}

// Delete handles DELETE /api/v1/contracts/:id.
func (h *ContractHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteContract(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "employment contract deleted successfully", nil)
}

// parseDateOrZero parses lenient date text; unparseable input stays zero and
// the service applies its default.
func parseDateOrZero(s string) time.Time {
	t, ok := pkg.ParseDate(s)
	if !ok {
		return time.Time{}
	}
	return t
}
