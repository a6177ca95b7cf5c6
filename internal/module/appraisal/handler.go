package appraisal

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// AppraisalHandler handles REST API requests for the appraisal resource.
type AppraisalHandler struct {
	svc domain.AppraisalService
}

// NewAppraisalHandler creates an AppraisalHandler with the given service.
func NewAppraisalHandler(svc domain.AppraisalService) *AppraisalHandler {
	return &AppraisalHandler{svc: svc}
}

// Create handles POST /api/v1/appraisals.
func (h *AppraisalHandler) Create(c *gin.Context) {
	var req CreateAppraisalRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	a := &domain.Appraisal{
		CandidateID:   req.CandidateID,
		ReviewPeriod:  req.ReviewPeriod,
		AppraisalDate: parseDateOrZero(req.AppraisalDate),
		Rating:        req.Rating,
		Remarks:       req.Remarks,
	}
	a.CreatedBy = req.CreatedBy
	a.LogInst = req.LogInst

	created, err := h.svc.CreateAppraisal(c.Request.Context(), a)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, "appraisal entry created successfully", created)
}

// Get handles GET /api/v1/appraisals/:id.
func (h *AppraisalHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	a, err := h.svc.GetAppraisal(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "", a)
}

// List handles GET /api/v1/appraisals.
func (h *AppraisalHandler) List(c *gin.Context) {
	result, err := h.svc.ListAppraisals(c.Request.Context(), pkg.ParseListParams(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/appraisals/:id.
func (h *AppraisalHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateAppraisalRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	a := &domain.Appraisal{
		CandidateID:   req.CandidateID,
		ReviewPeriod:  req.ReviewPeriod,
		AppraisalDate: parseDateOrZero(req.AppraisalDate),
		Rating:        req.Rating,
		Remarks:       req.Remarks,
	}
	a.UpdatedBy = req.UpdatedBy

	updated, err := h.svc.UpdateAppraisal(c.Request.Context(), id, a)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "appraisal entry updated successfully", updated)
}

// Delete handles DELETE /api/v1/appraisals/:id.
func (h *AppraisalHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteAppraisal(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "appraisal entry deleted successfully", nil)
}

func parseDateOrZero(s string) time.Time {
	t, ok := pkg.ParseDate(s)
	if !ok {
		return time.Time{}
	}
	return t
}
