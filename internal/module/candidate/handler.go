package candidate

import (
	"github.com/gin-gonic/gin"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// CandidateHandler handles REST API requests for the candidate resource.
type CandidateHandler struct {
	svc domain.CandidateService
}

// NewCandidateHandler creates a CandidateHandler with the given service.
func NewCandidateHandler(svc domain.CandidateService) *CandidateHandler {
	return &CandidateHandler{svc: svc}
}

// Create handles POST /api/v1/candidates.
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CreateCandidateRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	cand := &domain.Candidate{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	}
	cand.CreatedBy = req.CreatedBy
	cand.LogInst = req.LogInst

	created, err := h.svc.CreateCandidate(c.Request.Context(), cand)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, "candidate created successfully", created)
}

// Get handles GET /api/v1/candidates/:id.
func (h *CandidateHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	cand, err := h.svc.GetCandidate(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "", cand)
}

// List handles GET /api/v1/candidates.
func (h *CandidateHandler) List(c *gin.Context) {
	result, err := h.svc.ListCandidates(c.Request.Context(), pkg.ParseListParams(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/candidates/:id.
func (h *CandidateHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateCandidateRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	cand := &domain.Candidate{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	}
	cand.UpdatedBy = req.UpdatedBy

	updated, err := h.svc.UpdateCandidate(c.Request.Context(), id, cand)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "candidate updated successfully", updated)
}

// Delete handles DELETE /api/v1/candidates/:id.
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteCandidate(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "candidate deleted successfully", nil)
}
