package branch

import (
	"github.com/gin-gonic/gin"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// BranchHandler handles REST API requests for the branch resource.
type BranchHandler struct {
	svc domain.BranchService
}

// NewBranchHandler creates a BranchHandler with the given service.
func NewBranchHandler(svc domain.BranchService) *BranchHandler {
	return &BranchHandler{svc: svc}
}

// Create handles POST /api/v1/branches.
func (h *BranchHandler) Create(c *gin.Context) {
	var req CreateBranchRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	b := &domain.Branch{
		BranchName: req.BranchName,
		Location:   req.Location,
		Address:    req.Address,
		IsActive:   req.IsActive,
	}
	b.CreatedBy = req.CreatedBy
	b.LogInst = req.LogInst

	created, err := h.svc.CreateBranch(c.Request.Context(), b)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, "branch created successfully", created)
}

// Get handles GET /api/v1/branches/:id.
func (h *BranchHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	b, err := h.svc.GetBranch(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "", b)
}

// List handles GET /api/v1/branches.
func (h *BranchHandler) List(c *gin.Context) {
	result, err := h.svc.ListBranches(c.Request.Context(), pkg.ParseListParams(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/branches/:id.
func (h *BranchHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateBranchRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	b := &domain.Branch{
		BranchName: req.BranchName,
		Location:   req.Location,
		Address:    req.Address,
		IsActive:   req.IsActive,
	}
	b.UpdatedBy = req.UpdatedBy

	updated, err := h.svc.UpdateBranch(c.Request.Context(), id, b)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "branch updated successfully", updated)
}

// Delete handles DELETE /api/v1/branches/:id.
func (h *BranchHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteBranch(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "branch deleted successfully", nil)
}
