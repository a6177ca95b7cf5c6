package moduleref

import (
	"github.com/gin-gonic/gin"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// ModuleHandler handles REST API requests for module reference data.
type ModuleHandler struct {
	svc domain.ModuleService
}

// NewModuleHandler creates a ModuleHandler with the given service.
func NewModuleHandler(svc domain.ModuleService) *ModuleHandler {
	return &ModuleHandler{svc: svc}
}

// Create handles POST /api/v1/modules.
func (h *ModuleHandler) Create(c *gin.Context) {
	var req CreateModuleRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	m := &domain.Module{
		ModuleName:  req.ModuleName,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
	m.CreatedBy = req.CreatedBy
	m.LogInst = req.LogInst

	created, err := h.svc.CreateModule(c.Request.Context(), m)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, "module created successfully", created)
}

// Get handles GET /api/v1/modules/:id.
func (h *ModuleHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	m, err := h.svc.GetModule(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "", m)
}

// List handles GET /api/v1/modules.
func (h *ModuleHandler) List(c *gin.Context) {
	result, err := h.svc.ListModules(c.Request.Context(), pkg.ParseListParams(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/modules/:id.
func (h *ModuleHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateModuleRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	m := &domain.Module{
		ModuleName:  req.ModuleName,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
	m.UpdatedBy = req.UpdatedBy

	updated, err := h.svc.UpdateModule(c.Request.Context(), id, m)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "module updated successfully", updated)
}

// Delete handles DELETE /api/v1/modules/:id.
func (h *ModuleHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteModule(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "module deleted successfully", nil)
}
