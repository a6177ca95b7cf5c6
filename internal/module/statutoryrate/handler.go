package statutoryrate

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// RateHandler handles REST API requests for the statutory rate resource.
type RateHandler struct {
	svc domain.StatutoryRateService
}

// NewRateHandler creates a RateHandler with the given service.
func NewRateHandler(svc domain.StatutoryRateService) *RateHandler {
	return &RateHandler{svc: svc}
}

// Create handles POST /api/v1/statutory-rates.
func (h *RateHandler) Create(c *gin.Context) {
	var req CreateRateRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	r := &domain.StatutoryRate{
		RateType:      req.RateType,
		RateValue:     req.RateValue,
		EffectiveFrom: parseDateOrZero(req.EffectiveFrom),
		EffectiveTo:   parseDateOrZero(req.EffectiveTo),
		IsActive:      req.IsActive,
	}
	r.CreatedBy = req.CreatedBy
	r.LogInst = req.LogInst

	created, err := h.svc.CreateRate(c.Request.Context(), r)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, "statutory rate created successfully", created)
}

// Get handles GET /api/v1/statutory-rates/:id.
func (h *RateHandler) Get(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	r, err := h.svc.GetRate(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "", r)
}

// List handles GET /api/v1/statutory-rates.
func (h *RateHandler) List(c *gin.Context) {
	result, err := h.svc.ListRates(c.Request.Context(), pkg.ParseListParams(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/statutory-rates/:id.
func (h *RateHandler) Update(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateRateRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	r := &domain.StatutoryRate{
		RateType:      req.RateType,
		RateValue:     req.RateValue,
		EffectiveFrom: parseDateOrZero(req.EffectiveFrom),
		EffectiveTo:   parseDateOrZero(req.EffectiveTo),
		IsActive:      req.IsActive,
	}
	r.UpdatedBy = req.UpdatedBy

	updated, err := h.svc.UpdateRate(c.Request.Context(), id, r)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "statutory rate updated successfully", updated)
}

// Delete handles DELETE /api/v1/statutory-rates/:id.
func (h *RateHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteRate(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, "statutory rate deleted successfully", nil)
}

func parseDateOrZero(s string) time.Time {
	t, ok := pkg.ParseDate(s)
	if !ok {
		return time.Time{}
	}
	return t
}
