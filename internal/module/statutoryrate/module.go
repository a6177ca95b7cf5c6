package statutoryrate

import "github.com/gin-gonic/gin"

// RateModule implements the app.Module interface for statutory rates.
type RateModule struct {
	handler *RateHandler
}

// NewModule creates a RateModule. Panics if h is nil.
func NewModule(h *RateHandler) *RateModule {
	if h == nil {
		panic("statutoryrate.NewModule: handler must not be nil")
	}
	return &RateModule{handler: h}
}

// RegisterRoutes registers statutory rate API routes.
func (m *RateModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/statutory-rates", m.handler.Create)
	api.GET("/statutory-rates/:id", m.handler.Get)
	api.GET("/statutory-rates", m.handler.List)
	api.PUT("/statutory-rates/:id", m.handler.Update)
	api.DELETE("/statutory-rates/:id", m.handler.Delete)
}
