package appraisal

import "github.com/gin-gonic/gin"

// AppraisalModule implements the app.Module interface for appraisals.
type AppraisalModule struct {
	handler *AppraisalHandler
}

// NewModule creates an AppraisalModule. Panics if h is nil.
func NewModule(h *AppraisalHandler) *AppraisalModule {
	if h == nil {
		panic("appraisal.NewModule: handler must not be nil")
	}
	return &AppraisalModule{handler: h}
}

// RegisterRoutes registers appraisal API routes.
func (m *AppraisalModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/appraisals", m.handler.Create)
	api.GET("/appraisals/:id", m.handler.Get)
	api.GET("/appraisals", m.handler.List)
	api.PUT("/appraisals/:id", m.handler.Update)
	api.DELETE("/appraisals/:id", m.handler.Delete)
}
