package candidate

import "github.com/gin-gonic/gin"

// CandidateModule implements the app.Module interface for the candidate domain.
type CandidateModule struct {
	handler *CandidateHandler
}

// NewModule creates a CandidateModule. Panics if h is nil.
func NewModule(h *CandidateHandler) *CandidateModule {
	if h == nil {
		panic("candidate.NewModule: handler must not be nil")
	}
	return &CandidateModule{handler: h}
}

// RegisterRoutes registers candidate API routes.
func (m *CandidateModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/candidates", m.handler.Create)
	api.GET("/candidates/:id", m.handler.Get)
	api.GET("/candidates", m.handler.List)
	api.PUT("/candidates/:id", m.handler.Update)
	api.DELETE("/candidates/:id", m.handler.Delete)
}
