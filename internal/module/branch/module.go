package branch

import "github.com/gin-gonic/gin"

// BranchModule implements the app.Module interface for the branch domain.
type BranchModule struct {
	handler *BranchHandler
}

// NewModule creates a BranchModule. Panics if h is nil.
func NewModule(h *BranchHandler) *BranchModule {
	if h == nil {
		panic("branch.NewModule: handler must not be nil")
	}
	return &BranchModule{handler: h}
}

// RegisterRoutes registers branch API routes.
func (m *BranchModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/branches", m.handler.Create)
	api.GET("/branches/:id", m.handler.Get)
	api.GET("/branches", m.handler.List)
	api.PUT("/branches/:id", m.handler.Update)
	api.DELETE("/branches/:id", m.handler.Delete)
}
