package moduleref

import "github.com/gin-gonic/gin"

// ModuleRefModule implements the app.Module interface for module reference data.
type ModuleRefModule struct {
	handler *ModuleHandler
}

// NewModule creates a ModuleRefModule. Panics if h is nil.
func NewModule(h *ModuleHandler) *ModuleRefModule {
	if h == nil {
		panic("moduleref.NewModule: handler must not be nil")
	}
	return &ModuleRefModule{handler: h}
}

// RegisterRoutes registers module reference API routes.
func (m *ModuleRefModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/modules", m.handler.Create)
	api.GET("/modules/:id", m.handler.Get)
	api.GET("/modules", m.handler.List)
	api.PUT("/modules/:id", m.handler.Update)
	api.DELETE("/modules/:id", m.handler.Delete)
}
