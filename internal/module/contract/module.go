package contract

import "github.com/gin-gonic/gin"

// ContractModule implements the app.Module interface for employment contracts.
type ContractModule struct {
	handler *ContractHandler
}

// NewModule creates a ContractModule. Panics if h is nil.
func NewModule(h *ContractHandler) *ContractModule {
	if h == nil {
		panic("contract.NewModule: handler must not be nil")
	}
	return &ContractModule{handler: h}
}

// RegisterRoutes registers employment contract API routes.
func (m *ContractModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/contracts", m.handler.Create)
	api.GET("/contracts/:id", m.handler.Get)
	api.GET("/contracts", m.handler.List)
	api.PUT("/contracts/:id", m.handler.Update)
	api.DELETE("/contracts/:id", m.handler.Delete)
}
