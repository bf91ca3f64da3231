package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. Sync triggers require an API
// key; the health check stays open.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	sync := api.Group("/sync")
	sync.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		sync.POST("/incidents/:id", h.syncIncident)
		sync.POST("/batch", h.syncBatch)
		sync.POST("/range", h.syncRange)
	}

	api.GET("/system/health", h.healthCheck)
}
