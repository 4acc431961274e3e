package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// AI routes are authenticated and rate limited; generation is not free.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	aiGroup := rg.Group("/ai", mw.Auth(), mw.RateLimit())
	{
		aiGroup.POST("/parse-task", h.ParseTask)
		aiGroup.POST("/suggestions", h.Suggest)
		aiGroup.POST("/enhance", h.Enhance)
		aiGroup.POST("/search", h.Search)
	}
}
