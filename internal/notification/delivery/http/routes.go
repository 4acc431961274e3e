package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notifications := rg.Group("/notifications", mw.Auth())
	{
		notifications.POST("/reminder", h.SendReminder)
		notifications.POST("/test", h.TestEmail)
	}
}
