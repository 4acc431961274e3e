package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The whole group requires an authenticated admin.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	adminGroup := rg.Group("/admin", mw.Auth(), mw.AdminOnly())
	{
		adminGroup.GET("/stats", h.Stats)
		adminGroup.GET("/users", h.ListUsers)
		adminGroup.GET("/users/:id", h.UserDetail)
		adminGroup.PUT("/users/:id", h.UpdateUser)
		adminGroup.DELETE("/users/:id", h.DeleteUser)
	}
}
