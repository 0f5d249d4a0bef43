package http

import (
	"seatwatch-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the user routes under /users.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	users := r.Group("/users")
	users.Use(mw.Auth())
	{
		users.PUT("/:userId/push-token", h.UpdatePushToken)
	}
}
