package http

import (
	"seatwatch-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the failure listing under /users.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/users/:userId/notification-failures", mw.Auth(), h.ListFailures)
}
