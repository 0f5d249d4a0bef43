package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the auth routes. Login is public by nature.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/kakao", h.LoginKakao)
	}
}
