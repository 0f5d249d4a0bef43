package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the alert routes. They stay public: the mobile
// client calls them without an Authorization header and scopes by the
// userId it sends.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	alerts := r.Group("/alerts")
	{
		alerts.POST("", h.Create)
		alerts.PATCH("/:id", h.SetActive)
		alerts.DELETE("/:id", h.Delete)
	}

	r.GET("/users/:userId/alerts", h.ListByUser)
}
