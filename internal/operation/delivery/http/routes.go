package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the catalog routes. The trailing slash matches
// the path the client requests.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	op := r.Group("/operation")
	{
		op.GET("/", h.ListByRoute)
	}
}
