package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the terminal directory routes. They are public:
// the client fetches the picker before the user has signed in.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	terminal := r.Group("/terminal")
	{
		terminal.GET("/departure", h.ListDeparture)
		terminal.GET("/arrival", h.ListArrival)
	}
}
