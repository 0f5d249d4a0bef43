package http

import (
	"net/http"

	"seatwatch-srv/pkg/errors"
	"seatwatch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListDeparture returns every departure terminal grouped for the picker.
// @Summary List departure terminals
// @Description Returns all terminals a trip can start from. Serves the built-in sample set with degraded=true when the directory is unavailable.
// @Tags Terminal
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/terminal/departure [GET]
func (h *Handler) ListDeparture(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ListDeparture(ctx)
	if err != nil {
		h.l.Errorf(ctx, "internal.terminal.delivery.http.ListDeparture: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newDirectoryResp(out))
}

// ListArrival returns the terminals reachable from a departure terminal.
// @Summary List arrival terminals
// @Description Returns terminals reachable from the given departure terminal.
// @Tags Terminal
// @Produce json
// @Param departureTerminalId query string true "Departure terminal ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/terminal/arrival [GET]
func (h *Handler) ListArrival(c *gin.Context) {
	ctx := c.Request.Context()

	departureID := c.Query("departureTerminalId")
	if departureID == "" {
		response.Error(c, errors.NewHTTPError(http.StatusBadRequest, "departureTerminalId is required", http.StatusBadRequest), nil)
		return
	}

	out, err := h.uc.ListArrival(ctx, departureID)
	if err != nil {
		h.l.Errorf(ctx, "internal.terminal.delivery.http.ListArrival: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newDirectoryResp(out))
}
