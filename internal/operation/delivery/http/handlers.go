package http

import (
	"net/http"
	"strconv"

	"seatwatch-srv/internal/operation"
	"seatwatch-srv/pkg/errors"
	"seatwatch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

var errorMapping = response.ErrorMapping{
	operation.ErrRouteNotFound:      errors.NewNotFoundHTTPError("Route not found"),
	operation.ErrCatalogUnavailable: errors.NewHTTPError(http.StatusServiceUnavailable, "Operation catalog temporarily unavailable", http.StatusServiceUnavailable),
}

// ListByRoute returns a route's operations grouped by date.
// @Summary List operations for a route
// @Description Returns the route's schedule keyed by date. Serves the last snapshot with stale=true when the provider is unreachable.
// @Tags Operation
// @Produce json
// @Param routeId query int true "Route ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/operation/ [GET]
func (h *Handler) ListByRoute(c *gin.Context) {
	ctx := c.Request.Context()

	routeID, err := strconv.Atoi(c.Query("routeId"))
	if err != nil || routeID <= 0 {
		response.Error(c, errors.NewHTTPError(http.StatusBadRequest, "routeId must be a positive integer", http.StatusBadRequest), nil)
		return
	}

	out, err := h.uc.ListByRoute(ctx, routeID)
	if err != nil {
		h.l.Errorf(ctx, "internal.operation.delivery.http.ListByRoute: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newCatalogResp(out))
}
