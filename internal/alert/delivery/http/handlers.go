package http

import (
	"net/http"

	"seatwatch-srv/internal/alert"
	"seatwatch-srv/internal/user"
	"seatwatch-srv/pkg/errors"
	"seatwatch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

var errorMapping = response.ErrorMapping{
	alert.ErrAlertNotFound:      errors.NewNotFoundHTTPError("Alert not found"),
	alert.ErrInvalidAlertID:     errors.NewHTTPError(http.StatusBadRequest, "Invalid alert id", http.StatusBadRequest),
	alert.ErrInvalidTargetSeats: errors.NewHTTPError(http.StatusBadRequest, "targetSeats must be between 1 and 10", http.StatusBadRequest),
	alert.ErrInvalidSchedule:    errors.NewHTTPError(http.StatusBadRequest, "Schedule does not exist on the route", http.StatusBadRequest),
	alert.ErrNoChannelEnabled:   errors.NewHTTPError(http.StatusBadRequest, "At least one notification channel must be enabled", http.StatusBadRequest),
	user.ErrInvalidUserID:       errors.NewHTTPError(http.StatusBadRequest, "Invalid user id", http.StatusBadRequest),
}

// Create registers a seat alert.
// @Summary Create alert
// @Description Registers a request to be notified when a schedule's available seats reach the target. Alerts expire 24 hours after creation.
// @Tags Alert
// @Accept json
// @Produce json
// @Param body body createAlertReq true "Alert"
// @Success 200 {object} alertResp
// @Failure 400 {object} response.Resp
// @Router /api/alerts [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createAlertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body", http.StatusBadRequest), nil)
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.Create: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	c.JSON(http.StatusOK, newAlertResp(created))
}

// ListByUser returns a user's alerts, newest first.
// @Summary List a user's alerts
// @Tags Alert
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} alertResp
// @Failure 400 {object} response.Resp
// @Router /api/users/{userId}/alerts [GET]
func (h *Handler) ListByUser(c *gin.Context) {
	ctx := c.Request.Context()

	alerts, err := h.uc.ListByUser(ctx, c.Param("userId"))
	if err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.ListByUser: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	c.JSON(http.StatusOK, newAlertListResp(alerts))
}

// SetActive pauses or resumes an alert.
// @Summary Update alert status
// @Tags Alert
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param body body updateAlertReq true "New status"
// @Success 200 {object} alertResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/alerts/{id} [PATCH]
func (h *Handler) SetActive(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateAlertReq
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.Error(c, errors.NewHTTPError(http.StatusBadRequest, "isActive is required", http.StatusBadRequest), nil)
		return
	}

	updated, err := h.uc.SetActive(ctx, c.Param("id"), *req.IsActive)
	if err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.SetActive: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	c.JSON(http.StatusOK, newAlertResp(updated))
}

// Delete removes an alert.
// @Summary Delete alert
// @Tags Alert
// @Param id path string true "Alert ID"
// @Success 204
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/alerts/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.Delete: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	c.Status(http.StatusNoContent)
}
