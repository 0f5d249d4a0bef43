package http

import (
	"context"
	"net/http"

	"seatwatch-srv/internal/user"
	"seatwatch-srv/pkg/errors"
	"seatwatch-srv/pkg/jwt"
	"seatwatch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

var errorMapping = response.ErrorMapping{
	user.ErrUserNotFound:     errors.NewNotFoundHTTPError("User not found"),
	user.ErrInvalidUserID:    errors.NewHTTPError(http.StatusBadRequest, "Invalid user id", http.StatusBadRequest),
	user.ErrInvalidPushToken: errors.NewHTTPError(http.StatusBadRequest, "Invalid push token", http.StatusBadRequest),
}

// UpdatePushToken stores the device's current Expo push token.
// @Summary Update push token
// @Description Registers the Expo push token push notifications are delivered to.
// @Tags User
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param body body updatePushTokenReq true "Push token"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Security BearerAuth
// @Router /api/users/{userId}/push-token [PUT]
func (h *Handler) UpdatePushToken(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("userId")
	if !requesterOwns(ctx, userID) {
		response.Unauthorized(c)
		return
	}

	var req updatePushTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body", http.StatusBadRequest), nil)
		return
	}
	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	if err := h.uc.UpdatePushToken(ctx, userID, req.PushToken); err != nil {
		h.l.Errorf(ctx, "internal.user.delivery.http.UpdatePushToken: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}

// requesterOwns reports whether the authenticated user is userID.
func requesterOwns(ctx context.Context, userID string) bool {
	payload, ok := jwt.PayloadFromContext(ctx)
	return ok && payload.UserID == userID
}
