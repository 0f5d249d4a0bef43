package http

import (
	"context"

	"seatwatch-srv/pkg/jwt"
	"seatwatch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListFailures returns the user's recent permanent delivery failures.
// @Summary List notification failures
// @Description Returns permanent delivery failures (dead push tokens, rejected addresses) recorded for the user, newest first.
// @Tags Notification
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Security BearerAuth
// @Router /api/users/{userId}/notification-failures [GET]
func (h *Handler) ListFailures(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("userId")
	if !requesterOwns(ctx, userID) {
		response.Unauthorized(c)
		return
	}

	failures, err := h.uc.ListFailures(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "internal.dispatcher.delivery.http.ListFailures: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, gin.H{"failures": failures})
}

func requesterOwns(ctx context.Context, userID string) bool {
	payload, ok := jwt.PayloadFromContext(ctx)
	return ok && payload.UserID == userID
}
