package http

import (
	"net/http"

	"seatwatch-srv/internal/auth"
	"seatwatch-srv/pkg/errors"
	"seatwatch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

var errorMapping = response.ErrorMapping{
	auth.ErrMissingAccessToken: errors.NewHTTPError(http.StatusBadRequest, "accessToken is required", http.StatusBadRequest),
	auth.ErrInvalidKakaoToken:  errors.NewHTTPError(http.StatusUnauthorized, "Invalid Kakao access token", http.StatusUnauthorized),
	auth.ErrKakaoUnavailable:   errors.NewHTTPError(http.StatusServiceUnavailable, "Kakao API temporarily unavailable", http.StatusServiceUnavailable),
}

// LoginKakao exchanges a Kakao access token for a service session.
// @Summary Kakao login
// @Description Verifies the Kakao access token, creates the user on first sign-in, and returns a service JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginKakaoReq true "Kakao access token"
// @Success 200 {object} loginKakaoResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/auth/kakao [POST]
func (h *Handler) LoginKakao(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginKakaoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errors.NewHTTPError(http.StatusBadRequest, "Invalid request body", http.StatusBadRequest), nil)
		return
	}
	if err := req.validate(); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	out, err := h.uc.LoginKakao(ctx, req.AccessToken)
	if err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.LoginKakao: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	c.JSON(http.StatusOK, newLoginKakaoResp(out))
}
