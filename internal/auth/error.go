package auth

import "errors"

var (
	ErrInvalidKakaoToken  = errors.New("invalid kakao access token")
	ErrKakaoUnavailable   = errors.New("kakao api unavailable")
	ErrMissingAccessToken = errors.New("missing access token")
)
