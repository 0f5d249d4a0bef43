package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// LoginKakao verifies a Kakao access token, upserts the matching
	// user, and issues a service JWT.
	LoginKakao(ctx context.Context, accessToken string) (LoginOutput, error)
}
