package user

import (
	"context"

	"seatwatch-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Detail returns one user by ID.
	Detail(ctx context.Context, userID string) (model.User, error)
	// UpsertKakao finds the user bound to the Kakao account or creates
	// one, refreshing name and email from the profile.
	UpsertKakao(ctx context.Context, input UpsertKakaoInput) (model.User, error)
	// UpdatePushToken stores the device's current Expo push token.
	UpdatePushToken(ctx context.Context, userID, token string) error
}
