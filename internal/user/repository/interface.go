package repository

import (
	"context"

	"seatwatch-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opt CreateOption) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByKakaoID(ctx context.Context, kakaoID int64) (model.User, error)
	UpdateProfile(ctx context.Context, id string, opt UpdateProfileOption) error
	UpdatePushToken(ctx context.Context, id, token string) error
}
