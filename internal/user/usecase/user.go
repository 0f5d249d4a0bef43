package usecase

import (
	"context"
	"errors"
	"strings"

	"seatwatch-srv/internal/model"
	"seatwatch-srv/internal/user"
	"seatwatch-srv/internal/user/repository"
	"seatwatch-srv/pkg/postgre"
)

func (uc implUsecase) Detail(ctx context.Context, userID string) (model.User, error) {
	if !postgre.IsValidUUID(userID) {
		return model.User{}, user.ErrInvalidUserID
	}
	return uc.repo.GetByID(ctx, userID)
}

func (uc implUsecase) UpsertKakao(ctx context.Context, input user.UpsertKakaoInput) (model.User, error) {
	existing, err := uc.repo.GetByKakaoID(ctx, input.KakaoID)
	if err == nil {
		// Refresh the profile copy; Kakao is the source of truth for it.
		if existing.Name != input.Name || existing.Email != input.Email {
			if err := uc.repo.UpdateProfile(ctx, existing.ID, repository.UpdateProfileOption{
				Name:  input.Name,
				Email: input.Email,
			}); err != nil {
				uc.l.Errorf(ctx, "internal.user.usecase.UpsertKakao.UpdateProfile: %v", err)
				return model.User{}, err
			}
			existing.Name = input.Name
			existing.Email = input.Email
		}
		return existing, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		uc.l.Errorf(ctx, "internal.user.usecase.UpsertKakao.GetByKakaoID: %v", err)
		return model.User{}, err
	}

	created, err := uc.repo.Create(ctx, repository.CreateOption{
		KakaoID: input.KakaoID,
		Name:    input.Name,
		Email:   input.Email,
	})
	if err != nil {
		// A concurrent sign-in can win the insert race. Re-read in that
		// case instead of failing the login.
		if postgre.IsUniqueViolation(err) {
			return uc.repo.GetByKakaoID(ctx, input.KakaoID)
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UpsertKakao.Create: %v", err)
		return model.User{}, err
	}
	return created, nil
}

func (uc implUsecase) UpdatePushToken(ctx context.Context, userID, token string) error {
	if !postgre.IsValidUUID(userID) {
		return user.ErrInvalidUserID
	}
	if strings.TrimSpace(token) == "" {
		return user.ErrInvalidPushToken
	}
	return uc.repo.UpdatePushToken(ctx, userID, token)
}
