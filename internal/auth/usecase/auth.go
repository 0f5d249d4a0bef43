package usecase

import (
	"context"
	"errors"
	"strings"

	"seatwatch-srv/internal/auth"
	"seatwatch-srv/internal/user"
	pkgErrors "seatwatch-srv/pkg/errors"
	"seatwatch-srv/pkg/kakao"
)

func (uc implUsecase) LoginKakao(ctx context.Context, accessToken string) (auth.LoginOutput, error) {
	if strings.TrimSpace(accessToken) == "" {
		return auth.LoginOutput{}, auth.ErrMissingAccessToken
	}

	info, err := uc.kakao.UserInfo(ctx, accessToken)
	if err != nil {
		if errors.Is(err, kakao.ErrInvalidToken) {
			return auth.LoginOutput{}, auth.ErrInvalidKakaoToken
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.LoginKakao.UserInfo: %v", err)
		if pkgErrors.IsTransient(err) {
			return auth.LoginOutput{}, auth.ErrKakaoUnavailable
		}
		return auth.LoginOutput{}, err
	}

	u, err := uc.users.UpsertKakao(ctx, user.UpsertKakaoInput{
		KakaoID: info.KakaoID,
		Name:    info.Nickname,
		Email:   info.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.LoginKakao.UpsertKakao: %v", err)
		return auth.LoginOutput{}, err
	}

	token, err := uc.jwtMgr.Generate(u.ID, u.Name)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.LoginKakao.Generate: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{User: u, Token: token}, nil
}
