package usecase

import (
	"seatwatch-srv/internal/auth"
	"seatwatch-srv/internal/user"
	"seatwatch-srv/pkg/jwt"
	"seatwatch-srv/pkg/kakao"
	"seatwatch-srv/pkg/log"
)

type implUsecase struct {
	l      log.Logger
	kakao  kakao.IClient
	users  user.UseCase
	jwtMgr jwt.Manager
}

var _ auth.UseCase = &implUsecase{}

func New(l log.Logger, kakaoClient kakao.IClient, users user.UseCase, jwtMgr jwt.Manager) auth.UseCase {
	return &implUsecase{
		l:      l,
		kakao:  kakaoClient,
		users:  users,
		jwtMgr: jwtMgr,
	}
}
