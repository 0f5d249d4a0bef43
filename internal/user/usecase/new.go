package usecase

import (
	"seatwatch-srv/internal/user"
	"seatwatch-srv/internal/user/repository"
	"seatwatch-srv/pkg/log"
)

type implUsecase struct {
	l    log.Logger
	repo repository.Repository
}

var _ user.UseCase = &implUsecase{}

func New(l log.Logger, repo repository.Repository) user.UseCase {
	return &implUsecase{
		l:    l,
		repo: repo,
	}
}
