package usecase

import (
	"seatwatch-srv/internal/terminal"
	"seatwatch-srv/internal/terminal/repository"
	"seatwatch-srv/pkg/log"
)

type implUsecase struct {
	l        log.Logger
	repo     repository.Repository
	fallback repository.Repository
}

var _ terminal.UseCase = &implUsecase{}

func New(l log.Logger, repo, fallback repository.Repository) terminal.UseCase {
	return &implUsecase{
		l:        l,
		repo:     repo,
		fallback: fallback,
	}
}
