package usecase

import (
	"seatwatch-srv/internal/alert"
	"seatwatch-srv/internal/alert/repository"
	"seatwatch-srv/internal/operation"
	"seatwatch-srv/pkg/log"
)

type implUsecase struct {
	l       log.Logger
	repo    repository.Repository
	catalog operation.UseCase
}

var _ alert.UseCase = &implUsecase{}

func New(l log.Logger, repo repository.Repository, catalog operation.UseCase) alert.UseCase {
	return &implUsecase{
		l:       l,
		repo:    repo,
		catalog: catalog,
	}
}
