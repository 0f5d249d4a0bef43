package http

import (
	"seatwatch-srv/internal/operation"
	"seatwatch-srv/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc operation.UseCase
}

func New(l log.Logger, uc operation.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
