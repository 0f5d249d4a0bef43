package http

import (
	"seatwatch-srv/internal/auth"
	"seatwatch-srv/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc auth.UseCase
}

func New(l log.Logger, uc auth.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
