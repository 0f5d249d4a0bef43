package http

import (
	"seatwatch-srv/internal/terminal"
	"seatwatch-srv/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc terminal.UseCase
}

func New(l log.Logger, uc terminal.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
