package http

import (
	"seatwatch-srv/internal/dispatcher"
	"seatwatch-srv/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc dispatcher.Dispatcher
}

func New(l log.Logger, uc dispatcher.Dispatcher) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
