package usecase

import (
	"time"

	"seatwatch-srv/internal/dispatcher"
	"seatwatch-srv/internal/dispatcher/repository"
	"seatwatch-srv/pkg/log"
	"seatwatch-srv/pkg/mailer"
	"seatwatch-srv/pkg/push"
)

const (
	maxAttempts = 3
	baseBackoff = 500 * time.Millisecond
	maxBackoff  = 5 * time.Second
)

type implDispatcher struct {
	l        log.Logger
	push     push.ISender
	mail     mailer.ISender
	failures repository.FailureStore
	sleep    func(time.Duration)
}

var _ dispatcher.Dispatcher = &implDispatcher{}

func New(l log.Logger, pushSender push.ISender, mailSender mailer.ISender, failures repository.FailureStore) dispatcher.Dispatcher {
	return &implDispatcher{
		l:        l,
		push:     pushSender,
		mail:     mailSender,
		failures: failures,
		sleep:    time.Sleep,
	}
}
