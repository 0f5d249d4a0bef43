package middleware

import (
	"seatwatch-srv/pkg/jwt"
	"seatwatch-srv/pkg/log"
)

type Middleware struct {
	l      log.Logger
	jwtMgr jwt.Manager
}

func New(l log.Logger, jwtMgr jwt.Manager) Middleware {
	return Middleware{
		l:      l,
		jwtMgr: jwtMgr,
	}
}
