package redis

import (
	"seatwatch-srv/internal/dispatcher/repository"
	"seatwatch-srv/pkg/log"
	pkgRedis "seatwatch-srv/pkg/redis"
)

// maxKept bounds the failure list per user; older entries fall off.
const maxKept = 100

type implFailureStore struct {
	l     log.Logger
	redis pkgRedis.IRedis
}

var _ repository.FailureStore = &implFailureStore{}

func New(l log.Logger, redis pkgRedis.IRedis) repository.FailureStore {
	return &implFailureStore{
		l:     l,
		redis: redis,
	}
}
