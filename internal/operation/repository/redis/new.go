package redis

import (
	"time"

	"seatwatch-srv/internal/operation/repository"
	"seatwatch-srv/pkg/log"
	pkgRedis "seatwatch-srv/pkg/redis"
)

type implSnapshotStore struct {
	l     log.Logger
	redis pkgRedis.IRedis
	ttl   time.Duration
}

var _ repository.SnapshotStore = &implSnapshotStore{}

// New returns a snapshot store that keeps the last known good catalog
// fetch per route for ttl.
func New(l log.Logger, redis pkgRedis.IRedis, ttl time.Duration) repository.SnapshotStore {
	return &implSnapshotStore{
		l:     l,
		redis: redis,
		ttl:   ttl,
	}
}
