package redis

import (
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

var (
	// ErrHostRequired is returned when no host is configured.
	ErrHostRequired = errors.New("redis: host is required")
	// ErrInvalidPort is returned for an out-of-range port.
	ErrInvalidPort = errors.New("redis: invalid port")
	// ErrNil is returned when a key does not exist.
	ErrNil = goredis.Nil
)

// IsNil reports whether err means "key not found".
func IsNil(err error) bool {
	return errors.Is(err, goredis.Nil)
}
