package upstream

import (
	"net/http"
	"time"

	"seatwatch-srv/internal/operation/repository"
	"seatwatch-srv/pkg/log"
)

const defaultTimeout = 10 * time.Second

type implUpstream struct {
	l       log.Logger
	client  *http.Client
	baseURL string
}

var _ repository.Upstream = &implUpstream{}

func New(l log.Logger, baseURL string, timeout time.Duration) repository.Upstream {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &implUpstream{
		l:       l,
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}
