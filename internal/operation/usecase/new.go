package usecase

import (
	"time"

	"seatwatch-srv/internal/operation"
	"seatwatch-srv/internal/operation/repository"
	"seatwatch-srv/pkg/log"
)

type implUsecase struct {
	l        log.Logger
	upstream repository.Upstream
	snaps    repository.SnapshotStore
	freshFor time.Duration
	clock    func() time.Time
}

var _ operation.UseCase = &implUsecase{}

// New builds the catalog usecase. freshFor is the window in which a
// snapshot is served without hitting the provider again.
func New(l log.Logger, upstream repository.Upstream, snaps repository.SnapshotStore, freshFor time.Duration) operation.UseCase {
	return &implUsecase{
		l:        l,
		upstream: upstream,
		snaps:    snaps,
		freshFor: freshFor,
		clock:    time.Now,
	}
}
