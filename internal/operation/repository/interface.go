package repository

import (
	"context"
	"time"

	"seatwatch-srv/internal/model"
)

//go:generate mockery --name Upstream
type Upstream interface {
	// FetchByRoute pulls a route's live operations from the provider.
	FetchByRoute(ctx context.Context, routeID int) (model.OperationMap, error)
}

// Snapshot is a cached catalog fetch kept as the last known good copy.
type Snapshot struct {
	Operations model.OperationMap `json:"operations"`
	FetchedAt  time.Time          `json:"fetchedAt"`
}

//go:generate mockery --name SnapshotStore
type SnapshotStore interface {
	Get(ctx context.Context, routeID int) (Snapshot, error)
	Set(ctx context.Context, routeID int, snap Snapshot) error
}
