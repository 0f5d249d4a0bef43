package repository

import (
	"context"

	"seatwatch-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ListDeparture returns every terminal a trip can start from.
	ListDeparture(ctx context.Context) ([]model.Terminal, error)
	// ListArrival returns the terminals reachable from the given
	// departure terminal.
	ListArrival(ctx context.Context, departureID string) ([]model.Terminal, error)
}
