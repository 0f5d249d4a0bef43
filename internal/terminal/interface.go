package terminal

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ListDeparture(ctx context.Context) (DirectoryOutput, error)
	ListArrival(ctx context.Context, departureID string) (DirectoryOutput, error)
}
