package operation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ListByRoute returns the operations of a route grouped by date.
	// When the upstream provider is unreachable it returns the last
	// snapshot with Stale set; it never fabricates data.
	ListByRoute(ctx context.Context, routeID int) (CatalogOutput, error)
}
