package operation

import "errors"

var (
	// ErrCatalogUnavailable is returned when the upstream provider is
	// down and no snapshot exists to fall back on.
	ErrCatalogUnavailable = errors.New("operation catalog unavailable")
	ErrRouteNotFound      = errors.New("route not found")
)
