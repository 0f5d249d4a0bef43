package operation

import (
	"time"

	"seatwatch-srv/internal/model"
)

// CatalogOutput carries a route's operations plus freshness metadata.
type CatalogOutput struct {
	Operations model.OperationMap
	FetchedAt  time.Time
	Stale      bool
}

// SeatCount resolves the current available seat count for one schedule.
func (o CatalogOutput) SeatCount(scheduleID string) (int, bool) {
	op, ok := o.Operations.Lookup(scheduleID)
	if !ok {
		return 0, false
	}
	return op.AvailableSeats, true
}
