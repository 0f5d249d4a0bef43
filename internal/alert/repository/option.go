package repository

import (
	"time"

	"seatwatch-srv/pkg/paginator"
)

// CreateOption carries the fields for a new alert row.
type CreateOption struct {
	UserID            string
	RouteID           string
	ScheduleID        string
	TargetSeats       int
	PushNotification  bool
	EmailNotification bool
}

// ListActiveOption pages the watcher's sweep over eligible alerts.
type ListActiveOption struct {
	Now      time.Time
	Paginate paginator.PaginateQuery
}
