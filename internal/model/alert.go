package model

import "time"

const (
	// TargetSeatsMin is the smallest allowed seat threshold.
	TargetSeatsMin = 1
	// TargetSeatsMax is the largest allowed seat threshold.
	TargetSeatsMax = 10

	// AlertLifetime is how long an alert stays eligible after creation.
	AlertLifetime = 24 * time.Hour
)

// Alert is a user's standing request to be notified when a schedule's
// available seats reach a threshold.
type Alert struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	RouteID           string     `json:"routeId"`
	ScheduleID        string     `json:"scheduleId"`
	TargetSeats       int        `json:"targetSeats"`
	PushNotification  bool       `json:"pushNotification"`
	EmailNotification bool       `json:"emailNotification"`
	IsActive          bool       `json:"isActive"`
	CreatedAt         time.Time  `json:"createdAt"`
	LastNotifiedAt    *time.Time `json:"lastNotifiedAt,omitempty"`
}

// ExpiresAt is derived: alerts are eligible for 24 hours after creation.
func (a Alert) ExpiresAt() time.Time {
	return a.CreatedAt.Add(AlertLifetime)
}

// Expired reports whether the alert is past its lifetime at the given instant.
func (a Alert) Expired(now time.Time) bool {
	return now.After(a.ExpiresAt())
}

// WatchState is the watcher's per-alert lifecycle state.
type WatchState string

const (
	// WatchDormant means seats are below target (or the alert was never evaluated).
	WatchDormant WatchState = "dormant"
	// WatchArmedPending means seats crossed the target but delivery has not
	// completed for every enabled channel.
	WatchArmedPending WatchState = "armed_pending"
	// WatchNotified means the current episode has been notified.
	WatchNotified WatchState = "notified"
	// WatchExpired is terminal: past expiry or deactivated.
	WatchExpired WatchState = "expired"
)
