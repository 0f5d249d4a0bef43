package repository

import (
	"context"
	"time"
)

// FailureRecord is the stored form of a permanent delivery failure.
type FailureRecord struct {
	AlertID    string    `json:"alertId"`
	ScheduleID string    `json:"scheduleId"`
	Channel    string    `json:"channel"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurredAt"`
}

//go:generate mockery --name FailureStore
type FailureStore interface {
	Record(ctx context.Context, userID string, rec FailureRecord) error
	List(ctx context.Context, userID string) ([]FailureRecord, error)
}
