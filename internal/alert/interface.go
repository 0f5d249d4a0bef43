package alert

import (
	"context"

	"seatwatch-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create registers a new seat alert for a schedule.
	Create(ctx context.Context, input CreateInput) (model.Alert, error)
	// ListByUser returns all of a user's alerts, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Alert, error)
	// SetActive pauses or resumes an alert.
	SetActive(ctx context.Context, alertID string, isActive bool) (model.Alert, error)
	// Delete removes an alert permanently.
	Delete(ctx context.Context, alertID string) error
}
