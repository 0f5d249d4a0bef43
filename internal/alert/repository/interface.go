package repository

import (
	"context"
	"time"

	"seatwatch-srv/internal/model"
	"seatwatch-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opt CreateOption) (model.Alert, error)
	GetByID(ctx context.Context, id string) (model.Alert, error)
	ListByUser(ctx context.Context, userID string) ([]model.Alert, error)
	// ListActive pages through alerts the watcher must evaluate:
	// active and not yet expired at the given instant.
	ListActive(ctx context.Context, opt ListActiveOption) ([]model.Alert, paginator.Paginator, error)
	SetActive(ctx context.Context, id string, isActive bool) error
	// MarkNotified stamps the most recent successful notification.
	MarkNotified(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	// DeactivateExpired flips alerts past their lifetime to inactive
	// and returns how many rows changed.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
