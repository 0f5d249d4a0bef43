package postgre

import (
	"context"
	"database/sql"
	"time"

	"seatwatch-srv/internal/alert"
	"seatwatch-srv/internal/alert/repository"
	"seatwatch-srv/internal/model"
	"seatwatch-srv/pkg/paginator"
	"seatwatch-srv/pkg/postgre"
)

const alertColumns = `id, user_id, route_id, schedule_id, target_seats,
	push_notification, email_notification, is_active, created_at, last_notified_at`

const createQuery = `
	INSERT INTO alerts (id, user_id, route_id, schedule_id, target_seats,
		push_notification, email_notification, is_active, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, $8)`

func (repo implRepository) Create(ctx context.Context, opt repository.CreateOption) (model.Alert, error) {
	a := model.Alert{
		ID:                postgre.NewUUID(),
		UserID:            opt.UserID,
		RouteID:           opt.RouteID,
		ScheduleID:        opt.ScheduleID,
		TargetSeats:       opt.TargetSeats,
		PushNotification:  opt.PushNotification,
		EmailNotification: opt.EmailNotification,
		IsActive:          true,
		CreatedAt:         time.Now().UTC(),
	}

	_, err := repo.db.ExecContext(ctx, createQuery,
		a.ID, a.UserID, a.RouteID, a.ScheduleID, a.TargetSeats,
		a.PushNotification, a.EmailNotification, a.CreatedAt)
	if err != nil {
		repo.l.Errorf(ctx, "internal.alert.repository.postgre.Create.ExecContext: %v", err)
		return model.Alert{}, err
	}
	return a, nil
}

const getByIDQuery = `
	SELECT ` + alertColumns + `
	FROM alerts
	WHERE id = $1`

func (repo implRepository) GetByID(ctx context.Context, id string) (model.Alert, error) {
	row := repo.db.QueryRowContext(ctx, getByIDQuery, id)

	a, err := scanAlert(row.Scan)
	if err == sql.ErrNoRows {
		return model.Alert{}, alert.ErrAlertNotFound
	}
	if err != nil {
		repo.l.Errorf(ctx, "internal.alert.repository.postgre.GetByID.Scan: %v", err)
		return model.Alert{}, err
	}
	return a, nil
}

const listByUserQuery = `
	SELECT ` + alertColumns + `
	FROM alerts
	WHERE user_id = $1
	ORDER BY created_at DESC`

func (repo implRepository) ListByUser(ctx context.Context, userID string) ([]model.Alert, error) {
	rows, err := repo.db.QueryContext(ctx, listByUserQuery, userID)
	if err != nil {
		repo.l.Errorf(ctx, "internal.alert.repository.postgre.ListByUser.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	return collectAlerts(rows)
}

const countActiveQuery = `
	SELECT COUNT(*)
	FROM alerts
	WHERE is_active AND created_at > $1`

const listActiveQuery = `
	SELECT ` + alertColumns + `
	FROM alerts
	WHERE is_active AND created_at > $1
	ORDER BY route_id, created_at
	LIMIT $2 OFFSET $3`

func (repo implRepository) ListActive(ctx context.Context, opt repository.ListActiveOption) ([]model.Alert, paginator.Paginator, error) {
	opt.Paginate.Adjust()

	// created_at > now-24h keeps expired alerts out of the sweep.
	cutoff := opt.Now.Add(-model.AlertLifetime)

	var total int64
	if err := repo.db.QueryRowContext(ctx, countActiveQuery, cutoff).Scan(&total); err != nil {
		repo.l.Errorf(ctx, "internal.alert.repository.postgre.ListActive.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	rows, err := repo.db.QueryContext(ctx, listActiveQuery, cutoff, opt.Paginate.Limit, opt.Paginate.Offset())
	if err != nil {
		repo.l.Errorf(ctx, "internal.alert.repository.postgre.ListActive.QueryContext: %v", err)
		return nil, paginator.Paginator{}, err
	}
	defer rows.Close()

	alerts, err := collectAlerts(rows)
	if err != nil {
		repo.l.Errorf(ctx, "internal.alert.repository.postgre.ListActive.scan: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return alerts, paginator.Paginator{
		Total:       total,
		Count:       int64(len(alerts)),
		PerPage:     opt.Paginate.Limit,
		CurrentPage: opt.Paginate.Page,
	}, nil
}

const setActiveQuery = `
	UPDATE alerts SET is_active = $2
	WHERE id = $1`

func (repo implRepository) SetActive(ctx context.Context, id string, isActive bool) error {
	res, err := repo.db.ExecContext(ctx, setActiveQuery, id, isActive)
	if err != nil {
		repo.l.Errorf(ctx, "internal.alert.repository.postgre.SetActive.ExecContext: %v", err)
		return err
	}
	return checkAffected(res)
}

const markNotifiedQuery = `
	UPDATE alerts SET last_notified_at = $2
	WHERE id = $1`

func (repo implRepository) MarkNotified(ctx context.Context, id string, at time.Time) error {
	res, err := repo.db.ExecContext(ctx, markNotifiedQuery, id, at.UTC())
	if err != nil {
		repo.l.Errorf(ctx, "internal.alert.repository.postgre.MarkNotified.ExecContext: %v", err)
		return err
	}
	return checkAffected(res)
}

const deleteQuery = `
	DELETE FROM alerts
	WHERE id = $1`

func (repo implRepository) Delete(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		repo.l.Errorf(ctx, "internal.alert.repository.postgre.Delete.ExecContext: %v", err)
		return err
	}
	return checkAffected(res)
}

const deactivateExpiredQuery = `
	UPDATE alerts SET is_active = FALSE
	WHERE is_active AND created_at <= $1`

func (repo implRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.Add(-model.AlertLifetime)

	res, err := repo.db.ExecContext(ctx, deactivateExpiredQuery, cutoff)
	if err != nil {
		repo.l.Errorf(ctx, "internal.alert.repository.postgre.DeactivateExpired.ExecContext: %v", err)
		return 0, err
	}
	return res.RowsAffected()
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return alert.ErrAlertNotFound
	}
	return nil
}

func scanAlert(scan func(dest ...any) error) (model.Alert, error) {
	var (
		a          model.Alert
		notifiedAt sql.NullTime
	)
	err := scan(&a.ID, &a.UserID, &a.RouteID, &a.ScheduleID, &a.TargetSeats,
		&a.PushNotification, &a.EmailNotification, &a.IsActive, &a.CreatedAt, &notifiedAt)
	if err != nil {
		return model.Alert{}, err
	}
	if notifiedAt.Valid {
		a.LastNotifiedAt = &notifiedAt.Time
	}
	return a, nil
}

func collectAlerts(rows *sql.Rows) ([]model.Alert, error) {
	var alerts []model.Alert
	for rows.Next() {
		a, err := scanAlert(rows.Scan)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
