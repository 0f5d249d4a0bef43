package usecase

import (
	"context"
	"errors"
	"strconv"

	"seatwatch-srv/internal/alert"
	"seatwatch-srv/internal/alert/repository"
	"seatwatch-srv/internal/model"
	"seatwatch-srv/internal/operation"
	"seatwatch-srv/internal/user"
	"seatwatch-srv/pkg/postgre"
)

func (uc implUsecase) Create(ctx context.Context, input alert.CreateInput) (model.Alert, error) {
	if err := uc.validateCreate(ctx, input); err != nil {
		return model.Alert{}, err
	}

	created, err := uc.repo.Create(ctx, repository.CreateOption{
		UserID:            input.UserID,
		RouteID:           input.RouteID,
		ScheduleID:        input.ScheduleID,
		TargetSeats:       input.TargetSeats,
		PushNotification:  input.PushNotification,
		EmailNotification: input.EmailNotification,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Create.repo: %v", err)
		return model.Alert{}, err
	}
	return created, nil
}

func (uc implUsecase) validateCreate(ctx context.Context, input alert.CreateInput) error {
	if !postgre.IsValidUUID(input.UserID) {
		return user.ErrInvalidUserID
	}
	if input.TargetSeats < model.TargetSeatsMin || input.TargetSeats > model.TargetSeatsMax {
		return alert.ErrInvalidTargetSeats
	}
	if !input.PushNotification && !input.EmailNotification {
		return alert.ErrNoChannelEnabled
	}

	schedRoute, _, _, err := model.ParseScheduleID(input.ScheduleID)
	if err != nil {
		return alert.ErrInvalidSchedule
	}
	routeID, err := strconv.Atoi(input.RouteID)
	if err != nil || routeID != schedRoute {
		return alert.ErrInvalidSchedule
	}

	// Referential check against the live catalog. A provider outage
	// must not block alert creation, so only a positive miss rejects.
	out, err := uc.catalog.ListByRoute(ctx, routeID)
	if err != nil {
		if errors.Is(err, operation.ErrRouteNotFound) {
			return alert.ErrInvalidSchedule
		}
		uc.l.Warnf(ctx, "internal.alert.usecase.validateCreate.catalog: %v, accepting unverified", err)
		return nil
	}
	if _, ok := out.SeatCount(input.ScheduleID); !ok {
		return alert.ErrInvalidSchedule
	}
	return nil
}

func (uc implUsecase) ListByUser(ctx context.Context, userID string) ([]model.Alert, error) {
	if !postgre.IsValidUUID(userID) {
		return nil, user.ErrInvalidUserID
	}

	alerts, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.ListByUser.repo: %v", err)
		return nil, err
	}
	return alerts, nil
}

func (uc implUsecase) SetActive(ctx context.Context, alertID string, isActive bool) (model.Alert, error) {
	if !postgre.IsValidUUID(alertID) {
		return model.Alert{}, alert.ErrInvalidAlertID
	}

	if err := uc.repo.SetActive(ctx, alertID, isActive); err != nil {
		if !errors.Is(err, alert.ErrAlertNotFound) {
			uc.l.Errorf(ctx, "internal.alert.usecase.SetActive.repo: %v", err)
		}
		return model.Alert{}, err
	}
	return uc.repo.GetByID(ctx, alertID)
}

func (uc implUsecase) Delete(ctx context.Context, alertID string) error {
	if !postgre.IsValidUUID(alertID) {
		return alert.ErrInvalidAlertID
	}

	if err := uc.repo.Delete(ctx, alertID); err != nil {
		if !errors.Is(err, alert.ErrAlertNotFound) {
			uc.l.Errorf(ctx, "internal.alert.usecase.Delete.repo: %v", err)
		}
		return err
	}
	return nil
}
