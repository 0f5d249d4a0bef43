package http

import (
	"time"

	"seatwatch-srv/internal/alert"
	"seatwatch-srv/internal/model"
)

type createAlertReq struct {
	UserID            string `json:"userId"`
	RouteID           string `json:"routeId"`
	ScheduleID        string `json:"scheduleId"`
	TargetSeats       int    `json:"targetSeats"`
	PushNotification  bool   `json:"pushNotification"`
	EmailNotification bool   `json:"emailNotification"`
}

func (r createAlertReq) toInput() alert.CreateInput {
	return alert.CreateInput{
		UserID:            r.UserID,
		RouteID:           r.RouteID,
		ScheduleID:        r.ScheduleID,
		TargetSeats:       r.TargetSeats,
		PushNotification:  r.PushNotification,
		EmailNotification: r.EmailNotification,
	}
}

type updateAlertReq struct {
	IsActive *bool `json:"isActive"`
}

// alertResp is returned as bare JSON, not wrapped in the response
// envelope. The first seven keys are what the client reads; the rest
// are additive.
type alertResp struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	RouteID           string     `json:"routeId"`
	ScheduleID        string     `json:"scheduleId"`
	IsActive          bool       `json:"isActive"`
	CreatedAt         time.Time  `json:"createdAt"`
	TargetSeats       int        `json:"targetSeats"`
	PushNotification  bool       `json:"pushNotification"`
	EmailNotification bool       `json:"emailNotification"`
	LastNotifiedAt    *time.Time `json:"lastNotifiedAt,omitempty"`
	ExpiresAt         time.Time  `json:"expiresAt"`
}

func newAlertResp(a model.Alert) alertResp {
	return alertResp{
		ID:                a.ID,
		UserID:            a.UserID,
		RouteID:           a.RouteID,
		ScheduleID:        a.ScheduleID,
		IsActive:          a.IsActive,
		CreatedAt:         a.CreatedAt,
		TargetSeats:       a.TargetSeats,
		PushNotification:  a.PushNotification,
		EmailNotification: a.EmailNotification,
		LastNotifiedAt:    a.LastNotifiedAt,
		ExpiresAt:         a.ExpiresAt(),
	}
}

func newAlertListResp(alerts []model.Alert) []alertResp {
	out := make([]alertResp, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, newAlertResp(a))
	}
	return out
}
