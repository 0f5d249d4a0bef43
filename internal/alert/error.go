package alert

import "errors"

var (
	ErrAlertNotFound      = errors.New("alert not found")
	ErrInvalidAlertID     = errors.New("invalid alert id")
	ErrInvalidTargetSeats = errors.New("target seats out of range")
	ErrInvalidSchedule    = errors.New("schedule does not exist on route")
	ErrNoChannelEnabled   = errors.New("no notification channel enabled")
)
