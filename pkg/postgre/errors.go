package postgre

import "errors"

var (
	// ErrInvalidUUID is returned for malformed UUID input.
	ErrInvalidUUID = errors.New("invalid UUID format")
)
