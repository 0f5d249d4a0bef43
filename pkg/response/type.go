package response

import "seatwatch-srv/pkg/errors"

// Resp is the envelope the mobile client unwraps: {status, message, data}.
type Resp struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain sentinel errors to HTTP errors.
type ErrorMapping map[error]*errors.HTTPError
