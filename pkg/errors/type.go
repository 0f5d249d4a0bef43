package errors

// ValidationError is an error with a field and messages.
// It maps to HTTP 400 and is never retried.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ValidationErrorCollector collects multiple validation errors.
type ValidationErrorCollector struct {
	errors []*ValidationError
}

// HTTPError represents an HTTP error with status code and message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// TransientError wraps an upstream failure that is safe to retry
// (network errors, timeouts, 5xx). Callers use IsTransient to decide
// between retry-with-backoff and surfacing the error.
type TransientError struct {
	Op  string
	Err error
}
