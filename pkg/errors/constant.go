package errors

const (
	// MessageUnauthorized is the default 401 message.
	MessageUnauthorized = "Unauthorized"
	// MessageNotFound is the default 404 message.
	MessageNotFound = "Not Found"
)
