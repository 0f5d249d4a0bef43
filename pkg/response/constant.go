package response

const (
	// MessageSuccess is the success envelope message.
	MessageSuccess = "success"
	// DefaultErrorMessage is returned for unclassified internal errors.
	DefaultErrorMessage = "Internal server error"

	// StatusSuccess is the envelope status for successful responses.
	StatusSuccess = 200
	// InternalServerErrorCode is the envelope status for internal errors.
	InternalServerErrorCode = 500
	// ValidationErrorCode is the envelope status for validation failures.
	ValidationErrorCode = 400

	// ValidationErrorMsg is the envelope message for validation failures.
	ValidationErrorMsg = "validation failed"

	// DefaultStackTraceDepth bounds captured frames for bug reports.
	DefaultStackTraceDepth = 32
	// DiscordMaxMessageLen is Discord's message size limit.
	DiscordMaxMessageLen = 1900
)
