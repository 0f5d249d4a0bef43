package dispatcher

import "context"

//go:generate mockery --name Dispatcher
type Dispatcher interface {
	// Dispatch sends the seat notification on every enabled channel.
	// Channels are independent: one failing does not stop the other.
	Dispatch(ctx context.Context, input Input) Output
	// ListFailures returns a user's recent permanent delivery failures.
	ListFailures(ctx context.Context, userID string) ([]Failure, error)
}
