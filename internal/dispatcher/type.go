package dispatcher

import (
	"time"

	"seatwatch-srv/internal/model"
)

// Channel names a delivery route for a notification.
type Channel string

const (
	ChannelPush  Channel = "push"
	ChannelEmail Channel = "email"
)

// Input is one seat availability event to deliver.
type Input struct {
	Alert model.Alert
	User  model.User
	// Channels lists the channels still owed a notification for the
	// current episode. Already-delivered channels are excluded so a
	// retry never duplicates them.
	Channels []Channel
	// Seats is the observed available seat count that crossed the target.
	Seats int
}

// EnabledChannels lists the channels an alert asks for.
func EnabledChannels(a model.Alert) []Channel {
	var channels []Channel
	if a.PushNotification {
		channels = append(channels, ChannelPush)
	}
	if a.EmailNotification {
		channels = append(channels, ChannelEmail)
	}
	return channels
}

// ChannelResult is the outcome of one channel's delivery attempt chain.
type ChannelResult struct {
	Delivered bool
	// Permanent marks a failure that retrying cannot fix (bad address,
	// unregistered device). The channel is settled either way.
	Permanent bool
	Err       error
}

// Output maps each attempted channel to its outcome. Channels the alert
// has disabled are absent.
type Output map[Channel]ChannelResult

// AllSettled reports whether every attempted channel either delivered
// or failed permanently. Unsettled channels are retried next sweep.
func (o Output) AllSettled() bool {
	for _, r := range o {
		if !r.Delivered && !r.Permanent {
			return false
		}
	}
	return true
}

// AnyDelivered reports whether at least one channel got through.
func (o Output) AnyDelivered() bool {
	for _, r := range o {
		if r.Delivered {
			return true
		}
	}
	return false
}

// Failure is a permanent delivery failure kept for the client to show.
type Failure struct {
	AlertID    string    `json:"alertId"`
	ScheduleID string    `json:"scheduleId"`
	Channel    Channel   `json:"channel"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurredAt"`
}
