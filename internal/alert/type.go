package alert

// CreateInput carries the fields of a new alert request.
type CreateInput struct {
	UserID            string
	RouteID           string
	ScheduleID        string
	TargetSeats       int
	PushNotification  bool
	EmailNotification bool
}
