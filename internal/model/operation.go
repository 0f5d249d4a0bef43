package model

// Operation is one scheduled bus departure on a route and date.
// AvailableSeats is the only field that changes over time; it is the
// quantity the watcher observes.
type Operation struct {
	RouteID        int    `json:"routeId"`
	Date           string `json:"date"` // YYYY-MM-DD
	DepartureTime  string `json:"departureTime"`
	BusCompany     string `json:"busCompany"`
	BusType        string `json:"busType"`
	Duration       string `json:"duration"`
	Price          int    `json:"price"`
	AvailableSeats int    `json:"availableSeats"`
	TotalSeats     int    `json:"totalSeats"`
}

// OperationMap groups a route's operations by date, as the client consumes them.
type OperationMap map[string][]Operation

// ScheduleID identifies one Operation instance the way the client
// constructs it: <routeId>_<date>_<index within the date's list>.
func (m OperationMap) Lookup(scheduleID string) (Operation, bool) {
	for date, ops := range m {
		for i, op := range ops {
			if ScheduleID(op.RouteID, date, i) == scheduleID {
				return op, true
			}
		}
	}
	return Operation{}, false
}
