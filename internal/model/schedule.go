package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ScheduleID builds the schedule identifier the client uses:
// <routeId>_<date>_<index>.
func ScheduleID(routeID int, date string, index int) string {
	return fmt.Sprintf("%d_%s_%d", routeID, date, index)
}

// ParseScheduleID splits a schedule identifier into its parts.
func ParseScheduleID(scheduleID string) (routeID int, date string, index int, err error) {
	parts := strings.Split(scheduleID, "_")
	if len(parts) != 3 {
		return 0, "", 0, fmt.Errorf("malformed schedule id %q", scheduleID)
	}
	routeID, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", 0, fmt.Errorf("malformed schedule id %q: %v", scheduleID, err)
	}
	index, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, "", 0, fmt.Errorf("malformed schedule id %q: %v", scheduleID, err)
	}
	return routeID, parts[1], index, nil
}
