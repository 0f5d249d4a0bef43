package model

import "testing"

func TestScheduleIDRoundTrip(t *testing.T) {
	id := ScheduleID(46251, "2026-09-01", 3)
	if id != "46251_2026-09-01_3" {
		t.Fatalf("ScheduleID = %q", id)
	}

	routeID, date, index, err := ParseScheduleID(id)
	if err != nil {
		t.Fatalf("ParseScheduleID() error = %v", err)
	}
	if routeID != 46251 || date != "2026-09-01" || index != 3 {
		t.Fatalf("parsed = %d %q %d", routeID, date, index)
	}
}

func TestParseScheduleIDMalformed(t *testing.T) {
	tests := []string{
		"",
		"46251",
		"46251_2026-09-01",
		"abc_2026-09-01_0",
		"46251_2026-09-01_x",
		"46251_2026-09-01_0_extra",
	}
	for _, id := range tests {
		if _, _, _, err := ParseScheduleID(id); err == nil {
			t.Errorf("ParseScheduleID(%q) = nil error, want error", id)
		}
	}
}

func TestOperationMapLookup(t *testing.T) {
	m := OperationMap{
		"2026-09-01": {
			{RouteID: 46251, Date: "2026-09-01", DepartureTime: "06:00:00", AvailableSeats: 1},
			{RouteID: 46251, Date: "2026-09-01", DepartureTime: "08:00:00", AvailableSeats: 7},
		},
		"2026-09-02": {
			{RouteID: 46251, Date: "2026-09-02", DepartureTime: "06:00:00", AvailableSeats: 0},
		},
	}

	op, ok := m.Lookup("46251_2026-09-01_1")
	if !ok || op.DepartureTime != "08:00:00" {
		t.Fatalf("Lookup second slot = %+v, %v", op, ok)
	}

	if _, ok := m.Lookup("46251_2026-09-01_9"); ok {
		t.Fatal("Lookup out-of-range index succeeded")
	}
	if _, ok := m.Lookup("99999_2026-09-01_0"); ok {
		t.Fatal("Lookup wrong route succeeded")
	}
}
