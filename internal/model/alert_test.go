package model

import (
	"testing"
	"time"
)

func TestAlertExpiry(t *testing.T) {
	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	a := Alert{CreatedAt: created}

	if got := a.ExpiresAt(); !got.Equal(created.Add(24 * time.Hour)) {
		t.Fatalf("ExpiresAt = %s", got)
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"just created", created, false},
		{"one second before", created.Add(24*time.Hour - time.Second), false},
		{"exactly at expiry", created.Add(24 * time.Hour), false},
		{"one second after", created.Add(24*time.Hour + time.Second), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Expired(tt.at); got != tt.want {
				t.Errorf("Expired(%s) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}
