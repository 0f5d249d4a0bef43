package model

import "time"

// User represents a service user, created on first Kakao sign-in.
// Email and PushToken are stored encrypted; the model carries plaintext.
type User struct {
	ID        string    `json:"id"`
	KakaoID   int64     `json:"-"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	PushToken string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
