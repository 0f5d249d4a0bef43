package auth

import "seatwatch-srv/internal/model"

// LoginOutput is a signed-in session.
type LoginOutput struct {
	User  model.User
	Token string
}
