package http

import "seatwatch-srv/internal/user"

type updatePushTokenReq struct {
	PushToken string `json:"pushToken"`
}

func (r updatePushTokenReq) validate() error {
	if r.PushToken == "" {
		return user.ErrInvalidPushToken
	}
	return nil
}
