package http

import "seatwatch-srv/internal/auth"

type loginKakaoReq struct {
	AccessToken string `json:"accessToken"`
}

func (r loginKakaoReq) validate() error {
	if r.AccessToken == "" {
		return auth.ErrMissingAccessToken
	}
	return nil
}

// loginKakaoResp is returned as a bare object, not wrapped in the
// response envelope. The client reads these exact keys.
type loginKakaoResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

func newLoginKakaoResp(out auth.LoginOutput) loginKakaoResp {
	return loginKakaoResp{
		ID:          out.User.ID,
		Name:        out.User.Name,
		Email:       out.User.Email,
		AccessToken: out.Token,
	}
}
