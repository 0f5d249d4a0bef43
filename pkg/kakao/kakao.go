package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	pkgErrors "seatwatch-srv/pkg/errors"
	"seatwatch-srv/pkg/log"
)

// DefaultBaseURL is the Kakao API host.
const DefaultBaseURL = "https://kapi.kakao.com"

const userInfoPath = "/v2/user/me"

// UserInfo is the subset of the Kakao profile this service needs.
type UserInfo struct {
	KakaoID  int64
	Nickname string
	Email    string
}

// IClient verifies a Kakao access token and resolves the user behind it.
type IClient interface {
	UserInfo(ctx context.Context, accessToken string) (UserInfo, error)
}

type implClient struct {
	l       log.Logger
	baseURL string
	client  *http.Client
}

// New builds a Kakao client. An empty baseURL uses the public API host.
func New(l log.Logger, baseURL string, timeout time.Duration) IClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &implClient{
		l:       l,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type userInfoResponse struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname string `json:"nickname"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

// ErrInvalidToken is returned when Kakao rejects the access token.
var ErrInvalidToken = fmt.Errorf("kakao: invalid access token")

func (c *implClient) UserInfo(ctx context.Context, accessToken string) (UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+userInfoPath, nil)
	if err != nil {
		return UserInfo{}, fmt.Errorf("kakao: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return UserInfo{}, pkgErrors.NewTransientError("kakao.UserInfo", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return UserInfo{}, ErrInvalidToken
	case resp.StatusCode >= 500:
		return UserInfo{}, pkgErrors.NewTransientError("kakao.UserInfo",
			fmt.Errorf("upstream returned %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return UserInfo{}, fmt.Errorf("kakao: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return UserInfo{}, pkgErrors.NewTransientError("kakao.UserInfo", err)
	}

	var parsed userInfoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return UserInfo{}, fmt.Errorf("kakao: decode user info: %w", err)
	}
	if parsed.ID == 0 {
		return UserInfo{}, ErrInvalidToken
	}

	return UserInfo{
		KakaoID:  parsed.ID,
		Nickname: parsed.KakaoAccount.Profile.Nickname,
		Email:    parsed.KakaoAccount.Email,
	}, nil
}
