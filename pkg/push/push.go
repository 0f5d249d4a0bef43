package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgErrors "seatwatch-srv/pkg/errors"
	"seatwatch-srv/pkg/log"
)

// DefaultBaseURL is the Expo push gateway.
const DefaultBaseURL = "https://exp.host"

const sendPath = "/--/api/v2/push/send"

// Message is one push notification to one device.
type Message struct {
	To    string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

// ISender delivers push notifications to Expo device tokens.
type ISender interface {
	Send(ctx context.Context, msg Message) error
}

// ErrDeviceNotRegistered means the token is permanently dead and the
// push channel for that user should be disabled, not retried.
var ErrDeviceNotRegistered = fmt.Errorf("push: device not registered")

// ErrInvalidToken means the destination is not a valid Expo push token.
var ErrInvalidToken = fmt.Errorf("push: invalid push token")

type implSender struct {
	l       log.Logger
	baseURL string
	client  *http.Client
}

// New builds an Expo push sender. An empty baseURL uses the public gateway.
func New(l log.Logger, baseURL string, timeout time.Duration) ISender {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &implSender{
		l:       l,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type ticketResponse struct {
	Data struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Details struct {
			Error string `json:"error"`
		} `json:"details"`
	} `json:"data"`
}

func (s *implSender) Send(ctx context.Context, msg Message) error {
	if !strings.HasPrefix(msg.To, "ExponentPushToken[") {
		return ErrInvalidToken
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("push: marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+sendPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("push: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return pkgErrors.NewTransientError("push.Send", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return pkgErrors.NewTransientError("push.Send",
			fmt.Errorf("gateway returned %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push: gateway returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return pkgErrors.NewTransientError("push.Send", err)
	}

	var ticket ticketResponse
	if err := json.Unmarshal(body, &ticket); err != nil {
		return fmt.Errorf("push: decode ticket: %w", err)
	}
	if ticket.Data.Status == "error" {
		if ticket.Data.Details.Error == "DeviceNotRegistered" {
			return ErrDeviceNotRegistered
		}
		return fmt.Errorf("push: ticket error: %s", ticket.Data.Message)
	}

	return nil
}
