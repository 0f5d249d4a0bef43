package discord

import (
	"net/http"
	"time"

	"seatwatch-srv/pkg/log"
)

// DiscordWebhook identifies one webhook endpoint.
type DiscordWebhook struct {
	ID    string
	Token string
}

// Config holds client tuning knobs.
type Config struct {
	Timeout         time.Duration
	RetryCount      int
	RetryDelay      time.Duration
	DefaultUsername string
}

type webhookInfo struct {
	id    string
	token string
}

type discordImpl struct {
	l       log.Logger
	webhook *webhookInfo
	config  Config
	client  *http.Client
}

type webhookPayload struct {
	Content  string `json:"content,omitempty"`
	Username string `json:"username,omitempty"`
}
