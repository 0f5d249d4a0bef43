package discord

import (
	"errors"
	"time"
)

const (
	// DefaultTimeout bounds one webhook POST.
	DefaultTimeout = 10 * time.Second
	// DefaultRetryCount is the number of attempts per message.
	DefaultRetryCount = 3
	// DefaultRetryDelay is the base delay between attempts.
	DefaultRetryDelay = 500 * time.Millisecond
	// DefaultUsername is the webhook display name.
	DefaultUsername = "seatwatch-srv"

	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")
