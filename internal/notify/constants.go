package notify

import "time"

// Embed appearance
const (
	ColorDestructive = 0xe74c3c // Red
	FooterText       = "PromoAdmin"
	MaxFieldLength   = 1024
)

// Delivery settings
const (
	DefaultTimeout = 10 * time.Second
	JobName        = "discord_notify"
)

// Error messages
const (
	ErrMsgInvalidWebhookURL = "invalid discord webhook url"
)

// Log messages
const (
	LogMsgNotifierDisabled = "Discord webhook not configured, destructive action notifications disabled"
	LogMsgNotifySent       = "Destructive action notification sent"
	LogMsgNotifyFailed     = "Destructive action notification failed"
	LogMsgNotifyDropped    = "Destructive action notification dropped"
	LogMsgPayloadInvalid   = "Admin action payload could not be decoded, not notified"
)
