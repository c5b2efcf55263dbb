package config

import "time"

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort               = 8080
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultLogDir             = "logs"
	DefaultEnvironment        = "dev"
	DefaultVersion            = "dev"
	DefaultAPITimeout         = 15 * time.Second
	DefaultSessionTTL         = 12 * time.Hour
	DefaultDisplayTimezone    = "UTC"
	DefaultTapathonBatchSize  = 100
	DefaultAuditRetentionDays = 90
	DefaultMaxUploadBytes     = 5 << 20

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)
