package scheduler

// Log messages
const (
	LogMsgJobScheduled = "Background job scheduled"
)
