package audit

// Query limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 500

	// DefaultMemoryEntries bounds the in-memory store used without a database
	DefaultMemoryEntries = 5000
)

// Log messages - subscriber
const (
	LogMsgPayloadInvalid = "Admin action payload could not be decoded, skipping audit"
	LogMsgRecordFailed   = "Failed to write audit entry"
	LogMsgRecorded       = "Audit entry written"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting audit log cleanup job"
	LogMsgCleanupJobFailed    = "Audit log cleanup failed"
	LogMsgCleanupJobCompleted = "Audit log cleanup completed"
	LogMsgCleanupDisabled     = "Audit log retention disabled, skipping cleanup"
)
