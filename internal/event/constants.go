package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys attached to admin action events
const (
	MetadataKeyRequestID = "request_id"
	MetadataKeySource    = "source"
)

// Log message constants
const (
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
	LogMsgPublishFailed      = "Admin action event publish failed"
)
