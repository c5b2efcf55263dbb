package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// ServiceName is attached to every log record
	ServiceName = "promo-admin"

	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, including the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingPromoAdmin  = "Starting PromoAdmin"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage
// =============================================================================

const (
	// DBConnectTimeout bounds the startup connection attempt
	DBConnectTimeout = 10 * time.Second
)

const (
	LogMsgDatabaseConnected   = "Database connected"
	LogMsgMigrationsApplied   = "Database migrations applied"
	LogMsgDatabaseUnavailable = "Database unavailable, sessions and audit log are kept in memory"
	ErrMsgMigrationFailed     = "failed to apply database migrations"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgAuditSubscribed            = "Audit log subscribed to admin actions"
	LogMsgLiveRefreshSubscribed      = "Live refresh subscribed to admin actions"
	LogMsgNotifierSubscribed         = "Discord notifier subscribed to destructive actions"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedCreateNotifier       = "failed to create discord notifier"
)

// =============================================================================
// Background jobs
// =============================================================================

const (
	// AuditCleanupInterval is how often the audit retention job runs
	AuditCleanupInterval = 24 * time.Hour

	// SessionPurgeInterval is how often expired sessions are removed
	SessionPurgeInterval = time.Hour

	LogMsgBackgroundJobsStarted = "Background jobs started"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingBackground   = "Stopping background jobs..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
