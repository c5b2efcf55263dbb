package postgres

// Error Messages - repository operations
const (
	ErrMsgFailedToSaveSession   = "failed to save session"
	ErrMsgFailedToGetSession    = "failed to get session"
	ErrMsgFailedToDeleteSession = "failed to delete session"
	ErrMsgFailedToPurgeSessions = "failed to delete expired sessions"
	ErrMsgFailedToRecordAudit   = "failed to record audit entry"
	ErrMsgFailedToQueryAudit    = "failed to query audit log"
	ErrMsgFailedToCountAudit    = "failed to count audit entries"
	ErrMsgFailedToDeleteAudit   = "failed to delete audit entries"
)
