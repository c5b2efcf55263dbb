package auth

import "time"

// Session cookie and id settings
const (
	CookieName       = "promo_admin_session"
	DefaultLoginPath = "/login"
	NextParam        = "next"
	sessionIDBytes   = 32
)

// Session cache settings
const (
	// CacheSchemaVersion invalidates cached sessions when the cached structure changes
	CacheSchemaVersion = "1.0"
	DefaultCacheSize   = 1024
	DefaultCacheTTL    = 5 * time.Minute
)

// Validation messages
const (
	MsgRequired = "is required"
)

// Log messages
const (
	LogMsgLoginSucceeded   = "Admin signed in"
	LogMsgLoginFailed      = "Admin sign in failed"
	LogMsgSessionExpired   = "Session expired"
	LogMsgSessionPurgeFail = "Failed to delete expired session"
	LogMsgLoggedOut        = "Admin signed out"
	LogMsgUnauthenticated  = "Request without a valid session"
	LogMsgSessionsPurged   = "Expired sessions deleted"
)
