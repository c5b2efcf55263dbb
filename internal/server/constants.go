package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed sign-in attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgLoginFailed      = "Sign-in failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderCSP            = "Content-Security-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDeny                 = "DENY"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	// The admin screens load Tailwind from its CDN, which injects inline styles.
	HeaderValueCSP = "default-src 'self'; script-src 'self' https://cdn.tailwindcss.com; " +
		"style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; connect-src 'self'; " +
		"frame-ancestors 'none'; form-action 'self'"
	HeaderValueCSPSwagger = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"
)

// Paths that skip request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/static/",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Rate limiting and failed sign-in alerting
const (
	RateWindow          = 5 * time.Minute
	RateLimitPerWindow  = 1000
	RateLogEvery        = 100
	FailedAuthThreshold = 5
)

// Server timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
	IdleTimeout       = 120 * time.Second
)

// FormOverheadBytes is added to the upload limit for the request body cap
const FormOverheadBytes = 1 << 20
