package admin

// Screen paths
const (
	PathLogin      = "/login"
	PathLogout     = "/logout"
	PathDashboard  = "/"
	PathCountdown  = "/countdown"
	PathFounder    = "/founder-pack"
	PathTaps       = "/tapathon/taps"
	PathTapGoals   = "/tapathon/goals"
	PathTapRewards = "/tapathon/rewards"
	PathImages     = "/images"
	PathAudit      = "/audit"
	PathStatic     = "/static/"
)

// Form fields shared by several screens
const (
	FieldConfirm  = "confirm"
	FieldID       = "id"
	FieldBack     = "back"
	FieldNext     = "next"
	FieldDocument = "document"
	FieldClaimed  = "claimed"
)

// Flash cookie settings
const (
	FlashCookieName = "promo_admin_flash"
	flashMaxAge     = 60
)

// Flash kinds
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Success messages
const (
	MsgSignedOut        = "Signed out"
	MsgCountdownCreated = "Countdown event created"
	MsgCountdownSaved   = "Countdown event saved"
	MsgCountdownDeleted = "Countdown event deleted"
	MsgCountdownImport  = "Countdown event imported"
	MsgPackSaved        = "Founder pack saved"
	MsgGoalCreated      = "Community goal created"
	MsgGoalSaved        = "Community goal saved"
	MsgGoalDeleted      = "Community goal deleted"
	MsgTapGoalCreated   = "Tap goal created"
	MsgTapGoalSaved     = "Tap goal saved"
	MsgRewardClaimed    = "Reward marked as claimed"
	MsgRewardUnclaimed  = "Reward marked as unclaimed"
	MsgRewardDeleted    = "Reward deleted"
	MsgImageUploaded    = "Image uploaded"
	MsgImageSaved       = "Image saved"
	MsgImageDeleted     = "Image deleted"
	MsgBulkDeleted      = "Deleted %d of %d"
	MsgBulkFailures     = "%d could not be deleted: %s"
)

// Form error messages
const (
	MsgInvalidDateTime = "Enter a valid date and time"
	MsgInvalidNumber   = "Enter a whole number"
	MsgInvalidPrice    = "Enter a price such as 19.99"
	MsgDocumentEmpty   = "Paste a countdown event JSON document"
	MsgSectionFailed   = "%s could not be loaded: %s"
)

// Log messages
const (
	LogMsgRenderFailed   = "Failed to render admin page"
	LogMsgActionFailed   = "Admin action failed"
	LogMsgLoadFailed     = "Failed to load admin page data"
	LogMsgPickerFailed   = "Failed to load public images for picker"
	LogMsgLogoutFailed   = "Failed to close session on logout"
	LogMsgTokenRejected  = "Promo API rejected the session token, signing out"
	LogMsgFlashMalformed = "Ignoring malformed flash cookie"
)

// Display formats
const (
	displayTimeLayout = "2006-01-02 15:04"
	maxFormBytes      = 1 << 20
	bulkFailureSample = 3
)
