package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"

	ErrMsgGatherMetricsFailed = "Failed to gather metrics"
	ErrMsgUploadFailed        = "Failed to read uploaded file"
	ErrMsgFileRequired        = "An image file is required"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError     = "Something went wrong. Please try again."
	ErrMsgUnknownError           = "Unknown error"
	ErrMsgNotFoundError          = "The requested item no longer exists."
	ErrMsgUnauthorizedError      = "Please log in again."
	ErrMsgInvalidCredentialsErr  = "Invalid username or password."
	ErrMsgSessionExpiredError    = "Your session has expired. Please log in again."
	ErrMsgInvalidInputError      = "Please correct the highlighted fields."
	ErrMsgConfirmRequiredError   = "Please confirm this action before it is applied."
	ErrMsgNothingSelectedError   = "Select at least one row first."
	ErrMsgUnsupportedTypeError   = "Only PNG, JPEG, GIF and WebP images are allowed."
	ErrMsgFileTooLargeError      = "The file is larger than the upload limit."
	ErrMsgUpstreamUnavailableErr = "The promo API is unreachable. Please try again shortly."
	ErrMsgUpstreamErrorError     = "The promo API reported an error."
)

// Success messages for API responses
const (
	MsgCountdownDeleted = "Countdown event deleted"
	MsgGoalDeleted      = "Goal deleted"
	MsgRewardDeleted    = "Reward deleted"
	MsgImageDeleted     = "Image deleted"
	MsgLoggedOut        = "Logged out"
)

// Query parameter names shared by list endpoints
const (
	ParamPage       = "page"
	ParamSize       = "size"
	ParamConfirm    = "confirm"
	ParamUserID     = "user_id"
	ParamPlatform   = "platform"
	ParamFrom       = "from"
	ParamTo         = "to"
	ParamCategory   = "category"
	ParamRarity     = "rarity"
	ParamClaimState = "claim_state"
	ParamActor      = "actor"
	ParamAction     = "action"
	ParamEntityType = "entity_type"
	ParamSince      = "since"
	ParamUntil      = "until"
	ParamID         = "id"
)

// Multipart form field names for image uploads
const (
	FormFieldFile     = "file"
	FormFieldCategory = "category"
	FormFieldAltText  = "alt_text"
)

// maxJSONBodyBytes caps decoded JSON request bodies
const maxJSONBodyBytes = 1 << 20

// multipartOverheadBytes is allowed on top of the image limit for form fields and boundaries
const multipartOverheadBytes = 64 << 10
