package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Upstream API metric names
const (
	MetricNameUpstreamRequestsTotal   = "upstream_requests_total"
	MetricNameUpstreamRequestDuration = "upstream_request_duration_seconds"
	MetricNameUpstreamRetries         = "upstream_retries_total"
	MetricNameFetchAllPages           = "list_fetch_pages"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Admin metric names
const (
	MetricNameAdminActions  = "admin_actions_total"
	MetricNameBulkItems     = "admin_bulk_items_total"
	MetricNameLoginAttempts = "admin_login_attempts_total"
	MetricNameSSEClients    = "sse_clients"
	MetricNameUploadedBytes = "image_uploaded_bytes_total"
)

// Background metric names
const (
	MetricNameJobRuns           = "background_job_runs_total"
	MetricNameNotificationsSent = "notifications_sent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextUpstreamRequestsTotal   = "Total number of requests sent to the promo API"
	HelpTextUpstreamRequestDuration = "Promo API request latency in seconds"
	HelpTextUpstreamRetries         = "Total number of retried promo API requests"
	HelpTextFetchAllPages           = "Number of pages fetched per full list load"

	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextAdminActions  = "Total number of successful admin mutations"
	HelpTextBulkItems     = "Items processed by bulk actions"
	HelpTextLoginAttempts = "Admin login attempts"
	HelpTextSSEClients    = "Currently connected live refresh clients"
	HelpTextUploadedBytes = "Bytes of image data uploaded"

	HelpTextJobRuns           = "Background job runs"
	HelpTextNotificationsSent = "Discord notifications for destructive admin actions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOperation = "operation"
	LabelAction    = "action"
	LabelOutcome   = "outcome"
	LabelResult    = "result"
	LabelList      = "list"
	LabelCategory  = "category"
	LabelJob       = "job"
)

// Outcome label values
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
)

// ============================================================================
// Event Payload Field Names
// ============================================================================

const (
	PayloadFieldAction     = "action"
	PayloadFieldEntityType = "entity_type"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for request duration in
// seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PageCountBuckets covers full list loads from a single page up to the fetch guard.
var PageCountBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 250, 500}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadInvalid = "Event payload is not an admin action"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
