package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Upstream API Metrics
var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpstreamRequestsTotal,
			Help: HelpTextUpstreamRequestsTotal,
		},
		[]string{LabelOperation, LabelStatus},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameUpstreamRequestDuration,
			Help:    HelpTextUpstreamRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	UpstreamRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpstreamRetries,
			Help: HelpTextUpstreamRetries,
		},
		[]string{LabelOperation},
	)

	FetchAllPages = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameFetchAllPages,
			Help:    HelpTextFetchAllPages,
			Buckets: PageCountBuckets,
		},
		[]string{LabelList},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Admin Metrics
var (
	AdminActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdminActions,
			Help: HelpTextAdminActions,
		},
		[]string{LabelAction},
	)

	BulkItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBulkItems,
			Help: HelpTextBulkItems,
		},
		[]string{LabelAction, LabelOutcome},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoginAttempts,
			Help: HelpTextLoginAttempts,
		},
		[]string{LabelResult},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)

	UploadedBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUploadedBytes,
			Help: HelpTextUploadedBytes,
		},
		[]string{LabelCategory},
	)
)

// Background Metrics
var (
	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobRuns,
			Help: HelpTextJobRuns,
		},
		[]string{LabelJob, LabelOutcome},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
		[]string{LabelOutcome},
	)
)
