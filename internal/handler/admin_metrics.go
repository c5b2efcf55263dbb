package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/osse101/PromoAdmin_Go/internal/logger"
	"github.com/osse101/PromoAdmin_Go/internal/metrics"
)

// AdminMetricsResponse contains JSON-formatted metrics for the dashboard
type AdminMetricsResponse struct {
	HTTP          LatencyMetrics     `json:"http"`
	Upstream      UpstreamMetrics    `json:"upstream"`
	Events        EventMetrics       `json:"events"`
	Admin         AdminActionMetrics `json:"admin"`
	Jobs          map[string]float64 `json:"jobs"`
	Notifications map[string]float64 `json:"notifications"`
	SSE           SSEMetrics         `json:"sse"`
}

// LatencyMetrics summarises a request counter and its latency histogram
type LatencyMetrics struct {
	RequestsTotalByStatus map[string]float64 `json:"requests_total_by_status"`
	AvgLatencyMs          float64            `json:"avg_latency_ms"`
	P95LatencyMs          float64            `json:"p95_latency_ms"`
	InFlight              float64            `json:"in_flight,omitempty"`
}

// UpstreamMetrics covers calls to the promo API
type UpstreamMetrics struct {
	LatencyMetrics
	RetriesByOperation map[string]float64 `json:"retries_by_operation"`
}

type EventMetrics struct {
	PublishedTotalByType map[string]float64 `json:"published_total_by_type"`
	HandlerErrorsByType  map[string]float64 `json:"handler_errors_by_type"`
}

type AdminActionMetrics struct {
	ActionsByType   map[string]float64 `json:"actions_by_type"`
	LoginAttempts   map[string]float64 `json:"login_attempts"`
	BulkItems       map[string]float64 `json:"bulk_items"`
	UploadedByteCat map[string]float64 `json:"uploaded_bytes_by_category"`
}

type SSEMetrics struct {
	ClientCount int `json:"client_count"`
}

// ClientCounter reports connected live refresh clients
type ClientCounter interface {
	ClientCount() int
}

// AdminMetricsHandler handles admin metrics requests
type AdminMetricsHandler struct {
	sseHub   ClientCounter
	gatherer prometheus.Gatherer
}

// NewAdminMetricsHandler creates a new admin metrics handler reading the default registry
func NewAdminMetricsHandler(sseHub ClientCounter) *AdminMetricsHandler {
	return &AdminMetricsHandler{sseHub: sseHub, gatherer: prometheus.DefaultGatherer}
}

// HandleGetMetrics returns JSON-formatted metrics from Prometheus
// @Summary Dashboard metrics
// @Tags admin
// @Produce json
// @Success 200 {object} AdminMetricsResponse
// @Router /api/v1/admin/metrics [get]
func (h *AdminMetricsHandler) HandleGetMetrics(w http.ResponseWriter, r *http.Request) {
	resp, err := gatherMetrics(h.gatherer)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGatherMetricsFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgGatherMetricsFailed)
		return
	}

	if h.sseHub != nil {
		resp.SSE.ClientCount = h.sseHub.ClientCount()
	}
	respondJSON(w, http.StatusOK, resp)
}

func newLatencyMetrics() LatencyMetrics {
	return LatencyMetrics{RequestsTotalByStatus: make(map[string]float64)}
}

func gatherMetrics(g prometheus.Gatherer) (*AdminMetricsResponse, error) {
	metricFamilies, err := g.Gather()
	if err != nil {
		return nil, err
	}

	resp := &AdminMetricsResponse{
		HTTP: newLatencyMetrics(),
		Upstream: UpstreamMetrics{
			LatencyMetrics:     newLatencyMetrics(),
			RetriesByOperation: make(map[string]float64),
		},
		Events: EventMetrics{
			PublishedTotalByType: make(map[string]float64),
			HandlerErrorsByType:  make(map[string]float64),
		},
		Admin: AdminActionMetrics{
			ActionsByType:   make(map[string]float64),
			LoginAttempts:   make(map[string]float64),
			BulkItems:       make(map[string]float64),
			UploadedByteCat: make(map[string]float64),
		},
		Jobs:          make(map[string]float64),
		Notifications: make(map[string]float64),
	}

	for _, mf := range metricFamilies {
		switch mf.GetName() {
		case metrics.MetricNameHTTPRequestsTotal:
			sumCounterBy(mf, metrics.LabelStatus, resp.HTTP.RequestsTotalByStatus)
		case metrics.MetricNameHTTPRequestDuration:
			resp.HTTP.AvgLatencyMs, resp.HTTP.P95LatencyMs = histogramSummaryMs(mf)
		case metrics.MetricNameHTTPRequestsInFlight:
			for _, m := range mf.GetMetric() {
				resp.HTTP.InFlight += m.GetGauge().GetValue()
			}
		case metrics.MetricNameUpstreamRequestsTotal:
			sumCounterBy(mf, metrics.LabelStatus, resp.Upstream.RequestsTotalByStatus)
		case metrics.MetricNameUpstreamRequestDuration:
			resp.Upstream.AvgLatencyMs, resp.Upstream.P95LatencyMs = histogramSummaryMs(mf)
		case metrics.MetricNameUpstreamRetries:
			sumCounterBy(mf, metrics.LabelOperation, resp.Upstream.RetriesByOperation)
		case metrics.MetricNameEventsPublished:
			sumCounterBy(mf, metrics.LabelType, resp.Events.PublishedTotalByType)
		case metrics.MetricNameEventHandlerErrors:
			sumCounterBy(mf, metrics.LabelType, resp.Events.HandlerErrorsByType)
		case metrics.MetricNameAdminActions:
			sumCounterBy(mf, metrics.LabelAction, resp.Admin.ActionsByType)
		case metrics.MetricNameLoginAttempts:
			sumCounterBy(mf, metrics.LabelResult, resp.Admin.LoginAttempts)
		case metrics.MetricNameBulkItems:
			sumCounterBy(mf, metrics.LabelOutcome, resp.Admin.BulkItems)
		case metrics.MetricNameUploadedBytes:
			sumCounterBy(mf, metrics.LabelCategory, resp.Admin.UploadedByteCat)
		case metrics.MetricNameJobRuns:
			for _, m := range mf.GetMetric() {
				job := getLabelValue(m, metrics.LabelJob)
				outcome := getLabelValue(m, metrics.LabelOutcome)
				if job != "" {
					resp.Jobs[job+"/"+outcome] += m.GetCounter().GetValue()
				}
			}
		case metrics.MetricNameNotificationsSent:
			sumCounterBy(mf, metrics.LabelOutcome, resp.Notifications)
		}
	}

	return resp, nil
}

// sumCounterBy adds every counter sample into out, keyed by the value of label
func sumCounterBy(mf *dto.MetricFamily, label string, out map[string]float64) {
	for _, m := range mf.GetMetric() {
		if v := getLabelValue(m, label); v != "" {
			out[v] += m.GetCounter().GetValue()
		}
	}
}

// histogramSummaryMs merges every series of a histogram family and returns
// the average and approximate p95 in milliseconds. Series share bucket bounds.
func histogramSummaryMs(mf *dto.MetricFamily) (float64, float64) {
	var merged *dto.Histogram
	for _, m := range mf.GetMetric() {
		hist := m.GetHistogram()
		if hist == nil {
			continue
		}
		if merged == nil {
			merged = cloneHistogram(hist)
			continue
		}
		mergeHistogram(merged, hist)
	}
	if merged == nil || merged.GetSampleCount() == 0 {
		return 0, 0
	}
	avg := merged.GetSampleSum() / float64(merged.GetSampleCount()) * 1000
	return avg, estimateQuantile(merged, 0.95) * 1000
}

func cloneHistogram(h *dto.Histogram) *dto.Histogram {
	count := h.GetSampleCount()
	sum := h.GetSampleSum()
	out := &dto.Histogram{SampleCount: &count, SampleSum: &sum}
	for _, b := range h.GetBucket() {
		upper := b.GetUpperBound()
		cum := b.GetCumulativeCount()
		out.Bucket = append(out.Bucket, &dto.Bucket{UpperBound: &upper, CumulativeCount: &cum})
	}
	return out
}

func mergeHistogram(dst, src *dto.Histogram) {
	count := dst.GetSampleCount() + src.GetSampleCount()
	sum := dst.GetSampleSum() + src.GetSampleSum()
	dst.SampleCount = &count
	dst.SampleSum = &sum
	srcBuckets := src.GetBucket()
	for i, b := range dst.GetBucket() {
		if i >= len(srcBuckets) {
			break
		}
		cum := b.GetCumulativeCount() + srcBuckets[i].GetCumulativeCount()
		b.CumulativeCount = &cum
	}
}

func getLabelValue(m *dto.Metric, labelName string) string {
	for _, label := range m.GetLabel() {
		if label.GetName() == labelName {
			return label.GetValue()
		}
	}
	return ""
}

// estimateQuantile approximates the given quantile from a histogram
func estimateQuantile(hist *dto.Histogram, quantile float64) float64 {
	totalCount := hist.GetSampleCount()
	if totalCount == 0 {
		return 0
	}

	targetCount := float64(totalCount) * quantile
	buckets := hist.GetBucket()
	for _, bucket := range buckets {
		if float64(bucket.GetCumulativeCount()) >= targetCount {
			return bucket.GetUpperBound()
		}
	}

	if len(buckets) > 0 {
		return buckets[len(buckets)-1].GetUpperBound()
	}
	return 0
}
