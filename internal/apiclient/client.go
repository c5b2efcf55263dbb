package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
	"github.com/osse101/PromoAdmin_Go/internal/metrics"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultMaxRetries = 3
	defaultRetryDelay = 500 * time.Millisecond
	maxErrorBodyBytes = 64 << 10
	headerAPIKey      = "X-API-Key"
	headerRequestID   = "X-Request-ID"
	contentTypeJSON   = "application/json"
)

// Client talks to the promo REST API. Resource groups (countdown, founder pack,
// tapathon, images, auth) are methods on the same client.
type Client struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// New creates a client for baseURL. apiKey may be empty.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: timeout,
		},
		APIKey:     apiKey,
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
	}
}

// request describes one upstream call.
type request struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
}

// doRequest performs an HTTP request. Only GET requests are retried, on
// transport errors and 5xx answers, with exponential backoff.
func (c *Client) doRequest(ctx context.Context, r request) (*http.Response, error) {
	target := c.BaseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	maxRetries := 0
	if r.method == http.MethodGet {
		maxRetries = c.MaxRetries
	}

	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			log.Info("Retrying API request", "attempt", attempt, "path", r.path, "delay", delay)
			metrics.UpstreamRetries.WithLabelValues(r.op).Inc()
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		var body io.Reader
		if r.body != nil {
			body = bytes.NewReader(r.body)
		}
		req, err := http.NewRequestWithContext(ctx, r.method, target, body)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		c.setHeaders(ctx, req, r.contentType)

		start := time.Now()
		resp, err := c.Client.Do(req)
		if err != nil {
			metrics.ObserveUpstream(r.op, 0, time.Since(start))
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			log.Warn("API request failed", "error", err, "attempt", attempt, "op", r.op)
			continue
		}
		metrics.ObserveUpstream(r.op, resp.StatusCode, time.Since(start))

		if resp.StatusCode < 500 || attempt == maxRetries {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		log.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt, "op", r.op)
	}

	return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrUpstreamUnavailable, r.method, r.path, lastErr)
}

func (c *Client) setHeaders(ctx context.Context, req *http.Request, contentType string) {
	req.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.APIKey != "" {
		req.Header.Set(headerAPIKey, c.APIKey)
	}
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := logger.GetRequestID(ctx); id != "" {
		req.Header.Set(headerRequestID, id)
	}
}

// doJSON sends in as a JSON body (when non-nil) and decodes a 2xx answer into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, in, out interface{}) error {
	r := request{op: op, method: method, path: path, query: query}
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
		r.body = data
		r.contentType = contentTypeJSON
	}

	resp, err := c.doRequest(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, method, path, out)
}

func decodeResponse(resp *http.Response, method, path string, out interface{}) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp, method, path)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: failed to decode %s %s: %v", domain.ErrUpstreamError, method, path, err)
	}
	return nil
}

func parseAPIError(resp *http.Response, method, path string) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Method: method, Path: path}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Message = body.Error
		if apiErr.Message == "" {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}

// pageQuery builds the limit/offset query used by the batched list endpoints.
func pageQuery(limit, offset int) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	return q
}

func idPath(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}
