package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// readinessTimeout bounds every dependency probe
const readinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// Pinger is a dependency that can report whether it is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessCheck names one dependency probed by /readyz
type ReadinessCheck struct {
	Name   string
	Pinger Pinger
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz probes every dependency. Nil pingers are skipped.
// @Summary Readiness check
// @Description Returns OK if the database and the promo API are reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		results := make(map[string]string, len(checks))
		healthy := true
		for _, c := range checks {
			if c.Pinger == nil {
				continue
			}
			if err := c.Pinger.Ping(ctx); err != nil {
				logger.FromContext(r.Context()).Error("Readiness check failed", "check", c.Name, "error", err)
				results[c.Name] = "unavailable"
				healthy = false
				continue
			}
			results[c.Name] = "ok"
		}

		if !healthy {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "dependency check failed",
				Checks:  results,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Checks: results})
	}
}
