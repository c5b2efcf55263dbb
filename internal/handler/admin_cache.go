package handler

import (
	"net/http"

	"github.com/osse101/PromoAdmin_Go/internal/auth"
)

// AdminCacheHandler exposes session cache statistics
type AdminCacheHandler struct {
	authService auth.Service
}

// NewAdminCacheHandler creates a new admin cache handler
func NewAdminCacheHandler(authService auth.Service) *AdminCacheHandler {
	return &AdminCacheHandler{authService: authService}
}

// HandleGetCacheStats returns current session cache statistics
// @Summary Get session cache stats
// @Description Returns cache hit/miss statistics for monitoring
// @Tags admin
// @Produce json
// @Success 200 {object} auth.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.authService.GetCacheStats())
}
