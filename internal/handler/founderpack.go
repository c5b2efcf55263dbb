package handler

import (
	"net/http"

	"github.com/osse101/PromoAdmin_Go/internal/founderpack"
)

// FounderPackHandler serves founder pack and community goal endpoints
type FounderPackHandler struct {
	svc founderpack.Service
}

// NewFounderPackHandler creates a new founder pack handler
func NewFounderPackHandler(svc founderpack.Service) *FounderPackHandler {
	return &FounderPackHandler{svc: svc}
}

// HandleOverview returns the pack, goal progress and, when user_id is given,
// that user's purchase status
// @Summary Founder pack overview
// @Tags founder-pack
// @Produce json
// @Param user_id query string false "User to look up"
// @Success 200 {object} founderpack.Overview
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/admin/founder-pack [get]
func (h *FounderPackHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	userID := GetOptionalQueryParam(r, ParamUserID, "")

	ov, err := h.svc.Overview(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Load founder pack overview", err)
		return
	}
	respondJSON(w, http.StatusOK, ov)
}

// HandleUpdatePack replaces the founder pack
// @Summary Update founder pack
// @Tags founder-pack
// @Accept json
// @Produce json
// @Param request body FounderPackRequest true "Pack"
// @Success 200 {object} domain.FounderPack
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/founder-pack [put]
func (h *FounderPackHandler) HandleUpdatePack(w http.ResponseWriter, r *http.Request) {
	var req FounderPackRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update founder pack"); err != nil {
		return
	}

	pack, err := h.svc.UpdatePack(r.Context(), req.toDomain())
	if err != nil {
		respondServiceError(w, r, "Update founder pack", err)
		return
	}
	respondJSON(w, http.StatusOK, pack)
}

// HandleListGoals returns community goals ordered by tier
// @Summary List community goals
// @Tags founder-pack
// @Produce json
// @Success 200 {array} domain.CommunityGoal
// @Router /api/v1/admin/founder-pack/goals [get]
func (h *FounderPackHandler) HandleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.ListGoals(r.Context())
	if err != nil {
		respondServiceError(w, r, "List community goals", err)
		return
	}
	respondJSON(w, http.StatusOK, goals)
}

// HandleCreateGoal adds a community goal tier
// @Summary Create community goal
// @Tags founder-pack
// @Accept json
// @Produce json
// @Param request body CommunityGoalRequest true "Goal"
// @Success 201 {object} domain.CommunityGoal
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/founder-pack/goals [post]
func (h *FounderPackHandler) HandleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req CommunityGoalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create community goal"); err != nil {
		return
	}

	goal, err := h.svc.CreateGoal(r.Context(), req.toDomain())
	if err != nil {
		respondServiceError(w, r, "Create community goal", err)
		return
	}
	respondJSON(w, http.StatusCreated, goal)
}

// HandleUpdateGoal replaces a community goal tier
// @Summary Update community goal
// @Tags founder-pack
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body CommunityGoalRequest true "Goal"
// @Success 200 {object} domain.CommunityGoal
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/founder-pack/goals/{id} [put]
func (h *FounderPackHandler) HandleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(r, w)
	if !ok {
		return
	}

	var req CommunityGoalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update community goal"); err != nil {
		return
	}

	goal, err := h.svc.UpdateGoal(r.Context(), id, req.toDomain())
	if err != nil {
		respondServiceError(w, r, "Update community goal", err)
		return
	}
	respondJSON(w, http.StatusOK, goal)
}

// HandleDeleteGoal removes a community goal tier. Requires confirm=yes.
// @Summary Delete community goal
// @Tags founder-pack
// @Produce json
// @Param id path string true "Goal ID"
// @Param confirm query string true "Must be yes"
// @Success 200 {object} SuccessResponse
// @Failure 428 {object} ErrorResponse
// @Router /api/v1/admin/founder-pack/goals/{id} [delete]
func (h *FounderPackHandler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(r, w)
	if !ok {
		return
	}

	if err := h.svc.DeleteGoal(r.Context(), id, IsConfirmed(r)); err != nil {
		respondServiceError(w, r, "Delete community goal", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGoalDeleted})
}
