package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/listing"
	"github.com/osse101/PromoAdmin_Go/internal/tapathon"
)

// TapPageResponse is one page of filtered tap records with stats over the whole filtered set
type TapPageResponse struct {
	Items []domain.TapRecord `json:"items"`
	Page  listing.PageInfo   `json:"page"`
	Stats domain.TapStats    `json:"stats"`
}

// TapGoalView is a tap goal with its progress percent
type TapGoalView struct {
	domain.TapGoal
	Percent int `json:"percent"`
}

// RewardPageResponse is one page of filtered tap rewards
type RewardPageResponse struct {
	Items      []domain.TapReward `json:"items"`
	Page       listing.PageInfo   `json:"page"`
	Categories []string           `json:"categories"`
}

// BulkDeleteResponse reports which rows were deleted and why the others failed
type BulkDeleteResponse struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed,omitempty"`
}

func newBulkDeleteResponse(res listing.BulkResult[string]) BulkDeleteResponse {
	out := BulkDeleteResponse{Succeeded: res.Succeeded}
	if out.Succeeded == nil {
		out.Succeeded = []string{}
	}
	if len(res.Failed) > 0 {
		out.Failed = make(map[string]string, len(res.Failed))
		for id, err := range res.Failed {
			_, msg := MapServiceError(err)
			out.Failed[id] = msg
		}
	}
	return out
}

// TapathonHandler serves tap record, tap goal and tap reward endpoints
type TapathonHandler struct {
	svc tapathon.Service
}

// NewTapathonHandler creates a new tapathon handler
func NewTapathonHandler(svc tapathon.Service) *TapathonHandler {
	return &TapathonHandler{svc: svc}
}

// pageParams reads page and size, writing a 400 on malformed values
func pageParams(r *http.Request, w http.ResponseWriter) (int, int, bool) {
	page, ok := GetIntQueryParam(r, w, ParamPage, 1)
	if !ok {
		return 0, 0, false
	}
	size, ok := GetIntQueryParam(r, w, ParamSize, domain.DefaultPageSize)
	if !ok {
		return 0, 0, false
	}
	return page, size, true
}

// HandleListTaps returns a page of tap records
// @Summary List tap records
// @Tags tapathon
// @Produce json
// @Param user_id query string false "User id substring"
// @Param platform query string false "Platform"
// @Param from query string false "RFC 3339 lower bound"
// @Param to query string false "RFC 3339 upper bound"
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} TapPageResponse
// @Router /api/v1/admin/tapathon/taps [get]
func (h *TapathonHandler) HandleListTaps(w http.ResponseWriter, r *http.Request) {
	from, ok := GetTimeQueryParam(r, w, ParamFrom)
	if !ok {
		return
	}
	to, ok := GetTimeQueryParam(r, w, ParamTo)
	if !ok {
		return
	}
	page, size, ok := pageParams(r, w)
	if !ok {
		return
	}

	taps, err := h.svc.AllTaps(r.Context())
	if err != nil {
		respondServiceError(w, r, "List tap records", err)
		return
	}

	filtered := tapathon.FilterTaps(taps, domain.TapFilter{
		UserID:   GetOptionalQueryParam(r, ParamUserID, ""),
		Platform: strings.ToLower(GetOptionalQueryParam(r, ParamPlatform, "")),
		From:     from,
		To:       to,
	})
	items, info := listing.Paginate(filtered, page, size)
	respondJSON(w, http.StatusOK, TapPageResponse{
		Items: items,
		Page:  info,
		Stats: tapathon.ComputeStats(filtered),
	})
}

// HandleDeleteTaps bulk deletes tap records
// @Summary Bulk delete tap records
// @Tags tapathon
// @Accept json
// @Produce json
// @Param request body BulkDeleteRequest true "Selection"
// @Success 200 {object} BulkDeleteResponse
// @Failure 428 {object} ErrorResponse
// @Router /api/v1/admin/tapathon/taps/delete [post]
func (h *TapathonHandler) HandleDeleteTaps(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Delete taps"); err != nil {
		return
	}

	res, err := h.svc.DeleteTaps(r.Context(), req.IDs, req.Confirm)
	if err != nil {
		respondServiceError(w, r, "Delete tap records", err)
		return
	}
	respondJSON(w, http.StatusOK, newBulkDeleteResponse(res))
}

// HandleListGoals returns every tap goal with progress
// @Summary List tap goals
// @Tags tapathon
// @Produce json
// @Success 200 {array} TapGoalView
// @Router /api/v1/admin/tapathon/goals [get]
func (h *TapathonHandler) HandleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.AllGoals(r.Context())
	if err != nil {
		respondServiceError(w, r, "List tap goals", err)
		return
	}

	views := make([]TapGoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, TapGoalView{TapGoal: g, Percent: tapathon.GoalPercent(g)})
	}
	respondJSON(w, http.StatusOK, views)
}

// HandleCreateGoal creates a tap goal
// @Summary Create tap goal
// @Tags tapathon
// @Accept json
// @Produce json
// @Param request body TapGoalRequest true "Goal"
// @Success 201 {object} TapGoalView
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/tapathon/goals [post]
func (h *TapathonHandler) HandleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req TapGoalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create tap goal"); err != nil {
		return
	}

	goal, err := h.svc.CreateGoal(r.Context(), req.toDomain())
	if err != nil {
		respondServiceError(w, r, "Create tap goal", err)
		return
	}
	respondJSON(w, http.StatusCreated, TapGoalView{TapGoal: *goal, Percent: tapathon.GoalPercent(*goal)})
}

// HandleUpdateGoal replaces a tap goal
// @Summary Update tap goal
// @Tags tapathon
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body TapGoalRequest true "Goal"
// @Success 200 {object} TapGoalView
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/tapathon/goals/{id} [put]
func (h *TapathonHandler) HandleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(r, w)
	if !ok {
		return
	}

	var req TapGoalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update tap goal"); err != nil {
		return
	}

	goal, err := h.svc.UpdateGoal(r.Context(), id, req.toDomain())
	if err != nil {
		respondServiceError(w, r, "Update tap goal", err)
		return
	}
	respondJSON(w, http.StatusOK, TapGoalView{TapGoal: *goal, Percent: tapathon.GoalPercent(*goal)})
}

// HandleDeleteGoals bulk deletes tap goals
// @Summary Bulk delete tap goals
// @Tags tapathon
// @Accept json
// @Produce json
// @Param request body BulkDeleteRequest true "Selection"
// @Success 200 {object} BulkDeleteResponse
// @Failure 428 {object} ErrorResponse
// @Router /api/v1/admin/tapathon/goals/delete [post]
func (h *TapathonHandler) HandleDeleteGoals(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Delete tap goals"); err != nil {
		return
	}

	res, err := h.svc.DeleteGoals(r.Context(), req.IDs, req.Confirm)
	if err != nil {
		respondServiceError(w, r, "Delete tap goals", err)
		return
	}
	respondJSON(w, http.StatusOK, newBulkDeleteResponse(res))
}

// HandleListRewards returns a page of tap rewards
// @Summary List tap rewards
// @Tags tapathon
// @Produce json
// @Param user_id query string false "User id substring"
// @Param category query string false "Reward category"
// @Param rarity query string false "Rarity"
// @Param claim_state query string false "claimed or unclaimed"
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} RewardPageResponse
// @Router /api/v1/admin/tapathon/rewards [get]
func (h *TapathonHandler) HandleListRewards(w http.ResponseWriter, r *http.Request) {
	claimState := strings.ToLower(GetOptionalQueryParam(r, ParamClaimState, ""))
	if !domain.IsValidClaimState(claimState) {
		respondServiceError(w, r, "List tap rewards", invalidParam(ParamClaimState))
		return
	}
	page, size, ok := pageParams(r, w)
	if !ok {
		return
	}

	rewards, err := h.svc.AllRewards(r.Context())
	if err != nil {
		respondServiceError(w, r, "List tap rewards", err)
		return
	}

	filtered := tapathon.FilterRewards(rewards, domain.RewardFilter{
		UserID:     GetOptionalQueryParam(r, ParamUserID, ""),
		Category:   GetOptionalQueryParam(r, ParamCategory, ""),
		Rarity:     strings.ToLower(GetOptionalQueryParam(r, ParamRarity, "")),
		ClaimState: claimState,
	})
	items, info := listing.Paginate(filtered, page, size)
	respondJSON(w, http.StatusOK, RewardPageResponse{
		Items:      items,
		Page:       info,
		Categories: tapathon.Categories(rewards),
	})
}

// HandleSetRewardClaimed marks a reward claimed or unclaimed
// @Summary Set reward claim state
// @Tags tapathon
// @Accept json
// @Produce json
// @Param id path string true "Reward ID"
// @Param request body RewardClaimRequest true "Claim state"
// @Success 200 {object} domain.TapReward
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/tapathon/rewards/{id}/claim [put]
func (h *TapathonHandler) HandleSetRewardClaimed(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(r, w)
	if !ok {
		return
	}

	var req RewardClaimRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set reward claim"); err != nil {
		return
	}

	reward, err := h.svc.SetRewardClaimed(r.Context(), id, req.Claimed)
	if err != nil {
		respondServiceError(w, r, "Set reward claim state", err)
		return
	}
	respondJSON(w, http.StatusOK, reward)
}

// HandleDeleteReward deletes a tap reward. Requires confirm=yes.
// @Summary Delete tap reward
// @Tags tapathon
// @Produce json
// @Param id path string true "Reward ID"
// @Param confirm query string true "Must be yes"
// @Success 200 {object} SuccessResponse
// @Failure 428 {object} ErrorResponse
// @Router /api/v1/admin/tapathon/rewards/{id} [delete]
func (h *TapathonHandler) HandleDeleteReward(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(r, w)
	if !ok {
		return
	}

	if err := h.svc.DeleteReward(r.Context(), id, IsConfirmed(r)); err != nil {
		respondServiceError(w, r, "Delete tap reward", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRewardDeleted})
}

// invalidParam reports a bad filter value as a field validation error
func invalidParam(name string) error {
	v := domain.NewValidationError()
	v.Add(name, "invalid value")
	return v
}
