package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/formtime"
	"github.com/osse101/PromoAdmin_Go/internal/listing"
	"github.com/osse101/PromoAdmin_Go/internal/tapathon"
)

// tapFilterForm echoes the filter inputs back into the form
type tapFilterForm struct {
	UserID   string
	Platform string
	From     string
	To       string
}

type tapsView struct {
	Filter    tapFilterForm
	Platforms []string
	Items     []domain.TapRecord
	Stats     domain.TapStats
	Pager     pager
	Back      string
}

type tapGoalRow struct {
	domain.TapGoal
	Percent int
}

type tapGoalsView struct {
	Rows []tapGoalRow
	Back string
}

type rewardsView struct {
	Filter      domain.RewardFilter
	Categories  []string
	Rarities    []string
	ClaimStates []string
	Items       []domain.TapReward
	Pager       pager
	Back        string
}

var platforms = []string{domain.PlatformTwitch, domain.PlatformYoutube, domain.PlatformDiscord, domain.PlatformWeb}

// pageQuery reads page and size; malformed or negative values fall back to the defaults
func pageQuery(r *http.Request) (int, int) {
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(q.Get("size"))
	if err != nil || size < 1 {
		size = domain.DefaultPageSize
	}
	return page, size
}

// HandleTaps lists tap records with filters, stats over the filtered set and pagination
func (h *Handler) HandleTaps(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	form := tapFilterForm{
		UserID:   strings.TrimSpace(q.Get("user_id")),
		Platform: strings.ToLower(strings.TrimSpace(q.Get("platform"))),
		From:     q.Get("from"),
		To:       q.Get("to"),
	}
	p := &page{Title: "Tapathon taps", Nav: "taps", Live: domain.EntityTapRecord}
	view := tapsView{Filter: form, Platforms: platforms, Back: currentURL(r)}

	filter := domain.TapFilter{UserID: form.UserID, Platform: form.Platform}
	errs := domain.NewValidationError()
	var err error
	if filter.From, err = formtime.FromInputValue(form.From, h.loc); err != nil {
		errs.Add("from", MsgInvalidDateTime)
	}
	if filter.To, err = formtime.FromInputValue(form.To, h.loc); err != nil {
		errs.Add("to", MsgInvalidDateTime)
	}
	if errs.HasErrors() {
		p.Errors = errs.Fields
		p.Data = view
		h.render(w, r, http.StatusBadRequest, pageTaps, p)
		return
	}

	taps, err := h.tapathon.AllTaps(r.Context())
	if err != nil {
		h.renderLoadError(w, r, pageTaps, p, view, err)
		return
	}

	filtered := tapathon.FilterTaps(taps, filter)
	filtered = listing.SortBy(filtered, func(a, b domain.TapRecord) bool { return a.CreatedAt.After(b.CreatedAt) })
	pageNum, size := pageQuery(r)
	items, info := listing.Paginate(filtered, pageNum, size)

	view.Items = items
	view.Stats = tapathon.ComputeStats(filtered)
	view.Pager = newPager(r, info)
	p.Data = view
	h.render(w, r, http.StatusOK, pageTaps, p)
}

// HandleTapsDelete deletes the selected tap records after confirmation
func (h *Handler) HandleTapsDelete(w http.ResponseWriter, r *http.Request) {
	h.bulkDelete(w, r, PathTaps, "delete taps", h.tapathon.DeleteTaps)
}

// HandleTapGoals lists tap goals with their progress
func (h *Handler) HandleTapGoals(w http.ResponseWriter, r *http.Request) {
	p := &page{Title: "Tapathon goals", Nav: "tap_goals", Live: domain.EntityTapGoal}
	view := tapGoalsView{Back: currentURL(r)}

	goals, err := h.tapathon.AllGoals(r.Context())
	if err != nil {
		h.renderLoadError(w, r, pageTapGoals, p, view, err)
		return
	}
	goals = listing.SortBy(goals, func(a, b domain.TapGoal) bool { return a.StartsAt.Before(b.StartsAt) })
	for _, g := range goals {
		view.Rows = append(view.Rows, tapGoalRow{TapGoal: g, Percent: tapathon.GoalPercent(g)})
	}
	p.Data = view
	h.render(w, r, http.StatusOK, pageTapGoals, p)
}

// HandleTapGoalCreate creates a tap goal
func (h *Handler) HandleTapGoalCreate(w http.ResponseWriter, r *http.Request) {
	h.saveTapGoal(w, r, "")
}

// HandleTapGoalUpdate replaces a tap goal
func (h *Handler) HandleTapGoalUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveTapGoal(w, r, chi.URLParam(r, FieldID))
}

func (h *Handler) saveTapGoal(w http.ResponseWriter, r *http.Request, id string) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, PathTapGoals, "save tap goal", err)
		return
	}
	back := backTo(r, PathTapGoals)

	goal, err := parseTapGoalForm(r, h.loc)
	msg := MsgTapGoalSaved
	if err == nil {
		if id == "" {
			_, err = h.tapathon.CreateGoal(r.Context(), goal)
			msg = MsgTapGoalCreated
		} else {
			_, err = h.tapathon.UpdateGoal(r.Context(), id, goal)
		}
	}
	if err != nil {
		h.fail(w, r, back, "save tap goal", err)
		return
	}
	h.redirect(w, r, back, FlashSuccess, msg)
}

// HandleTapGoalsDelete deletes the selected tap goals after confirmation
func (h *Handler) HandleTapGoalsDelete(w http.ResponseWriter, r *http.Request) {
	h.bulkDelete(w, r, PathTapGoals, "delete tap goals", h.tapathon.DeleteGoals)
}

// HandleTapRewards lists tap rewards with filters and pagination
func (h *Handler) HandleTapRewards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.RewardFilter{
		UserID:     strings.TrimSpace(q.Get("user_id")),
		Category:   strings.TrimSpace(q.Get("category")),
		Rarity:     strings.ToLower(strings.TrimSpace(q.Get("rarity"))),
		ClaimState: strings.ToLower(strings.TrimSpace(q.Get("claim_state"))),
	}
	p := &page{Title: "Tapathon rewards", Nav: "tap_rewards", Live: domain.EntityTapReward}
	view := rewardsView{
		Filter:      filter,
		Rarities:    domain.Rarities,
		ClaimStates: []string{domain.ClaimStateClaimed, domain.ClaimStateUnclaimed},
		Back:        currentURL(r),
	}

	if !domain.IsValidClaimState(filter.ClaimState) {
		p.Errors = map[string]string{"claim_state": domain.ErrMsgInvalidInput}
		p.Data = view
		h.render(w, r, http.StatusBadRequest, pageTapRewards, p)
		return
	}

	rewards, err := h.tapathon.AllRewards(r.Context())
	if err != nil {
		h.renderLoadError(w, r, pageTapRewards, p, view, err)
		return
	}

	filtered := tapathon.FilterRewards(rewards, filter)
	filtered = listing.SortBy(filtered, func(a, b domain.TapReward) bool { return a.CreatedAt.After(b.CreatedAt) })
	pageNum, size := pageQuery(r)
	items, info := listing.Paginate(filtered, pageNum, size)

	view.Categories = tapathon.Categories(rewards)
	view.Items = items
	view.Pager = newPager(r, info)
	p.Data = view
	h.render(w, r, http.StatusOK, pageTapRewards, p)
}

// HandleRewardClaim marks a reward claimed or unclaimed
func (h *Handler) HandleRewardClaim(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, PathTapRewards, "update tap reward", err)
		return
	}
	back := backTo(r, PathTapRewards)

	claimed := r.PostFormValue(FieldClaimed) == "true"
	if _, err := h.tapathon.SetRewardClaimed(r.Context(), chi.URLParam(r, FieldID), claimed); err != nil {
		h.fail(w, r, back, "update tap reward", err)
		return
	}
	msg := MsgRewardUnclaimed
	if claimed {
		msg = MsgRewardClaimed
	}
	h.redirect(w, r, back, FlashSuccess, msg)
}

// HandleRewardDelete deletes a reward after confirmation
func (h *Handler) HandleRewardDelete(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, PathTapRewards, "delete tap reward", err)
		return
	}
	back := backTo(r, PathTapRewards)

	if err := h.tapathon.DeleteReward(r.Context(), chi.URLParam(r, FieldID), isConfirmed(r)); err != nil {
		h.fail(w, r, back, "delete tap reward", err)
		return
	}
	h.redirect(w, r, back, FlashSuccess, MsgRewardDeleted)
}
