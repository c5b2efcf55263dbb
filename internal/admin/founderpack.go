package admin

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/founderpack"
)

type founderView struct {
	*founderpack.Overview
	UserID    string
	BlankRows []int
	Back      string
}

// HandleFounderPack shows the pack form, an optional user's purchase status and the goal tracker
func (h *Handler) HandleFounderPack(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	p := &page{Title: "Founder pack", Nav: "founder", Live: domain.EntityFounderPack + "," + domain.EntityCommunityGoal}

	overview, err := h.founderPack.Overview(r.Context(), userID)
	if err != nil {
		h.renderLoadError(w, r, pageFounder, p, founderView{Overview: &founderpack.Overview{}, UserID: userID}, err)
		return
	}

	blank := make([]int, blankPackRows)
	for i := range blank {
		blank[i] = i
	}
	p.Data = founderView{Overview: overview, UserID: userID, BlankRows: blank, Back: currentURL(r)}
	h.render(w, r, http.StatusOK, pageFounder, p)
}

// HandleFounderPackSave replaces the founder pack
func (h *Handler) HandleFounderPackSave(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, PathFounder, "update founder pack", err)
		return
	}
	back := backTo(r, PathFounder)

	pack, err := parsePackForm(r, h.loc)
	if err == nil {
		_, err = h.founderPack.UpdatePack(r.Context(), pack)
	}
	if err != nil {
		h.fail(w, r, back, "update founder pack", err)
		return
	}
	h.redirect(w, r, back, FlashSuccess, MsgPackSaved)
}

// HandleGoalCreate adds a community goal tier
func (h *Handler) HandleGoalCreate(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, PathFounder, "create community goal", err)
		return
	}
	back := backTo(r, PathFounder)

	goal, err := parseGoalForm(r)
	if err == nil {
		_, err = h.founderPack.CreateGoal(r.Context(), goal)
	}
	if err != nil {
		h.fail(w, r, back, "create community goal", err)
		return
	}
	h.redirect(w, r, back, FlashSuccess, MsgGoalCreated)
}

// HandleGoalUpdate replaces a community goal tier
func (h *Handler) HandleGoalUpdate(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, PathFounder, "update community goal", err)
		return
	}
	back := backTo(r, PathFounder)

	goal, err := parseGoalForm(r)
	if err == nil {
		_, err = h.founderPack.UpdateGoal(r.Context(), chi.URLParam(r, FieldID), goal)
	}
	if err != nil {
		h.fail(w, r, back, "update community goal", err)
		return
	}
	h.redirect(w, r, back, FlashSuccess, MsgGoalSaved)
}

// HandleGoalDelete removes a community goal tier after confirmation
func (h *Handler) HandleGoalDelete(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, PathFounder, "delete community goal", err)
		return
	}
	back := backTo(r, PathFounder)

	if err := h.founderPack.DeleteGoal(r.Context(), chi.URLParam(r, FieldID), isConfirmed(r)); err != nil {
		h.fail(w, r, back, "delete community goal", err)
		return
	}
	h.redirect(w, r, back, FlashSuccess, MsgGoalDeleted)
}
