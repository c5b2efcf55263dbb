package admin

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PromoAdmin_Go/internal/countdown"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/listing"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

type countdownRow struct {
	domain.CountdownEvent
	Status     string
	CurrentDay int
}

func newCountdownRow(evt domain.CountdownEvent, now time.Time) countdownRow {
	return countdownRow{
		CountdownEvent: evt,
		Status:         countdown.Status(evt, now),
		CurrentDay:     countdown.CurrentDay(evt, now),
	}
}

type countdownListView struct {
	Rows     []countdownRow
	Document string
	Back     string
}

func countdownPath(id string) string {
	return PathCountdown + "/" + id
}

// HandleCountdownList shows every countdown event, newest start first
func (h *Handler) HandleCountdownList(w http.ResponseWriter, r *http.Request) {
	p := &page{Title: "Countdown events", Nav: "countdown", Live: domain.EntityCountdownEvent}
	view := countdownListView{Back: currentURL(r)}

	events, err := h.countdowns.List(r.Context())
	if err != nil {
		h.renderLoadError(w, r, pageCountdowns, p, view, err)
		return
	}

	now := h.now()
	events = listing.SortBy(events, func(a, b domain.CountdownEvent) bool {
		return a.StartTime.After(b.StartTime)
	})
	for _, evt := range events {
		view.Rows = append(view.Rows, newCountdownRow(evt, now))
	}
	p.Data = view
	h.render(w, r, http.StatusOK, pageCountdowns, p)
}

// HandleCountdownNew shows an empty event form with seven reward rows
func (h *Handler) HandleCountdownNew(w http.ResponseWriter, r *http.Request) {
	form := newCountdownForm(domain.CountdownEvent{}, h.loc)
	h.renderCountdownForm(w, r, http.StatusOK, form, nil, nil)
}

// HandleCountdownEdit shows the form for an existing event
func (h *Handler) HandleCountdownEdit(w http.ResponseWriter, r *http.Request) {
	evt, err := h.countdowns.Get(r.Context(), chi.URLParam(r, FieldID))
	if err != nil {
		h.fail(w, r, PathCountdown, "get countdown event", err)
		return
	}
	h.renderCountdownForm(w, r, http.StatusOK, newCountdownForm(*evt, h.loc), nil, nil)
}

// HandleCountdownCreate creates an event from the form
func (h *Handler) HandleCountdownCreate(w http.ResponseWriter, r *http.Request) {
	h.saveCountdown(w, r, "")
}

// HandleCountdownUpdate replaces an event with the submitted form
func (h *Handler) HandleCountdownUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveCountdown(w, r, chi.URLParam(r, FieldID))
}

func (h *Handler) saveCountdown(w http.ResponseWriter, r *http.Request, id string) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, PathCountdown, "save countdown event", err)
		return
	}

	evt, form, err := parseCountdownForm(r, h.loc)
	form.ID = id
	if err != nil {
		h.renderCountdownForm(w, r, http.StatusBadRequest, form, validationFields(err), nil)
		return
	}

	var saved *domain.CountdownEvent
	msg := MsgCountdownSaved
	if id == "" {
		saved, err = h.countdowns.Create(r.Context(), evt)
		msg = MsgCountdownCreated
	} else {
		saved, err = h.countdowns.Update(r.Context(), id, evt)
	}
	if upstreamRejected(err) {
		h.endRejectedSession(w, r)
		return
	}
	if err != nil {
		status, banner := errorMessage(err)
		logger.FromContext(r.Context()).Warn(LogMsgActionFailed, "operation", "save countdown event", "error", err)
		h.renderCountdownForm(w, r, status, form, validationFields(err), &Flash{Kind: FlashError, Message: banner})
		return
	}
	h.redirect(w, r, countdownPath(saved.ID), FlashSuccess, msg)
}

// renderCountdownForm shows the event form. Public reward images feed the image picker;
// when they cannot be loaded the picker is empty.
func (h *Handler) renderCountdownForm(w http.ResponseWriter, r *http.Request, status int,
	form *countdownForm, errs map[string]string, flash *Flash) {
	pictures, err := h.images.Public(r.Context(), domain.ImageCategoryRewards)
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgPickerFailed, "error", err)
	}
	form.Pictures = pictures

	title := "New countdown event"
	if form.ID != "" {
		title = "Edit countdown event"
	}
	h.render(w, r, status, pageCountdown, &page{
		Title:  title,
		Nav:    "countdown",
		Errors: errs,
		Flash:  flash,
		Data:   form,
	})
}

// HandleCountdownDelete deletes an event after confirmation
func (h *Handler) HandleCountdownDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, FieldID)
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, countdownPath(id), "delete countdown event", err)
		return
	}
	if err := h.countdowns.Delete(r.Context(), id, isConfirmed(r)); err != nil {
		h.fail(w, r, backTo(r, countdownPath(id)), "delete countdown event", err)
		return
	}
	h.redirect(w, r, PathCountdown, FlashSuccess, MsgCountdownDeleted)
}

// HandleCountdownImport creates an event from a pasted JSON document
func (h *Handler) HandleCountdownImport(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, PathCountdown, "import countdown event", err)
		return
	}
	doc := r.PostFormValue(FieldDocument)
	if doc == "" {
		h.redirect(w, r, PathCountdown, FlashError, MsgDocumentEmpty)
		return
	}

	created, err := h.countdowns.Import(r.Context(), []byte(doc))
	if err != nil {
		h.fail(w, r, PathCountdown, "import countdown event", err)
		return
	}
	h.redirect(w, r, countdownPath(created.ID), FlashSuccess, MsgCountdownImport)
}
