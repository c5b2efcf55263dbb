package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/countdown"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// CountdownView is an event with its status at request time
type CountdownView struct {
	domain.CountdownEvent
	Status     string `json:"status"`
	CurrentDay int    `json:"current_day"`
}

// CountdownHandler serves countdown event endpoints
type CountdownHandler struct {
	svc countdown.Service
	now func() time.Time
}

// NewCountdownHandler creates a new countdown handler
func NewCountdownHandler(svc countdown.Service) *CountdownHandler {
	return &CountdownHandler{svc: svc, now: time.Now}
}

func (h *CountdownHandler) view(evt domain.CountdownEvent) CountdownView {
	now := h.now()
	return CountdownView{
		CountdownEvent: evt,
		Status:         countdown.Status(evt, now),
		CurrentDay:     countdown.CurrentDay(evt, now),
	}
}

// HandleList returns all countdown events
// @Summary List countdown events
// @Tags countdown
// @Produce json
// @Success 200 {array} CountdownView
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/admin/countdown [get]
func (h *CountdownHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.List(r.Context())
	if err != nil {
		respondServiceError(w, r, "List countdown events", err)
		return
	}

	views := make([]CountdownView, 0, len(events))
	for _, evt := range events {
		views = append(views, h.view(evt))
	}
	respondJSON(w, http.StatusOK, views)
}

// HandleGet returns one countdown event with seven reward rows
// @Summary Get countdown event
// @Tags countdown
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} CountdownView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/countdown/{id} [get]
func (h *CountdownHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(r, w)
	if !ok {
		return
	}

	evt, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get countdown event", err)
		return
	}
	respondJSON(w, http.StatusOK, h.view(*evt))
}

// HandleCreate creates a countdown event
// @Summary Create countdown event
// @Tags countdown
// @Accept json
// @Produce json
// @Param request body CountdownRequest true "Event"
// @Success 201 {object} CountdownView
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/countdown [post]
func (h *CountdownHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CountdownRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create countdown"); err != nil {
		return
	}

	created, err := h.svc.Create(r.Context(), req.toDomain())
	if err != nil {
		respondServiceError(w, r, "Create countdown event", err)
		return
	}
	respondJSON(w, http.StatusCreated, h.view(*created))
}

// HandleUpdate replaces a countdown event
// @Summary Update countdown event
// @Tags countdown
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body CountdownRequest true "Event"
// @Success 200 {object} CountdownView
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/countdown/{id} [put]
func (h *CountdownHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(r, w)
	if !ok {
		return
	}

	var req CountdownRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update countdown"); err != nil {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.toDomain())
	if err != nil {
		respondServiceError(w, r, "Update countdown event", err)
		return
	}
	respondJSON(w, http.StatusOK, h.view(*updated))
}

// HandleDelete deletes a countdown event. Requires confirm=yes.
// @Summary Delete countdown event
// @Tags countdown
// @Produce json
// @Param id path string true "Event ID"
// @Param confirm query string true "Must be yes"
// @Success 200 {object} SuccessResponse
// @Failure 428 {object} ErrorResponse
// @Router /api/v1/admin/countdown/{id} [delete]
func (h *CountdownHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(r, w)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id, IsConfirmed(r)); err != nil {
		respondServiceError(w, r, "Delete countdown event", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCountdownDeleted})
}

// HandleImport creates an event from a raw JSON document checked against
// the countdown event schema
// @Summary Import countdown event
// @Tags countdown
// @Accept json
// @Produce json
// @Success 201 {object} CountdownView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/countdown/import [post]
func (h *CountdownHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err != nil {
		logger.FromContext(r.Context()).Warn("Failed to read import body", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	created, err := h.svc.Import(r.Context(), data)
	if err != nil {
		if detail, ok := InputErrorDetail(err); ok {
			logger.FromContext(r.Context()).Warn("Countdown import rejected", "error", err)
			respondError(w, http.StatusBadRequest, detail)
			return
		}
		respondServiceError(w, r, "Import countdown event", err)
		return
	}
	respondJSON(w, http.StatusCreated, h.view(*created))
}
