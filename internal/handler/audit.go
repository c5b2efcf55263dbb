package handler

import (
	"net/http"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/audit"
	"github.com/osse101/PromoAdmin_Go/internal/listing"
)

// AuditPageResponse is one page of audit entries
type AuditPageResponse struct {
	Items []audit.Entry    `json:"items"`
	Page  listing.PageInfo `json:"page"`
}

// AuditHandler serves the admin action log
type AuditHandler struct {
	svc audit.Service
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(svc audit.Service) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// AuditFilterFromRequest reads actor, action, entity_type, since and until.
// It writes a 400 and returns false on a malformed timestamp.
func AuditFilterFromRequest(r *http.Request, w http.ResponseWriter) (audit.Filter, bool) {
	f := audit.Filter{
		Actor:      GetOptionalQueryParam(r, ParamActor, ""),
		Action:     GetOptionalQueryParam(r, ParamAction, ""),
		EntityType: GetOptionalQueryParam(r, ParamEntityType, ""),
	}
	since, ok := GetTimeQueryParam(r, w, ParamSince)
	if !ok {
		return f, false
	}
	until, ok := GetTimeQueryParam(r, w, ParamUntil)
	if !ok {
		return f, false
	}
	f.Since = optionalTime(since)
	f.Until = optionalTime(until)
	return f, true
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// LoadAuditPage queries one page of entries. A page past the end is clamped
// to the last page.
func LoadAuditPage(r *http.Request, svc audit.Service, f audit.Filter, page, size int) (*AuditPageResponse, error) {
	if size <= 0 {
		size = audit.DefaultListLimit
	}
	if size > audit.MaxListLimit {
		size = audit.MaxListLimit
	}
	if page < 1 {
		page = 1
	}

	f.Limit = size
	f.Offset = (page - 1) * size
	entries, total, err := svc.List(r.Context(), f)
	if err != nil {
		return nil, err
	}

	info := listing.PageFor(page, size, total)
	if info.Page != page && total > 0 {
		f.Offset = info.Offset()
		if entries, total, err = svc.List(r.Context(), f); err != nil {
			return nil, err
		}
		info = listing.PageFor(info.Page, size, total)
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	return &AuditPageResponse{Items: entries, Page: info}, nil
}

// HandleList returns recorded admin actions, newest first
// @Summary List audit entries
// @Tags audit
// @Produce json
// @Param actor query string false "Admin username"
// @Param action query string false "Action type, e.g. countdown.deleted"
// @Param entity_type query string false "Entity type"
// @Param since query string false "RFC 3339 lower bound"
// @Param until query string false "RFC 3339 upper bound"
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} AuditPageResponse
// @Router /api/v1/admin/audit [get]
func (h *AuditHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	f, ok := AuditFilterFromRequest(r, w)
	if !ok {
		return
	}
	page, ok := GetIntQueryParam(r, w, ParamPage, 1)
	if !ok {
		return
	}
	size, ok := GetIntQueryParam(r, w, ParamSize, audit.DefaultListLimit)
	if !ok {
		return
	}

	resp, err := LoadAuditPage(r, h.svc, f, page, size)
	if err != nil {
		respondServiceError(w, r, "List audit entries", err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
