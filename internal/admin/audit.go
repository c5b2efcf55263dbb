package admin

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/audit"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/formtime"
	"github.com/osse101/PromoAdmin_Go/internal/handler"
)

type auditFilterForm struct {
	Actor      string
	Action     string
	EntityType string
	Since      string
	Until      string
}

type auditView struct {
	Filter   auditFilterForm
	Actions  []string
	Entities []string
	Items    []audit.Entry
	Pager    pager
}

var auditEntities = []string{
	domain.EntityCountdownEvent, domain.EntityFounderPack, domain.EntityCommunityGoal,
	domain.EntityTapRecord, domain.EntityTapGoal, domain.EntityTapReward,
	domain.EntityImage, domain.EntitySession,
}

// HandleAudit shows recorded admin actions, newest first
func (h *Handler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	form := auditFilterForm{
		Actor:      strings.TrimSpace(q.Get("actor")),
		Action:     strings.TrimSpace(q.Get("action")),
		EntityType: strings.TrimSpace(q.Get("entity_type")),
		Since:      q.Get("since"),
		Until:      q.Get("until"),
	}
	p := &page{Title: "Audit log", Nav: "audit"}
	view := auditView{Filter: form, Actions: domain.AllAdminEventTypes, Entities: auditEntities}

	filter := audit.Filter{Actor: form.Actor, Action: form.Action, EntityType: form.EntityType}
	errs := domain.NewValidationError()
	filter.Since = h.inputTime(form.Since, "since", errs)
	filter.Until = h.inputTime(form.Until, "until", errs)
	if errs.HasErrors() {
		p.Errors = errs.Fields
		p.Data = view
		h.render(w, r, http.StatusBadRequest, pageAudit, p)
		return
	}

	pageNum, size := pageQuery(r)
	resp, err := handler.LoadAuditPage(r, h.audit, filter, pageNum, size)
	if err != nil {
		if fields := validationFields(err); fields != nil {
			p.Errors = fields
		}
		h.renderLoadError(w, r, pageAudit, p, view, err)
		return
	}

	view.Items = resp.Items
	view.Pager = newPager(r, resp.Page)
	p.Data = view
	h.render(w, r, http.StatusOK, pageAudit, p)
}

// inputTime parses an optional datetime-local filter value
func (h *Handler) inputTime(value, field string, errs *domain.ValidationError) *time.Time {
	t, err := formtime.FromInputValue(value, h.loc)
	if err != nil {
		errs.Add(field, MsgInvalidDateTime)
		return nil
	}
	if t.IsZero() {
		return nil
	}
	return &t
}
