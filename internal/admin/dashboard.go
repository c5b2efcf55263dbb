package admin

import (
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/PromoAdmin_Go/internal/audit"
	"github.com/osse101/PromoAdmin_Go/internal/countdown"
	"github.com/osse101/PromoAdmin_Go/internal/founderpack"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

const dashboardAuditRows = 10

type dashboardView struct {
	Countdowns []countdownRow
	Founder    *founderpack.Overview
	Recent     []audit.Entry
	// Problems lists sections that failed to load; the others still render
	Problems []string
}

// HandleDashboard shows running and scheduled countdowns, community goal progress and recent actions.
// Each section loads independently.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := h.now()
	view := dashboardView{}
	var countdownErr, founderErr, auditErr error

	var g errgroup.Group
	g.Go(func() error {
		events, err := h.countdowns.List(ctx)
		if err != nil {
			countdownErr = err
			return nil
		}
		for _, evt := range events {
			if status := countdown.Status(evt, now); status == countdown.StatusRunning || status == countdown.StatusScheduled {
				view.Countdowns = append(view.Countdowns, newCountdownRow(evt, now))
			}
		}
		return nil
	})
	g.Go(func() error {
		view.Founder, founderErr = h.founderPack.Overview(ctx, "")
		return nil
	})
	g.Go(func() error {
		view.Recent, _, auditErr = h.audit.List(ctx, audit.Filter{Limit: dashboardAuditRows})
		return nil
	})
	_ = g.Wait()

	for _, err := range []error{countdownErr, founderErr} {
		if upstreamRejected(err) {
			h.endRejectedSession(w, r)
			return
		}
	}

	for _, section := range []struct {
		name string
		err  error
	}{{"Countdown events", countdownErr}, {"Founder pack", founderErr}, {"Recent activity", auditErr}} {
		if section.err == nil {
			continue
		}
		logger.FromContext(ctx).Warn(LogMsgLoadFailed, "section", section.name, "error", section.err)
		_, msg := errorMessage(section.err)
		view.Problems = append(view.Problems, fmt.Sprintf(MsgSectionFailed, section.name, msg))
	}

	h.render(w, r, http.StatusOK, pageDashboard, &page{Title: "Dashboard", Nav: "dashboard", Data: view})
}
