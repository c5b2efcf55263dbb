package admin

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/osse101/PromoAdmin_Go/internal/listing"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

type bulkDeleteFunc func(ctx context.Context, ids []string, confirmed bool) (listing.BulkResult[string], error)

// bulkDelete runs a confirmed bulk delete over the checked rows and reports partial failures
func (h *Handler) bulkDelete(w http.ResponseWriter, r *http.Request, fallback, op string, del bulkDeleteFunc) {
	if err := parseForm(w, r); err != nil {
		h.fail(w, r, fallback, op, err)
		return
	}
	back := backTo(r, fallback)

	selection := listing.NewSelection(listing.ParseSelection(r.PostForm[FieldID])...)
	ids := selection.Keys()

	res, err := del(r.Context(), ids, isConfirmed(r))
	if err != nil {
		h.fail(w, r, back, op, err)
		return
	}

	if res.OK() {
		h.redirect(w, r, back, FlashSuccess, fmt.Sprintf(MsgBulkDeleted, len(res.Succeeded), len(ids)))
		return
	}
	logger.FromContext(r.Context()).Warn(LogMsgActionFailed, "operation", op,
		"succeeded", len(res.Succeeded), "failed", len(res.Failed))
	h.redirect(w, r, back, FlashError, bulkFailureMessage(res, len(ids)))
}

// bulkFailureMessage summarises a partial bulk delete, naming the first few failed rows
func bulkFailureMessage(res listing.BulkResult[string], total int) string {
	failed := make([]string, 0, len(res.Failed))
	for id := range res.Failed {
		failed = append(failed, id)
	}
	sort.Strings(failed)

	sample := failed
	if len(sample) > bulkFailureSample {
		sample = sample[:bulkFailureSample]
	}
	details := make([]string, 0, len(sample))
	for _, id := range sample {
		_, msg := errorMessage(res.Failed[id])
		details = append(details, id+" ("+msg+")")
	}
	if len(failed) > len(sample) {
		details = append(details, fmt.Sprintf("and %d more", len(failed)-len(sample)))
	}

	return fmt.Sprintf(MsgBulkDeleted, len(res.Succeeded), total) + ". " +
		fmt.Sprintf(MsgBulkFailures, len(failed), strings.Join(details, ", "))
}

// renderLoadError renders a list screen without rows and with the failure in the banner
func (h *Handler) renderLoadError(w http.ResponseWriter, r *http.Request, name string, p *page, view interface{}, err error) {
	if upstreamRejected(err) {
		h.endRejectedSession(w, r)
		return
	}
	status, msg := errorMessage(err)
	logger.FromContext(r.Context()).Warn(LogMsgLoadFailed, "page", name, "error", err)
	p.Flash = &Flash{Kind: FlashError, Message: msg}
	p.Data = view
	h.render(w, r, status, name, p)
}
