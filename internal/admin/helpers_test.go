package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PromoAdmin_Go/internal/auth"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

var testNow = time.Date(2026, 5, 3, 12, 0, 0, 0, time.UTC)

type testServices struct {
	countdowns  *MockCountdownService
	founderPack *MockFounderPackService
	tapathon    *MockTapathonService
	images      *MockImagesService
	audit       *MockAuditService
	auth        *MockAuthService
}

func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()
	svcs := &testServices{
		countdowns:  new(MockCountdownService),
		founderPack: new(MockFounderPackService),
		tapathon:    new(MockTapathonService),
		images:      new(MockImagesService),
		audit:       new(MockAuditService),
		auth:        new(MockAuthService),
	}
	h, err := New(Config{
		Countdowns:  svcs.countdowns,
		FounderPack: svcs.founderPack,
		Tapathon:    svcs.tapathon,
		Images:      svcs.images,
		Audit:       svcs.audit,
		Auth:        svcs.auth,
		Location:    time.UTC,
	})
	require.NoError(t, err)
	h.now = func() time.Time { return testNow }
	return h, svcs
}

// signedIn adds an admin session to the request context the way auth.Middleware does
func signedIn(r *http.Request) *http.Request {
	s := &domain.Session{ID: "sess", Token: "tok", User: domain.AdminUser{ID: "u1", Username: "alice", Role: "admin"}}
	ctx := auth.WithSession(r.Context(), s)
	ctx = domain.WithActor(ctx, s.User.Username)
	return r.WithContext(ctx)
}

func newFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return signedIn(req)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// flashOf decodes the flash cookie set on the response
func flashOf(t *testing.T, w *httptest.ResponseRecorder) *Flash {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		if c.Name == FlashCookieName {
			req.AddCookie(c)
		}
	}
	return popFlash(httptest.NewRecorder(), req)
}

func indexOf(body, s string) int {
	return strings.Index(body, s)
}
