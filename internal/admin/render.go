package admin

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PromoAdmin_Go/internal/auth"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/formtime"
	"github.com/osse101/PromoAdmin_Go/internal/listing"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names
const (
	pageLogin      = "login"
	pageDashboard  = "dashboard"
	pageCountdowns = "countdown_list"
	pageCountdown  = "countdown_form"
	pageFounder    = "founder_pack"
	pageTaps       = "taps"
	pageTapGoals   = "tap_goals"
	pageTapRewards = "tap_rewards"
	pageImages     = "images"
	pageAudit      = "audit"
)

var pageNames = []string{
	pageLogin, pageDashboard, pageCountdowns, pageCountdown, pageFounder,
	pageTaps, pageTapGoals, pageTapRewards, pageImages, pageAudit,
}

// liveTypes are the admin actions that make an open screen reload
var liveTypes = slices.DeleteFunc(slices.Clone(domain.AllAdminEventTypes), func(t string) bool {
	return t == domain.EventTypeAdminLogin || t == domain.EventTypeAdminLogout
})

// page is the data every template receives
type page struct {
	Title  string
	Nav    string
	User   *domain.AdminUser
	Flash  *Flash
	Errors map[string]string
	// Live is the entity type whose changes reload the screen
	Live string
	Data interface{}
}

// LiveTypes is read by the layout to subscribe to admin actions
func (p *page) LiveTypes() string {
	return strings.Join(liveTypes, ",")
}

// Err returns the validation message for a field
func (p *page) Err(field string) string {
	return p.Errors[field]
}

func parsePages(loc *time.Location) (map[string]*template.Template, error) {
	funcs := templateFuncs(loc)
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/partials.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

func templateFuncs(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"title": titleCase,
		"inputTime": func(t time.Time) string {
			return formtime.ToInputValue(t, loc)
		},
		"inputTimePtr": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return formtime.ToInputValue(*t, loc)
		},
		"displayTime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.In(loc).Format(displayTimeLayout)
		},
		"displayTimePtr": func(t *time.Time) string {
			if t == nil || t.IsZero() {
				return ""
			}
			return t.In(loc).Format(displayTimeLayout)
		},
		"price":    formatPrice,
		"dayField": dayFieldName,
		"selected": func(a, b string) bool { return strings.EqualFold(a, b) },
		"kib":      func(n int64) string { return strconv.FormatInt((n+1023)/1024, 10) + " KiB" },
		"zoneName": func() string { return loc.String() },
		"navItem":  newNavItem,
		"tapGoalForm": func(row interface{}, back string) tapGoalFormData {
			data := tapGoalFormData{Back: back}
			if r, ok := row.(tapGoalRow); ok {
				data.Goal = &r.TapGoal
			}
			return data
		},
	}
}

// tapGoalFormData feeds the shared create and edit form of a tap goal
type tapGoalFormData struct {
	Goal *domain.TapGoal
	Back string
}

type navItem struct {
	Active bool
	Href   string
	Label  string
}

func newNavItem(current, key, href, label string) navItem {
	return navItem{Active: current == key, Href: href, Label: label}
}

// titleCase turns identifiers such as "tapathon.taps_deleted" into labels.
// A Caser is stateful, so one is built per call.
func titleCase(s string) string {
	s = strings.NewReplacer("_", " ", ".", " ").Replace(s)
	return cases.Title(language.English).String(s)
}

func formatPrice(cents int) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

// render executes a page inside the layout. The session user and any pending
// flash message are added to p.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, p *page) {
	if s, ok := auth.SessionFromContext(r.Context()); ok {
		p.User = &s.User
	}
	if p.Flash == nil {
		p.Flash = popFlash(w, r)
	}

	t, ok := h.pages[name]
	if !ok {
		logger.FromContext(r.Context()).Error(LogMsgRenderFailed, "page", name, "error", "unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufPool.Put(buf)

	if err := t.ExecuteTemplate(buf, "layout", p); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgRenderFailed, "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// pager is a page of results with links that keep the current filters
type pager struct {
	listing.PageInfo
	PrevURL string
	NextURL string
}

func newPager(r *http.Request, info listing.PageInfo) pager {
	link := func(n int) string {
		q := r.URL.Query()
		q.Set("page", strconv.Itoa(n))
		return r.URL.Path + "?" + q.Encode()
	}
	p := pager{PageInfo: info}
	if info.HasPrev {
		p.PrevURL = link(info.PrevPage())
	}
	if info.HasNext {
		p.NextURL = link(info.NextPage())
	}
	return p
}

// backTo returns the local URL posted in the back field, or fallback
func backTo(r *http.Request, fallback string) string {
	if back := r.PostFormValue(FieldBack); back != "" && auth.SafeNext(back) == back {
		return back
	}
	return fallback
}

// currentURL is the request path and query, used as the back field of forms
func currentURL(r *http.Request) string {
	u := url.URL{Path: r.URL.Path, RawQuery: r.URL.RawQuery}
	return u.String()
}
