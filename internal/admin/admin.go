package admin

import (
	"fmt"
	"html/template"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/audit"
	"github.com/osse101/PromoAdmin_Go/internal/auth"
	"github.com/osse101/PromoAdmin_Go/internal/countdown"
	"github.com/osse101/PromoAdmin_Go/internal/founderpack"
	"github.com/osse101/PromoAdmin_Go/internal/images"
	"github.com/osse101/PromoAdmin_Go/internal/tapathon"
)

// Config holds the services behind the admin screens
type Config struct {
	Countdowns     countdown.Service
	FounderPack    founderpack.Service
	Tapathon       tapathon.Service
	Images         images.Service
	Audit          audit.Service
	Auth           auth.Service
	Location       *time.Location
	SecureCookie   bool
	MaxUploadBytes int64
}

// Handler serves the server-rendered admin screens
type Handler struct {
	countdowns   countdown.Service
	founderPack  founderpack.Service
	tapathon     tapathon.Service
	images       images.Service
	audit        audit.Service
	auth         auth.Service
	loc          *time.Location
	secureCookie bool
	maxUpload    int64
	pages        map[string]*template.Template
	now          func() time.Time
}

// New parses the embedded templates and returns the admin handler
func New(cfg Config) (*Handler, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = images.DefaultMaxUploadBytes
	}

	pages, err := parsePages(loc)
	if err != nil {
		return nil, fmt.Errorf("admin: failed to parse templates: %w", err)
	}

	return &Handler{
		countdowns:   cfg.Countdowns,
		founderPack:  cfg.FounderPack,
		tapathon:     cfg.Tapathon,
		images:       cfg.Images,
		audit:        cfg.Audit,
		auth:         cfg.Auth,
		loc:          loc,
		secureCookie: cfg.SecureCookie,
		maxUpload:    maxUpload,
		pages:        pages,
		now:          time.Now,
	}, nil
}
