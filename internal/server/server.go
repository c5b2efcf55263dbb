package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/PromoAdmin_Go/internal/admin"
	"github.com/osse101/PromoAdmin_Go/internal/audit"
	"github.com/osse101/PromoAdmin_Go/internal/auth"
	"github.com/osse101/PromoAdmin_Go/internal/countdown"
	"github.com/osse101/PromoAdmin_Go/internal/founderpack"
	"github.com/osse101/PromoAdmin_Go/internal/handler"
	"github.com/osse101/PromoAdmin_Go/internal/images"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
	"github.com/osse101/PromoAdmin_Go/internal/metrics"
	"github.com/osse101/PromoAdmin_Go/internal/sse"
	"github.com/osse101/PromoAdmin_Go/internal/tapathon"
)

// Deps carries everything the router needs
type Deps struct {
	Admin       *admin.Handler
	Countdowns  countdown.Service
	FounderPack founderpack.Service
	Tapathon    tapathon.Service
	Images      images.Service
	Audit       audit.Service
	Auth        auth.Service
	Hub         *sse.Hub
	Readiness   []handler.ReadinessCheck

	SecureCookie   bool
	MaxUploadBytes int64
	TrustedProxies []string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the HTML screens, the JSON admin API and the operational endpoints
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// chi runs middleware outermost first
	detector := NewSuspiciousActivityDetector()
	failedLogins := FailedLoginMiddleware(deps.TrustedProxies, detector)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(deps.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(deps.MaxUploadBytes + FormOverheadBytes))
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Readiness...))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	mountScreens(r, deps, failedLogins)

	r.Route("/api/v1/admin", func(r chi.Router) {
		mountAPI(r, deps, failedLogins)
	})

	return r
}

func mountScreens(r chi.Router, deps Deps, failedLogins func(http.Handler) http.Handler) {
	a := deps.Admin

	r.Handle(admin.PathStatic+"*", http.StripPrefix(strings.TrimSuffix(admin.PathStatic, "/"), admin.StaticHandler()))
	r.Get(admin.PathLogin, a.HandleLoginPage)
	r.With(failedLogins).Post(admin.PathLogin, a.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(deps.Auth, auth.ModeRedirect, deps.SecureCookie))

		r.Post(admin.PathLogout, a.HandleLogout)
		r.Get(admin.PathDashboard, a.HandleDashboard)

		r.Route(admin.PathCountdown, func(r chi.Router) {
			r.Get("/", a.HandleCountdownList)
			r.Post("/", a.HandleCountdownCreate)
			r.Get("/new", a.HandleCountdownNew)
			r.Post("/import", a.HandleCountdownImport)
			r.Get("/{id}", a.HandleCountdownEdit)
			r.Post("/{id}", a.HandleCountdownUpdate)
			r.Post("/{id}/delete", a.HandleCountdownDelete)
		})

		r.Route(admin.PathFounder, func(r chi.Router) {
			r.Get("/", a.HandleFounderPack)
			r.Post("/", a.HandleFounderPackSave)
			r.Post("/goals", a.HandleGoalCreate)
			r.Post("/goals/{id}", a.HandleGoalUpdate)
			r.Post("/goals/{id}/delete", a.HandleGoalDelete)
		})

		r.Get(admin.PathTaps, a.HandleTaps)
		r.Post(admin.PathTaps+"/delete", a.HandleTapsDelete)
		r.Route(admin.PathTapGoals, func(r chi.Router) {
			r.Get("/", a.HandleTapGoals)
			r.Post("/", a.HandleTapGoalCreate)
			r.Post("/delete", a.HandleTapGoalsDelete)
			r.Post("/{id}", a.HandleTapGoalUpdate)
		})
		r.Route(admin.PathTapRewards, func(r chi.Router) {
			r.Get("/", a.HandleTapRewards)
			r.Post("/{id}/claim", a.HandleRewardClaim)
			r.Post("/{id}/delete", a.HandleRewardDelete)
		})

		r.Route(admin.PathImages, func(r chi.Router) {
			r.Get("/", a.HandleImages)
			r.Post("/", a.HandleImageUpload)
			r.Post("/{id}", a.HandleImageUpdate)
			r.Post("/{id}/delete", a.HandleImageDelete)
		})

		r.Get(admin.PathAudit, a.HandleAudit)
	})
}

func mountAPI(r chi.Router, deps Deps, failedLogins func(http.Handler) http.Handler) {
	authHandler := handler.NewAuthHandler(deps.Auth, deps.SecureCookie)
	r.With(failedLogins).Post("/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(deps.Auth, auth.ModeJSON, deps.SecureCookie))

		r.Post("/logout", authHandler.HandleLogout)
		r.Get("/me", authHandler.HandleMe)
		r.Get("/events", sse.Handler(deps.Hub))
		r.Get("/metrics", handler.NewAdminMetricsHandler(deps.Hub).HandleGetMetrics)
		r.Get("/cache/stats", handler.NewAdminCacheHandler(deps.Auth).HandleGetCacheStats)
		r.Get("/audit", handler.NewAuditHandler(deps.Audit).HandleList)

		countdowns := handler.NewCountdownHandler(deps.Countdowns)
		r.Route("/countdown", func(r chi.Router) {
			r.Get("/", countdowns.HandleList)
			r.Post("/", countdowns.HandleCreate)
			r.Post("/import", countdowns.HandleImport)
			r.Get("/{id}", countdowns.HandleGet)
			r.Put("/{id}", countdowns.HandleUpdate)
			r.Delete("/{id}", countdowns.HandleDelete)
		})

		founder := handler.NewFounderPackHandler(deps.FounderPack)
		r.Route("/founder-pack", func(r chi.Router) {
			r.Get("/", founder.HandleOverview)
			r.Put("/", founder.HandleUpdatePack)
			r.Get("/goals", founder.HandleListGoals)
			r.Post("/goals", founder.HandleCreateGoal)
			r.Put("/goals/{id}", founder.HandleUpdateGoal)
			r.Delete("/goals/{id}", founder.HandleDeleteGoal)
		})

		taps := handler.NewTapathonHandler(deps.Tapathon)
		r.Route("/tapathon", func(r chi.Router) {
			r.Get("/taps", taps.HandleListTaps)
			r.Post("/taps/delete", taps.HandleDeleteTaps)
			r.Get("/goals", taps.HandleListGoals)
			r.Post("/goals", taps.HandleCreateGoal)
			r.Post("/goals/delete", taps.HandleDeleteGoals)
			r.Put("/goals/{id}", taps.HandleUpdateGoal)
			r.Get("/rewards", taps.HandleListRewards)
			r.Put("/rewards/{id}/claim", taps.HandleSetRewardClaimed)
			r.Delete("/rewards/{id}", taps.HandleDeleteReward)
		})

		imgs := handler.NewImagesHandler(deps.Images, deps.MaxUploadBytes)
		r.Route("/images", func(r chi.Router) {
			r.Get("/", imgs.HandleList)
			r.Post("/", imgs.HandleUpload)
			r.Get("/public", imgs.HandlePublic)
			r.Put("/{id}", imgs.HandleUpdate)
			r.Delete("/{id}", imgs.HandleDelete)
		})
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuiet(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		if isQuiet(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
