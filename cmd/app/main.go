package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/admin"
	"github.com/osse101/PromoAdmin_Go/internal/apiclient"
	"github.com/osse101/PromoAdmin_Go/internal/audit"
	"github.com/osse101/PromoAdmin_Go/internal/auth"
	"github.com/osse101/PromoAdmin_Go/internal/bootstrap"
	"github.com/osse101/PromoAdmin_Go/internal/config"
	"github.com/osse101/PromoAdmin_Go/internal/countdown"
	"github.com/osse101/PromoAdmin_Go/internal/founderpack"
	"github.com/osse101/PromoAdmin_Go/internal/handler"
	"github.com/osse101/PromoAdmin_Go/internal/images"
	"github.com/osse101/PromoAdmin_Go/internal/server"
	"github.com/osse101/PromoAdmin_Go/internal/sse"
	"github.com/osse101/PromoAdmin_Go/internal/tapathon"
	"github.com/osse101/PromoAdmin_Go/internal/validation"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "promo-admin: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	api := apiclient.New(cfg.APIBaseURL, cfg.APIKey, cfg.APITimeout)
	bus, publisher := bootstrap.InitializeEventSystem()

	auditSvc := audit.NewService(storage.Audit)
	authSvc := auth.NewService(api, storage.Sessions, cfg.SessionTTL,
		auth.CacheConfig{Size: auth.DefaultCacheSize, TTL: auth.DefaultCacheTTL}, publisher)
	countdownSvc := countdown.NewService(api, validation.NewSchemaValidator(), publisher)
	founderPackSvc := founderpack.NewService(api, publisher)
	tapathonSvc := tapathon.NewService(api, cfg.TapathonBatchSize, publisher)
	imagesSvc := images.NewService(api, cfg.MaxUploadBytes, publisher)

	hub := sse.NewHub()
	hub.Start()

	jobs := bootstrap.NewBackgroundJobs()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:     bus,
		AuditService: auditSvc,
		Hub:          hub,
		Queue:        jobs.Pool,
		Config:       cfg,
	}); err != nil {
		return err
	}

	jobs.StartSchedules(auditSvc, authSvc, cfg.AuditRetentionDays)

	screens, err := admin.New(admin.Config{
		Countdowns:     countdownSvc,
		FounderPack:    founderPackSvc,
		Tapathon:       tapathonSvc,
		Images:         imagesSvc,
		Audit:          auditSvc,
		Auth:           authSvc,
		Location:       cfg.DisplayLocation(),
		SecureCookie:   cfg.SessionCookieSecure,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to load admin templates: %w", err)
	}

	readiness := []handler.ReadinessCheck{{Name: "promo_api", Pinger: api}}
	if storage.Pool != nil {
		readiness = append(readiness, handler.ReadinessCheck{Name: "database", Pinger: storage.Pool})
	}

	srv := server.NewServer(cfg.Port, server.Deps{
		Admin:          screens,
		Countdowns:     countdownSvc,
		FounderPack:    founderPackSvc,
		Tapathon:       tapathonSvc,
		Images:         imagesSvc,
		Audit:          auditSvc,
		Auth:           authSvc,
		Hub:            hub,
		Readiness:      readiness,
		SecureCookie:   cfg.SessionCookieSecure,
		MaxUploadBytes: cfg.MaxUploadBytes,
		TrustedProxies: cfg.TrustedProxies,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Jobs:    jobs,
		Hub:     hub,
		Storage: storage,
	})
	return err
}
