package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PromoAdmin_Go/internal/server"
	"github.com/osse101/PromoAdmin_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Jobs    *BackgroundJobs
	Hub     *sse.Hub
	Storage *Storage
}

// GracefulShutdown stops the components in order:
// 1. HTTP server (stop accepting new requests, finish in-flight ones)
// 2. Scheduler and worker pool (let queued notifications and cleanups finish)
// 3. Live refresh hub
// 4. Database pool
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgStoppingBackground)
	if c.Jobs != nil {
		c.Jobs.Scheduler.Stop()
		c.Jobs.Pool.Stop()
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Storage != nil {
		c.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
