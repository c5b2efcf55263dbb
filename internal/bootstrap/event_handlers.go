package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/PromoAdmin_Go/internal/audit"
	"github.com/osse101/PromoAdmin_Go/internal/config"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/metrics"
	"github.com/osse101/PromoAdmin_Go/internal/notify"
	"github.com/osse101/PromoAdmin_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus     event.Bus
	AuditService audit.Service
	Hub          *sse.Hub
	Queue        notify.Enqueuer
	Config       *config.Config
}

// RegisterEventHandlers subscribes every consumer of admin action events:
// the audit log, the metrics collector, live refresh and the Discord notifier.
// The notifier is skipped when no webhook URL is configured.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	deps.AuditService.Subscribe(deps.EventBus)
	slog.Info(LogMsgAuditSubscribed)

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub).Subscribe(deps.EventBus)
		slog.Info(LogMsgLiveRefreshSubscribed)
	}

	notifier, err := notify.New(deps.Config.DiscordWebhookURL, deps.Config.Environment, deps.Queue)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
	}
	if notifier != nil {
		notifier.Subscribe(deps.EventBus)
		slog.Info(LogMsgNotifierSubscribed)
	}

	return nil
}
