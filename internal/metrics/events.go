package metrics

import (
	"context"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all admin action events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range domain.AllAdminEventTypes {
		bus.Subscribe(event.Type(eventType), e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	payload, err := event.ActionPayload(evt)
	if err != nil {
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type)
		return nil
	}

	switch payload.Action {
	case domain.EventTypeAdminLogin:
		LoginAttempts.WithLabelValues(OutcomeSucceeded).Inc()
	case domain.EventTypeAdminLogout:
	default:
		AdminActions.WithLabelValues(payload.Action).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
