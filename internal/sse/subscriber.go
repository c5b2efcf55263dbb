package sse

import (
	"context"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Subscribe registers for every admin action except sign in and sign out
func (s *Subscriber) Subscribe(bus event.Bus) {
	for _, t := range domain.AllAdminEventTypes {
		if t == domain.EventTypeAdminLogin || t == domain.EventTypeAdminLogout {
			continue
		}
		bus.Subscribe(event.Type(t), s.handleAction)
	}
	logger.FromContext(context.Background()).Info(LogMsgSubscribed)
}

func (s *Subscriber) handleAction(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.ActionPayload(evt)
	if err != nil {
		log.Warn(LogMsgPayloadInvalid, "type", evt.Type)
		return nil
	}

	ok := s.hub.Broadcast(payload.Action, payload.EntityType, ActionPayload{
		Actor:      payload.Actor,
		EntityType: payload.EntityType,
		EntityID:   payload.EntityID,
		Summary:    payload.Summary,
	})
	if !ok {
		log.Warn(LogMsgEventDropped, "type", payload.Action)
		return nil
	}
	log.Debug(LogMsgEventBroadcast, "type", payload.Action, "clients", s.hub.ClientCount())
	return nil
}
