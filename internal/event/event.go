package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// AdminActionPayloadV1 is the typed payload for every admin mutation
type AdminActionPayloadV1 struct {
	Actor      string `json:"actor"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}

// NewAdminActionEvent creates an admin action event. The request id is copied from ctx when present.
func NewAdminActionEvent(ctx context.Context, action, actor, entityType, entityID, summary string) Event {
	evt := Event{
		Version: EventSchemaVersion,
		Type:    Type(action),
		Payload: AdminActionPayloadV1{
			Actor:      actor,
			Action:     action,
			EntityType: entityType,
			EntityID:   entityID,
			Summary:    summary,
			Timestamp:  time.Now().Unix(),
		},
	}
	if id, ok := logger.RequestIDFromContext(ctx); ok {
		evt.Metadata = Metadata{MetadataKeyRequestID: id}
	}
	return evt
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously; every handler runs even when an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publisher is the narrow view services need: publish and forget.
// A failed publish is logged, never returned, so a recorded mutation is not reported as failed.
type Publisher struct {
	bus Bus
}

// NewPublisher wraps bus. A nil bus makes Publish a no-op.
func NewPublisher(bus Bus) *Publisher {
	return &Publisher{bus: bus}
}

// Publish publishes an admin action event
func (p *Publisher) Publish(ctx context.Context, action, actor, entityType, entityID, summary string) {
	if p == nil || p.bus == nil {
		return
	}
	evt := NewAdminActionEvent(ctx, action, actor, entityType, entityID, summary)
	if err := p.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", action, "error", err)
	}
}
