package bootstrap

import (
	"log/slog"

	"github.com/osse101/PromoAdmin_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus and the publisher
// services use to announce admin actions.
func InitializeEventSystem() (event.Bus, *event.Publisher) {
	bus := event.NewMemoryBus()
	publisher := event.NewPublisher(bus)
	slog.Info(LogMsgEventSystemInitialized)
	return bus, publisher
}
