package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
)

func TestEventMetricsCollector_CountsAdminActions(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	before := testutil.ToFloat64(AdminActions.WithLabelValues(domain.EventTypeCountdownDeleted))
	published := testutil.ToFloat64(EventsPublished.WithLabelValues(domain.EventTypeCountdownDeleted))

	evt := event.NewAdminActionEvent(context.Background(), domain.EventTypeCountdownDeleted, "alice", domain.EntityCountdownEvent, "7", "")
	require.NoError(t, bus.Publish(context.Background(), evt))

	assert.Equal(t, before+1, testutil.ToFloat64(AdminActions.WithLabelValues(domain.EventTypeCountdownDeleted)))
	assert.Equal(t, published+1, testutil.ToFloat64(EventsPublished.WithLabelValues(domain.EventTypeCountdownDeleted)))
}

func TestEventMetricsCollector_LoginCountsAsAttempt(t *testing.T) {
	before := testutil.ToFloat64(LoginAttempts.WithLabelValues(OutcomeSucceeded))

	evt := event.NewAdminActionEvent(context.Background(), domain.EventTypeAdminLogin, "alice", domain.EntitySession, "", "")
	require.NoError(t, NewEventMetricsCollector().HandleEvent(context.Background(), evt))

	assert.Equal(t, before+1, testutil.ToFloat64(LoginAttempts.WithLabelValues(OutcomeSucceeded)))
}

func TestEventMetricsCollector_IgnoresForeignPayload(t *testing.T) {
	evt := event.Event{Type: "something.else", Payload: 42}
	assert.NoError(t, NewEventMetricsCollector().HandleEvent(context.Background(), evt))
}
