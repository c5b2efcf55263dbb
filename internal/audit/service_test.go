package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

func TestService_SubscribesToEveryAdminAction(t *testing.T) {
	repo := new(MockRepository)
	bus := new(MockEventBus)
	for _, et := range domain.AllAdminEventTypes {
		bus.On("Subscribe", event.Type(et), mock.Anything).Return()
	}

	NewService(repo).Subscribe(bus)

	bus.AssertExpectations(t)
}

func TestService_RecordsPublishedActions(t *testing.T) {
	repo := new(MockRepository)
	bus := event.NewMemoryBus()
	NewService(repo).Subscribe(bus)

	repo.On("Record", mock.Anything, mock.MatchedBy(func(e Entry) bool {
		return e.Action == domain.EventTypeCountdownDeleted &&
			e.Actor == "alice" &&
			e.EntityType == domain.EntityCountdownEvent &&
			e.EntityID == "ev-1" &&
			e.RequestID == "req-42" &&
			!e.CreatedAt.IsZero()
	})).Return(nil).Once()

	ctx := logger.WithRequestID(context.Background(), "req-42")
	event.NewPublisher(bus).Publish(ctx, domain.EventTypeCountdownDeleted, "alice", domain.EntityCountdownEvent, "ev-1", "Spring countdown")

	repo.AssertExpectations(t)
}

func TestService_HandleEvent_SkipsUndecodablePayload(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo).(*service)

	err := svc.handleEvent(context.Background(), event.Event{Type: "countdown.created", Payload: "not a payload"})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestService_HandleEvent_RecordError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Record", mock.Anything, mock.Anything).Return(errors.New("db down"))
	svc := NewService(repo).(*service)

	evt := event.NewAdminActionEvent(context.Background(), domain.EventTypeImageDeleted, "bob", domain.EntityImage, "img-1", "")
	err := svc.handleEvent(context.Background(), evt)

	assert.Error(t, err)
}

func TestService_List(t *testing.T) {
	t.Run("applies default limit", func(t *testing.T) {
		repo := new(MockRepository)
		want := Filter{Actor: "alice", Limit: DefaultListLimit}
		repo.On("List", mock.Anything, want).Return([]Entry{{ID: 1}}, nil)
		repo.On("Count", mock.Anything, want).Return(7, nil)

		entries, total, err := NewService(repo).List(context.Background(), Filter{Actor: "alice", Offset: -3})

		require.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, 7, total)
	})

	t.Run("caps limit", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("List", mock.Anything, Filter{Limit: MaxListLimit}).Return([]Entry{}, nil)
		repo.On("Count", mock.Anything, Filter{Limit: MaxListLimit}).Return(0, nil)

		_, _, err := NewService(repo).List(context.Background(), Filter{Limit: 10_000})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		repo := new(MockRepository)
		since := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		until := since.Add(-time.Hour)

		_, _, err := NewService(repo).List(context.Background(), Filter{Since: &since, Until: &until})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		_, _, err := NewService(repo).List(context.Background(), Filter{})
		assert.ErrorIs(t, err, domain.ErrDatabaseError)
	})
}

func TestService_CleanupOldEntries(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo).(*service)
	now := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	repo.On("DeleteBefore", mock.Anything, now.AddDate(0, 0, -30)).Return(int64(5), nil)

	count, err := svc.CleanupOldEntries(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	count, err = svc.CleanupOldEntries(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, count)
	repo.AssertNumberOfCalls(t, "DeleteBefore", 1)
}
