package countdown

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/validation"
)

type recordedEvents struct {
	types []string
}

func newTestService(api *MockAPI) (Service, *recordedEvents) {
	bus := event.NewMemoryBus()
	rec := &recordedEvents{}
	for _, typ := range domain.AllAdminEventTypes {
		bus.Subscribe(event.Type(typ), func(_ context.Context, evt event.Event) error {
			rec.types = append(rec.types, string(evt.Type))
			return nil
		})
	}
	return NewService(api, validation.NewSchemaValidator(), event.NewPublisher(bus)), rec
}

func validEvent() domain.CountdownEvent {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := completeRewards()
	// submitted out of order, the service sorts before sending
	rows[0], rows[6] = rows[6], rows[0]
	return domain.CountdownEvent{Name: " Launch ", StartTime: start, EndTime: start.Add(7 * 24 * time.Hour), IsActive: true, Rewards: rows}
}

func TestCreate_IncompleteRewardsNeverReachAPI(t *testing.T) {
	api := new(MockAPI)
	svc, rec := newTestService(api)

	evt := validEvent()
	evt.Rewards = EmptyRewards()

	_, err := svc.Create(context.Background(), evt)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "day 1: reward type is required")
	api.AssertNotCalled(t, "CreateCountdownEvent", mock.Anything, mock.Anything)
	assert.Empty(t, rec.types)
}

func TestCreate_SortsAndPublishes(t *testing.T) {
	api := new(MockAPI)
	svc, rec := newTestService(api)

	api.On("CreateCountdownEvent", mock.Anything, mock.MatchedBy(func(evt domain.CountdownEvent) bool {
		for i, r := range evt.Rewards {
			if r.Day != i+1 {
				return false
			}
		}
		return evt.Name == "Launch"
	})).Return(&domain.CountdownEvent{ID: "ev1", Name: "Launch"}, nil)

	ctx := domain.WithActor(context.Background(), "alice")
	created, err := svc.Create(ctx, validEvent())
	require.NoError(t, err)
	assert.Equal(t, "ev1", created.ID)
	assert.Equal(t, []string{domain.EventTypeCountdownCreated}, rec.types)
	api.AssertExpectations(t)
}

func TestUpdate_SetsIDAndPropagatesErrors(t *testing.T) {
	api := new(MockAPI)
	svc, rec := newTestService(api)

	api.On("UpdateCountdownEvent", mock.Anything, "ev1", mock.MatchedBy(func(evt domain.CountdownEvent) bool {
		return evt.ID == "ev1"
	})).Return(nil, domain.ErrNotFound)

	_, err := svc.Update(context.Background(), "ev1", validEvent())
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, rec.types)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	api := new(MockAPI)
	svc, rec := newTestService(api)

	err := svc.Delete(context.Background(), "ev1", false)
	require.ErrorIs(t, err, domain.ErrConfirmationRequired)
	api.AssertNotCalled(t, "DeleteCountdownEvent", mock.Anything, mock.Anything)

	api.On("DeleteCountdownEvent", mock.Anything, "ev1").Return(nil)
	require.NoError(t, svc.Delete(context.Background(), "ev1", true))
	assert.Equal(t, []string{domain.EventTypeCountdownDeleted}, rec.types)
}

func TestListAndGet(t *testing.T) {
	api := new(MockAPI)
	svc, _ := newTestService(api)

	older := domain.CountdownEvent{ID: "a", StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := domain.CountdownEvent{ID: "b", StartTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	api.On("ListCountdownEvents", mock.Anything).Return([]domain.CountdownEvent{older, newer}, nil)
	api.On("GetCountdownEvent", mock.Anything, "a").Return(&domain.CountdownEvent{ID: "a", Rewards: []domain.DailyReward{{Day: 3}}}, nil)

	events, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b", events[0].ID)

	evt, err := svc.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Len(t, evt.Rewards, domain.CountdownDays)
}

func TestImport(t *testing.T) {
	api := new(MockAPI)
	svc, _ := newTestService(api)

	evt := validEvent()
	evt.Name = "Imported"
	data, err := json.Marshal(struct {
		Name      string               `json:"name"`
		StartTime time.Time            `json:"start_time"`
		EndTime   time.Time            `json:"end_time"`
		Rewards   []domain.DailyReward `json:"rewards"`
	}{evt.Name, evt.StartTime, evt.EndTime, evt.Rewards})
	require.NoError(t, err)

	api.On("CreateCountdownEvent", mock.Anything, mock.Anything).Return(&domain.CountdownEvent{ID: "imp"}, nil)

	created, err := svc.Import(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, "imp", created.ID)

	_, err = svc.Import(context.Background(), []byte(`{"name": "x"}`))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	api.AssertNumberOfCalls(t, "CreateCountdownEvent", 1)
}
