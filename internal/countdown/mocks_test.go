package countdown

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// MockAPI implements API for testing
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListCountdownEvents(ctx context.Context) ([]domain.CountdownEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountdownEvent), args.Error(1)
}

func (m *MockAPI) GetCountdownEvent(ctx context.Context, id string) (*domain.CountdownEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountdownEvent), args.Error(1)
}

func (m *MockAPI) CreateCountdownEvent(ctx context.Context, evt domain.CountdownEvent) (*domain.CountdownEvent, error) {
	args := m.Called(ctx, evt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountdownEvent), args.Error(1)
}

func (m *MockAPI) UpdateCountdownEvent(ctx context.Context, id string, evt domain.CountdownEvent) (*domain.CountdownEvent, error) {
	args := m.Called(ctx, id, evt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountdownEvent), args.Error(1)
}

func (m *MockAPI) DeleteCountdownEvent(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
