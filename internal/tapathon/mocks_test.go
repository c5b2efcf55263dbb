package tapathon

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// MockAPI implements API for testing
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListTaps(ctx context.Context, limit, offset int) ([]domain.TapRecord, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TapRecord), args.Error(1)
}

func (m *MockAPI) DeleteTap(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) ListTapGoals(ctx context.Context, limit, offset int) ([]domain.TapGoal, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TapGoal), args.Error(1)
}

func (m *MockAPI) CreateTapGoal(ctx context.Context, goal domain.TapGoal) (*domain.TapGoal, error) {
	args := m.Called(ctx, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TapGoal), args.Error(1)
}

func (m *MockAPI) UpdateTapGoal(ctx context.Context, id string, goal domain.TapGoal) (*domain.TapGoal, error) {
	args := m.Called(ctx, id, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TapGoal), args.Error(1)
}

func (m *MockAPI) DeleteTapGoal(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) ListTapRewards(ctx context.Context, limit, offset int) ([]domain.TapReward, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TapReward), args.Error(1)
}

func (m *MockAPI) UpdateTapReward(ctx context.Context, id string, reward domain.TapReward) (*domain.TapReward, error) {
	args := m.Called(ctx, id, reward)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TapReward), args.Error(1)
}

func (m *MockAPI) DeleteTapReward(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
