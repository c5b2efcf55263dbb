package founderpack

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// MockAPI implements API for testing
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) GetFounderPack(ctx context.Context) (*domain.FounderPack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FounderPack), args.Error(1)
}

func (m *MockAPI) UpdateFounderPack(ctx context.Context, pack domain.FounderPack) (*domain.FounderPack, error) {
	args := m.Called(ctx, pack)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FounderPack), args.Error(1)
}

func (m *MockAPI) GetUserPackStatus(ctx context.Context, userID string) (*domain.UserPackStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPackStatus), args.Error(1)
}

func (m *MockAPI) GetGoalsStatus(ctx context.Context) (*domain.GoalsStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoalsStatus), args.Error(1)
}

func (m *MockAPI) ListCommunityGoals(ctx context.Context) ([]domain.CommunityGoal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommunityGoal), args.Error(1)
}

func (m *MockAPI) CreateCommunityGoal(ctx context.Context, goal domain.CommunityGoal) (*domain.CommunityGoal, error) {
	args := m.Called(ctx, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunityGoal), args.Error(1)
}

func (m *MockAPI) UpdateCommunityGoal(ctx context.Context, id string, goal domain.CommunityGoal) (*domain.CommunityGoal, error) {
	args := m.Called(ctx, id, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunityGoal), args.Error(1)
}

func (m *MockAPI) DeleteCommunityGoal(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
