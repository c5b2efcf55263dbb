package admin

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PromoAdmin_Go/internal/audit"
	"github.com/osse101/PromoAdmin_Go/internal/auth"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/founderpack"
	"github.com/osse101/PromoAdmin_Go/internal/listing"
)

type MockCountdownService struct {
	mock.Mock
}

func (m *MockCountdownService) List(ctx context.Context) ([]domain.CountdownEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountdownEvent), args.Error(1)
}

func (m *MockCountdownService) Get(ctx context.Context, id string) (*domain.CountdownEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountdownEvent), args.Error(1)
}

func (m *MockCountdownService) Create(ctx context.Context, evt domain.CountdownEvent) (*domain.CountdownEvent, error) {
	args := m.Called(ctx, evt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountdownEvent), args.Error(1)
}

func (m *MockCountdownService) Update(ctx context.Context, id string, evt domain.CountdownEvent) (*domain.CountdownEvent, error) {
	args := m.Called(ctx, id, evt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountdownEvent), args.Error(1)
}

func (m *MockCountdownService) Delete(ctx context.Context, id string, confirmed bool) error {
	args := m.Called(ctx, id, confirmed)
	return args.Error(0)
}

func (m *MockCountdownService) Import(ctx context.Context, data []byte) (*domain.CountdownEvent, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CountdownEvent), args.Error(1)
}

type MockFounderPackService struct {
	mock.Mock
}

func (m *MockFounderPackService) Overview(ctx context.Context, userID string) (*founderpack.Overview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*founderpack.Overview), args.Error(1)
}

func (m *MockFounderPackService) UpdatePack(ctx context.Context, pack domain.FounderPack) (*domain.FounderPack, error) {
	args := m.Called(ctx, pack)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FounderPack), args.Error(1)
}

func (m *MockFounderPackService) ListGoals(ctx context.Context) ([]domain.CommunityGoal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommunityGoal), args.Error(1)
}

func (m *MockFounderPackService) CreateGoal(ctx context.Context, goal domain.CommunityGoal) (*domain.CommunityGoal, error) {
	args := m.Called(ctx, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunityGoal), args.Error(1)
}

func (m *MockFounderPackService) UpdateGoal(ctx context.Context, id string, goal domain.CommunityGoal) (*domain.CommunityGoal, error) {
	args := m.Called(ctx, id, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommunityGoal), args.Error(1)
}

func (m *MockFounderPackService) DeleteGoal(ctx context.Context, id string, confirmed bool) error {
	args := m.Called(ctx, id, confirmed)
	return args.Error(0)
}

type MockTapathonService struct {
	mock.Mock
}

func (m *MockTapathonService) AllTaps(ctx context.Context) ([]domain.TapRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TapRecord), args.Error(1)
}

func (m *MockTapathonService) DeleteTaps(ctx context.Context, ids []string, confirmed bool) (listing.BulkResult[string], error) {
	args := m.Called(ctx, ids, confirmed)
	return args.Get(0).(listing.BulkResult[string]), args.Error(1)
}

func (m *MockTapathonService) AllGoals(ctx context.Context) ([]domain.TapGoal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TapGoal), args.Error(1)
}

func (m *MockTapathonService) CreateGoal(ctx context.Context, goal domain.TapGoal) (*domain.TapGoal, error) {
	args := m.Called(ctx, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TapGoal), args.Error(1)
}

func (m *MockTapathonService) UpdateGoal(ctx context.Context, id string, goal domain.TapGoal) (*domain.TapGoal, error) {
	args := m.Called(ctx, id, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TapGoal), args.Error(1)
}

func (m *MockTapathonService) DeleteGoals(ctx context.Context, ids []string, confirmed bool) (listing.BulkResult[string], error) {
	args := m.Called(ctx, ids, confirmed)
	return args.Get(0).(listing.BulkResult[string]), args.Error(1)
}

func (m *MockTapathonService) AllRewards(ctx context.Context) ([]domain.TapReward, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TapReward), args.Error(1)
}

func (m *MockTapathonService) SetRewardClaimed(ctx context.Context, id string, claimed bool) (*domain.TapReward, error) {
	args := m.Called(ctx, id, claimed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TapReward), args.Error(1)
}

func (m *MockTapathonService) DeleteReward(ctx context.Context, id string, confirmed bool) error {
	args := m.Called(ctx, id, confirmed)
	return args.Error(0)
}

type MockImagesService struct {
	mock.Mock
}

func (m *MockImagesService) List(ctx context.Context, category string) ([]domain.ImageAsset, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImageAsset), args.Error(1)
}

func (m *MockImagesService) Upload(ctx context.Context, category, altText, filename string, data []byte) (*domain.ImageAsset, error) {
	args := m.Called(ctx, category, altText, filename, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImageAsset), args.Error(1)
}

func (m *MockImagesService) UpdateMetadata(ctx context.Context, id, category, altText string) (*domain.ImageAsset, error) {
	args := m.Called(ctx, id, category, altText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImageAsset), args.Error(1)
}

func (m *MockImagesService) Delete(ctx context.Context, id string, confirmed bool) error {
	args := m.Called(ctx, id, confirmed)
	return args.Error(0)
}

func (m *MockImagesService) Public(ctx context.Context, category string) ([]domain.ImageAsset, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImageAsset), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Subscribe(bus event.Bus) {
	m.Called(bus)
}

func (m *MockAuditService) List(ctx context.Context, filter audit.Filter) ([]audit.Entry, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]audit.Entry), args.Int(1), args.Error(2)
}

func (m *MockAuditService) CleanupOldEntries(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthService) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthService) GetCacheStats() auth.CacheStats {
	args := m.Called()
	return args.Get(0).(auth.CacheStats)
}
