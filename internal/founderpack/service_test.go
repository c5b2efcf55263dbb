package founderpack

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
)

func newTestService(api *MockAPI) Service {
	return NewService(api, event.NewPublisher(event.NewMemoryBus()))
}

func TestOverview_Success(t *testing.T) {
	api := new(MockAPI)
	api.On("GetFounderPack", mock.Anything).Return(&domain.FounderPack{Name: "Founder"}, nil)
	api.On("GetUserPackStatus", mock.Anything, "u1").Return(&domain.UserPackStatus{UserID: "u1", HasPurchased: true}, nil)
	api.On("GetGoalsStatus", mock.Anything).Return(&domain.GoalsStatus{TotalSales: 150, Goals: goals()}, nil)

	ov, err := newTestService(api).Overview(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Founder", ov.Pack.Name)
	assert.True(t, ov.UserStatus.HasPurchased)
	require.NotNil(t, ov.Next)
	assert.Equal(t, 2, ov.Next.Goal.TierNumber)
	api.AssertExpectations(t)
}

func TestOverview_AnyFailureFailsPage(t *testing.T) {
	calls := []string{"GetFounderPack", "GetUserPackStatus", "GetGoalsStatus"}
	for _, failing := range calls {
		t.Run(failing, func(t *testing.T) {
			boom := errors.New("boom")
			api := new(MockAPI)

			packErr, statusErr, goalsErr := error(nil), error(nil), error(nil)
			switch failing {
			case "GetFounderPack":
				packErr = boom
			case "GetUserPackStatus":
				statusErr = boom
			case "GetGoalsStatus":
				goalsErr = boom
			}
			api.On("GetFounderPack", mock.Anything).Return(&domain.FounderPack{}, packErr).Maybe()
			api.On("GetUserPackStatus", mock.Anything, "u1").Return(&domain.UserPackStatus{}, statusErr).Maybe()
			api.On("GetGoalsStatus", mock.Anything).Return(&domain.GoalsStatus{}, goalsErr).Maybe()

			ov, err := newTestService(api).Overview(context.Background(), "u1")
			require.ErrorIs(t, err, boom)
			assert.Nil(t, ov)
		})
	}
}

func TestOverview_NoUserSkipsStatus(t *testing.T) {
	api := new(MockAPI)
	api.On("GetFounderPack", mock.Anything).Return(&domain.FounderPack{}, nil)
	api.On("GetGoalsStatus", mock.Anything).Return(&domain.GoalsStatus{}, nil)

	ov, err := newTestService(api).Overview(context.Background(), " ")
	require.NoError(t, err)
	assert.Nil(t, ov.UserStatus)
	api.AssertNotCalled(t, "GetUserPackStatus", mock.Anything, mock.Anything)
}

func TestUpdatePack_Validation(t *testing.T) {
	api := new(MockAPI)
	svc := newTestService(api)

	_, err := svc.UpdatePack(context.Background(), domain.FounderPack{Name: "", Currency: "usdollar", PriceCents: -1,
		Contents: []domain.PackItem{{ItemID: "", Quantity: 1}}})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 4)
	api.AssertNotCalled(t, "UpdateFounderPack", mock.Anything, mock.Anything)

	api.On("UpdateFounderPack", mock.Anything, mock.MatchedBy(func(p domain.FounderPack) bool { return p.Currency == "USD" })).
		Return(&domain.FounderPack{ID: "fp", Name: "Founder", Currency: "USD"}, nil)
	out, err := svc.UpdatePack(context.Background(), domain.FounderPack{Name: "Founder", Currency: " usd ", PriceCents: 1999})
	require.NoError(t, err)
	assert.Equal(t, "USD", out.Currency)
}

func TestCreateGoal_ChecksExistingTiers(t *testing.T) {
	api := new(MockAPI)
	api.On("ListCommunityGoals", mock.Anything).Return(goals(), nil)
	svc := newTestService(api)

	_, err := svc.CreateGoal(context.Background(), domain.CommunityGoal{TierNumber: 2, TargetSales: 700, RewardName: "dup"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	api.AssertNotCalled(t, "CreateCommunityGoal", mock.Anything, mock.Anything)

	api.On("CreateCommunityGoal", mock.Anything, mock.Anything).Return(&domain.CommunityGoal{ID: "g4", TierNumber: 4}, nil)
	created, err := svc.CreateGoal(context.Background(), domain.CommunityGoal{TierNumber: 4, TargetSales: 5000, RewardName: "Diamond"})
	require.NoError(t, err)
	assert.Equal(t, "g4", created.ID)
}

func TestUpdateAndDeleteGoal(t *testing.T) {
	api := new(MockAPI)
	api.On("ListCommunityGoals", mock.Anything).Return(goals(), nil)
	api.On("UpdateCommunityGoal", mock.Anything, "g2", mock.Anything).Return(&domain.CommunityGoal{ID: "g2", TierNumber: 2}, nil)
	svc := newTestService(api)

	_, err := svc.UpdateGoal(context.Background(), "g2", domain.CommunityGoal{TierNumber: 2, TargetSales: 800, RewardName: "Silver"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteGoal(context.Background(), "g2", false), domain.ErrConfirmationRequired)
	api.AssertNotCalled(t, "DeleteCommunityGoal", mock.Anything, mock.Anything)

	api.On("DeleteCommunityGoal", mock.Anything, "g2").Return(nil)
	require.NoError(t, svc.DeleteGoal(context.Background(), "g2", true))
}

func TestListGoals_SortedByTier(t *testing.T) {
	api := new(MockAPI)
	api.On("ListCommunityGoals", mock.Anything).Return(goals(), nil)

	list, err := newTestService(api).ListGoals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].TierNumber, list[1].TierNumber, list[2].TierNumber})
}
