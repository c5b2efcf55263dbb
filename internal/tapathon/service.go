package tapathon

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/listing"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
	"github.com/osse101/PromoAdmin_Go/internal/metrics"
)

// BulkConcurrency caps parallel deletes during a bulk action
const BulkConcurrency = 4

// List names used for metrics
const (
	listTaps    = "taps"
	listGoals   = "tap_goals"
	listRewards = "tap_rewards"
)

// API is the part of the promo API client this package needs
type API interface {
	ListTaps(ctx context.Context, limit, offset int) ([]domain.TapRecord, error)
	DeleteTap(ctx context.Context, id string) error
	ListTapGoals(ctx context.Context, limit, offset int) ([]domain.TapGoal, error)
	CreateTapGoal(ctx context.Context, goal domain.TapGoal) (*domain.TapGoal, error)
	UpdateTapGoal(ctx context.Context, id string, goal domain.TapGoal) (*domain.TapGoal, error)
	DeleteTapGoal(ctx context.Context, id string) error
	ListTapRewards(ctx context.Context, limit, offset int) ([]domain.TapReward, error)
	UpdateTapReward(ctx context.Context, id string, reward domain.TapReward) (*domain.TapReward, error)
	DeleteTapReward(ctx context.Context, id string) error
}

// Service defines tapathon operations
type Service interface {
	AllTaps(ctx context.Context) ([]domain.TapRecord, error)
	DeleteTaps(ctx context.Context, ids []string, confirmed bool) (listing.BulkResult[string], error)

	AllGoals(ctx context.Context) ([]domain.TapGoal, error)
	CreateGoal(ctx context.Context, goal domain.TapGoal) (*domain.TapGoal, error)
	UpdateGoal(ctx context.Context, id string, goal domain.TapGoal) (*domain.TapGoal, error)
	DeleteGoals(ctx context.Context, ids []string, confirmed bool) (listing.BulkResult[string], error)

	AllRewards(ctx context.Context) ([]domain.TapReward, error)
	SetRewardClaimed(ctx context.Context, id string, claimed bool) (*domain.TapReward, error)
	DeleteReward(ctx context.Context, id string, confirmed bool) error
}

type service struct {
	api       API
	batchSize int
	publisher *event.Publisher
	now       func() time.Time
}

// NewService creates a new tapathon service. Lists are loaded batchSize records per call.
func NewService(api API, batchSize int, publisher *event.Publisher) Service {
	if batchSize <= 0 {
		batchSize = domain.DefaultBatchSize
	}
	return &service{
		api:       api,
		batchSize: batchSize,
		publisher: publisher,
		now:       time.Now,
	}
}

func fetchAll[T any](ctx context.Context, list string, batchSize int, fetch listing.PageFunc[T]) ([]T, error) {
	items, pages, err := listing.FetchAllCounted(ctx, batchSize, fetch)
	metrics.FetchAllPages.WithLabelValues(list).Observe(float64(pages))
	if err != nil {
		logger.FromContext(ctx).Warn("List load failed", "list", list, "pages", pages, "error", err)
		return nil, fmt.Errorf("failed to load %s: %w", list, err)
	}
	return items, nil
}

// AllTaps loads every tap record, newest first
func (s *service) AllTaps(ctx context.Context) ([]domain.TapRecord, error) {
	taps, err := fetchAll(ctx, listTaps, s.batchSize, s.api.ListTaps)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(taps, func(i, j int) bool { return taps[i].CreatedAt.After(taps[j].CreatedAt) })
	return taps, nil
}

func (s *service) DeleteTaps(ctx context.Context, ids []string, confirmed bool) (listing.BulkResult[string], error) {
	return s.bulkDelete(ctx, ids, confirmed, domain.EventTypeTapsDeleted, domain.EntityTapRecord, s.api.DeleteTap)
}

// AllGoals loads every tap goal, soonest start first
func (s *service) AllGoals(ctx context.Context) ([]domain.TapGoal, error) {
	goals, err := fetchAll(ctx, listGoals, s.batchSize, s.api.ListTapGoals)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(goals, func(i, j int) bool { return goals[i].StartsAt.Before(goals[j].StartsAt) })
	return goals, nil
}

func (s *service) CreateGoal(ctx context.Context, goal domain.TapGoal) (*domain.TapGoal, error) {
	goal.ID = ""
	goal.Name = strings.TrimSpace(goal.Name)
	if err := ValidateGoal(goal); err != nil {
		return nil, err
	}

	created, err := s.api.CreateTapGoal(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create tap goal: %w", err)
	}

	s.publisher.Publish(ctx, domain.EventTypeTapGoalCreated, domain.ActorFromContext(ctx),
		domain.EntityTapGoal, created.ID, created.Name)
	return created, nil
}

func (s *service) UpdateGoal(ctx context.Context, id string, goal domain.TapGoal) (*domain.TapGoal, error) {
	goal.ID = id
	goal.Name = strings.TrimSpace(goal.Name)
	if err := ValidateGoal(goal); err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateTapGoal(ctx, id, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to update tap goal %s: %w", id, err)
	}

	s.publisher.Publish(ctx, domain.EventTypeTapGoalUpdated, domain.ActorFromContext(ctx),
		domain.EntityTapGoal, id, updated.Name)
	return updated, nil
}

func (s *service) DeleteGoals(ctx context.Context, ids []string, confirmed bool) (listing.BulkResult[string], error) {
	return s.bulkDelete(ctx, ids, confirmed, domain.EventTypeTapGoalsDeleted, domain.EntityTapGoal, s.api.DeleteTapGoal)
}

// AllRewards loads every reward record, newest first
func (s *service) AllRewards(ctx context.Context) ([]domain.TapReward, error) {
	rewards, err := fetchAll(ctx, listRewards, s.batchSize, s.api.ListTapRewards)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rewards, func(i, j int) bool { return rewards[i].CreatedAt.After(rewards[j].CreatedAt) })
	return rewards, nil
}

// SetRewardClaimed marks a reward claimed or unclaimed with a full-object PUT.
// There is no single-reward endpoint, so the record is found in the full list.
func (s *service) SetRewardClaimed(ctx context.Context, id string, claimed bool) (*domain.TapReward, error) {
	rewards, err := s.AllRewards(ctx)
	if err != nil {
		return nil, err
	}

	var reward *domain.TapReward
	for i := range rewards {
		if rewards[i].ID == id {
			reward = &rewards[i]
			break
		}
	}
	if reward == nil {
		return nil, fmt.Errorf("%w: tap reward %s", domain.ErrNotFound, id)
	}

	reward.Claimed = claimed
	if claimed {
		now := s.now().UTC()
		reward.ClaimedAt = &now
	} else {
		reward.ClaimedAt = nil
	}

	updated, err := s.api.UpdateTapReward(ctx, id, *reward)
	if err != nil {
		return nil, fmt.Errorf("failed to update tap reward %s: %w", id, err)
	}

	summary := "unclaimed"
	if claimed {
		summary = "claimed"
	}
	s.publisher.Publish(ctx, domain.EventTypeTapRewardUpdated, domain.ActorFromContext(ctx),
		domain.EntityTapReward, id, summary)
	return updated, nil
}

func (s *service) DeleteReward(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := s.api.DeleteTapReward(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tap reward %s: %w", id, err)
	}

	s.publisher.Publish(ctx, domain.EventTypeTapRewardDeleted, domain.ActorFromContext(ctx),
		domain.EntityTapReward, id, "")
	return nil
}

// bulkDelete deletes every id. Individual failures are reported in the result, not as the error.
func (s *service) bulkDelete(ctx context.Context, ids []string, confirmed bool, action, entity string,
	del func(context.Context, string) error) (listing.BulkResult[string], error) {
	ids = listing.ParseSelection(ids)
	if len(ids) == 0 {
		return listing.BulkResult[string]{}, domain.ErrNothingSelected
	}
	if !confirmed {
		return listing.BulkResult[string]{}, domain.ErrConfirmationRequired
	}

	res := listing.BulkApply(ctx, ids, BulkConcurrency, del)

	metrics.BulkItems.WithLabelValues(action, metrics.OutcomeSucceeded).Add(float64(len(res.Succeeded)))
	metrics.BulkItems.WithLabelValues(action, metrics.OutcomeFailed).Add(float64(len(res.Failed)))

	log := logger.FromContext(ctx)
	log.Info("Bulk delete finished", "action", action, "succeeded", len(res.Succeeded), "failed", len(res.Failed))
	if !res.OK() {
		log.Warn("Bulk delete had failures", "action", action, "error", res.Err())
	}

	if len(res.Succeeded) > 0 {
		s.publisher.Publish(ctx, action, domain.ActorFromContext(ctx), entity,
			strings.Join(res.Succeeded, ","), fmt.Sprintf("%d deleted, %d failed", len(res.Succeeded), len(res.Failed)))
	}
	return res, nil
}
