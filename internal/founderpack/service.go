package founderpack

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// API is the part of the promo API client this package needs
type API interface {
	GetFounderPack(ctx context.Context) (*domain.FounderPack, error)
	UpdateFounderPack(ctx context.Context, pack domain.FounderPack) (*domain.FounderPack, error)
	GetUserPackStatus(ctx context.Context, userID string) (*domain.UserPackStatus, error)
	GetGoalsStatus(ctx context.Context) (*domain.GoalsStatus, error)
	ListCommunityGoals(ctx context.Context) ([]domain.CommunityGoal, error)
	CreateCommunityGoal(ctx context.Context, goal domain.CommunityGoal) (*domain.CommunityGoal, error)
	UpdateCommunityGoal(ctx context.Context, id string, goal domain.CommunityGoal) (*domain.CommunityGoal, error)
	DeleteCommunityGoal(ctx context.Context, id string) error
}

// Overview is everything the founder pack page shows
type Overview struct {
	Pack       *domain.FounderPack    `json:"pack"`
	UserStatus *domain.UserPackStatus `json:"user_status,omitempty"`
	Goals      *domain.GoalsStatus    `json:"goals"`
	Progress   []GoalProgress         `json:"progress"`
	Next       *GoalProgress          `json:"next_goal,omitempty"`
}

// Service defines founder pack and community goal operations
type Service interface {
	Overview(ctx context.Context, userID string) (*Overview, error)
	UpdatePack(ctx context.Context, pack domain.FounderPack) (*domain.FounderPack, error)
	ListGoals(ctx context.Context) ([]domain.CommunityGoal, error)
	CreateGoal(ctx context.Context, goal domain.CommunityGoal) (*domain.CommunityGoal, error)
	UpdateGoal(ctx context.Context, id string, goal domain.CommunityGoal) (*domain.CommunityGoal, error)
	DeleteGoal(ctx context.Context, id string, confirmed bool) error
}

type service struct {
	api       API
	publisher *event.Publisher
}

// NewService creates a new founder pack service
func NewService(api API, publisher *event.Publisher) Service {
	return &service{api: api, publisher: publisher}
}

// Overview loads pack, user status and goals status concurrently. Any failure fails the page.
// The user status is skipped when userID is empty.
func (s *service) Overview(ctx context.Context, userID string) (*Overview, error) {
	var ov Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		pack, err := s.api.GetFounderPack(gctx)
		if err != nil {
			return fmt.Errorf("failed to load founder pack: %w", err)
		}
		ov.Pack = pack
		return nil
	})
	if userID = strings.TrimSpace(userID); userID != "" {
		g.Go(func() error {
			status, err := s.api.GetUserPackStatus(gctx, userID)
			if err != nil {
				return fmt.Errorf("failed to load pack status for %s: %w", userID, err)
			}
			ov.UserStatus = status
			return nil
		})
	}
	g.Go(func() error {
		goals, err := s.api.GetGoalsStatus(gctx)
		if err != nil {
			return fmt.Errorf("failed to load goals status: %w", err)
		}
		ov.Goals = goals
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Warn("Founder pack overview failed", "error", err)
		return nil, err
	}

	if ov.Goals == nil {
		ov.Goals = &domain.GoalsStatus{}
	}
	ov.Progress = TrackProgress(ov.Goals.Goals, ov.Goals.TotalSales)
	ov.Next = NextGoal(ov.Progress)
	return &ov, nil
}

// ValidatePack checks the pack form
func ValidatePack(pack domain.FounderPack) error {
	v := domain.NewValidationError()
	if strings.TrimSpace(pack.Name) == "" {
		v.Add("name", "name is required")
	}
	if pack.PriceCents < 0 {
		v.Add("price_cents", "price cannot be negative")
	}
	if len(strings.TrimSpace(pack.Currency)) != 3 {
		v.Add("currency", "currency must be a 3-letter code")
	}
	for i, item := range pack.Contents {
		field := fmt.Sprintf("contents %d", i+1)
		if strings.TrimSpace(item.ItemID) == "" {
			v.Add(field, "item id is required")
		} else if item.Quantity < 1 {
			v.Add(field, "quantity must be 1 or higher")
		}
	}
	return v.OrNil()
}

func (s *service) UpdatePack(ctx context.Context, pack domain.FounderPack) (*domain.FounderPack, error) {
	pack.Currency = strings.ToUpper(strings.TrimSpace(pack.Currency))
	if err := ValidatePack(pack); err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateFounderPack(ctx, pack)
	if err != nil {
		return nil, fmt.Errorf("failed to update founder pack: %w", err)
	}

	s.publisher.Publish(ctx, domain.EventTypeFounderPackUpdated, domain.ActorFromContext(ctx),
		domain.EntityFounderPack, updated.ID, updated.Name)
	return updated, nil
}

// ListGoals returns the goals ordered by tier
func (s *service) ListGoals(ctx context.Context) ([]domain.CommunityGoal, error) {
	goals, err := s.api.ListCommunityGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list community goals: %w", err)
	}
	return sortByTier(goals), nil
}

func (s *service) CreateGoal(ctx context.Context, goal domain.CommunityGoal) (*domain.CommunityGoal, error) {
	goal.ID = ""
	if err := s.checkAgainstExisting(ctx, goal); err != nil {
		return nil, err
	}

	created, err := s.api.CreateCommunityGoal(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create community goal: %w", err)
	}

	s.publisher.Publish(ctx, domain.EventTypeGoalCreated, domain.ActorFromContext(ctx),
		domain.EntityCommunityGoal, created.ID, fmt.Sprintf("tier %d", created.TierNumber))
	return created, nil
}

func (s *service) UpdateGoal(ctx context.Context, id string, goal domain.CommunityGoal) (*domain.CommunityGoal, error) {
	goal.ID = id
	if err := s.checkAgainstExisting(ctx, goal); err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateCommunityGoal(ctx, id, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to update community goal %s: %w", id, err)
	}

	s.publisher.Publish(ctx, domain.EventTypeGoalUpdated, domain.ActorFromContext(ctx),
		domain.EntityCommunityGoal, id, fmt.Sprintf("tier %d", updated.TierNumber))
	return updated, nil
}

func (s *service) DeleteGoal(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := s.api.DeleteCommunityGoal(ctx, id); err != nil {
		return fmt.Errorf("failed to delete community goal %s: %w", id, err)
	}

	s.publisher.Publish(ctx, domain.EventTypeGoalDeleted, domain.ActorFromContext(ctx),
		domain.EntityCommunityGoal, id, "")
	return nil
}

func (s *service) checkAgainstExisting(ctx context.Context, goal domain.CommunityGoal) error {
	if err := ValidateGoal(goal); err != nil {
		return err
	}
	existing, err := s.api.ListCommunityGoals(ctx)
	if err != nil {
		return fmt.Errorf("failed to list community goals: %w", err)
	}
	return ValidateGoalSet(existing, goal)
}
