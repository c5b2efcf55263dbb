package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

const (
	pathFounderPack     = "/founder-pack"
	pathFounderGoals    = "/founder-pack/goals"
	pathFounderGoalStat = "/founder-pack/goals/status"
	pathFounderUsers    = "/founder-pack/users"
)

// GetFounderPack returns the founder pack definition.
func (c *Client) GetFounderPack(ctx context.Context) (*domain.FounderPack, error) {
	var out domain.FounderPack
	if err := c.doJSON(ctx, "founder_pack.get", http.MethodGet, pathFounderPack, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFounderPack replaces the founder pack definition.
func (c *Client) UpdateFounderPack(ctx context.Context, pack domain.FounderPack) (*domain.FounderPack, error) {
	var out domain.FounderPack
	if err := c.doJSON(ctx, "founder_pack.update", http.MethodPut, pathFounderPack, nil, pack, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserPackStatus returns purchase and claim state for one user.
func (c *Client) GetUserPackStatus(ctx context.Context, userID string) (*domain.UserPackStatus, error) {
	var out domain.UserPackStatus
	path := pathFounderUsers + "/" + url.PathEscape(userID) + "/status"
	if err := c.doJSON(ctx, "founder_pack.user_status", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetGoalsStatus returns total sales and every goal with its unlock state.
func (c *Client) GetGoalsStatus(ctx context.Context) (*domain.GoalsStatus, error) {
	var out domain.GoalsStatus
	if err := c.doJSON(ctx, "founder_pack.goals_status", http.MethodGet, pathFounderGoalStat, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCommunityGoals returns the configured goals.
func (c *Client) ListCommunityGoals(ctx context.Context) ([]domain.CommunityGoal, error) {
	var out []domain.CommunityGoal
	if err := c.doJSON(ctx, "community_goal.list", http.MethodGet, pathFounderGoals, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCommunityGoal adds a goal tier.
func (c *Client) CreateCommunityGoal(ctx context.Context, goal domain.CommunityGoal) (*domain.CommunityGoal, error) {
	var out domain.CommunityGoal
	if err := c.doJSON(ctx, "community_goal.create", http.MethodPost, pathFounderGoals, nil, goal, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCommunityGoal replaces a goal tier.
func (c *Client) UpdateCommunityGoal(ctx context.Context, id string, goal domain.CommunityGoal) (*domain.CommunityGoal, error) {
	var out domain.CommunityGoal
	if err := c.doJSON(ctx, "community_goal.update", http.MethodPut, idPath(pathFounderGoals, id), nil, goal, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCommunityGoal removes a goal tier.
func (c *Client) DeleteCommunityGoal(ctx context.Context, id string) error {
	return c.doJSON(ctx, "community_goal.delete", http.MethodDelete, idPath(pathFounderGoals, id), nil, nil, nil)
}
