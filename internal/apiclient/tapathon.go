package apiclient

import (
	"context"
	"net/http"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

const (
	pathTaps       = "/tapathon/taps"
	pathTapGoals   = "/tapathon/goals"
	pathTapRewards = "/tapathon/rewards"
)

// ListTaps returns one page of tap records.
func (c *Client) ListTaps(ctx context.Context, limit, offset int) ([]domain.TapRecord, error) {
	var out []domain.TapRecord
	if err := c.doJSON(ctx, "tapathon.taps_list", http.MethodGet, pathTaps, pageQuery(limit, offset), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteTap removes one tap record.
func (c *Client) DeleteTap(ctx context.Context, id string) error {
	return c.doJSON(ctx, "tapathon.tap_delete", http.MethodDelete, idPath(pathTaps, id), nil, nil, nil)
}

// ListTapGoals returns one page of tap goals.
func (c *Client) ListTapGoals(ctx context.Context, limit, offset int) ([]domain.TapGoal, error) {
	var out []domain.TapGoal
	if err := c.doJSON(ctx, "tapathon.goals_list", http.MethodGet, pathTapGoals, pageQuery(limit, offset), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTapGoal adds a tap goal.
func (c *Client) CreateTapGoal(ctx context.Context, goal domain.TapGoal) (*domain.TapGoal, error) {
	var out domain.TapGoal
	if err := c.doJSON(ctx, "tapathon.goal_create", http.MethodPost, pathTapGoals, nil, goal, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTapGoal replaces a tap goal.
func (c *Client) UpdateTapGoal(ctx context.Context, id string, goal domain.TapGoal) (*domain.TapGoal, error) {
	var out domain.TapGoal
	if err := c.doJSON(ctx, "tapathon.goal_update", http.MethodPut, idPath(pathTapGoals, id), nil, goal, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTapGoal removes a tap goal.
func (c *Client) DeleteTapGoal(ctx context.Context, id string) error {
	return c.doJSON(ctx, "tapathon.goal_delete", http.MethodDelete, idPath(pathTapGoals, id), nil, nil, nil)
}

// ListTapRewards returns one page of tap reward records.
func (c *Client) ListTapRewards(ctx context.Context, limit, offset int) ([]domain.TapReward, error) {
	var out []domain.TapReward
	if err := c.doJSON(ctx, "tapathon.rewards_list", http.MethodGet, pathTapRewards, pageQuery(limit, offset), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateTapReward replaces a reward record.
func (c *Client) UpdateTapReward(ctx context.Context, id string, reward domain.TapReward) (*domain.TapReward, error) {
	var out domain.TapReward
	if err := c.doJSON(ctx, "tapathon.reward_update", http.MethodPut, idPath(pathTapRewards, id), nil, reward, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTapReward removes a reward record.
func (c *Client) DeleteTapReward(ctx context.Context, id string) error {
	return c.doJSON(ctx, "tapathon.reward_delete", http.MethodDelete, idPath(pathTapRewards, id), nil, nil, nil)
}
