package domain

import "time"

// CountdownDays is the number of daily rewards every countdown event carries
const CountdownDays = 7

// Reward type values accepted by the countdown API
const (
	RewardTypeCurrency = "currency"
	RewardTypeItem     = "item"
	RewardTypeCosmetic = "cosmetic"
	RewardTypeBundle   = "bundle"
)

// RewardTypes lists reward types in display order
var RewardTypes = []string{RewardTypeCurrency, RewardTypeItem, RewardTypeCosmetic, RewardTypeBundle}

// CountdownEvent is a limited-time event that hands out one reward per day
type CountdownEvent struct {
	ID          string        `json:"id,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	IsActive    bool          `json:"is_active"`
	Rewards     []DailyReward `json:"rewards"`
	CreatedAt   time.Time     `json:"created_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at,omitempty"`
}

// DailyReward is the reward granted on one day of a countdown event
type DailyReward struct {
	Day         int    `json:"day"`
	RewardType  string `json:"reward_type"`
	RewardID    string `json:"reward_id,omitempty"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}
