package domain

import "time"

// FounderPack is the one-time purchasable bundle tied to community sales milestones
type FounderPack struct {
	ID             string     `json:"id,omitempty"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	PriceCents     int        `json:"price_cents"`
	Currency       string     `json:"currency"`
	IsAvailable    bool       `json:"is_available"`
	AvailableUntil *time.Time `json:"available_until,omitempty"`
	Contents       []PackItem `json:"contents"`
}

// PackItem is one entry of a founder pack's contents
type PackItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CommunityGoal is a sales-count threshold unlocking a shared reward tier
type CommunityGoal struct {
	ID                string     `json:"id,omitempty"`
	TierNumber        int        `json:"tier_number"`
	TargetSales       int        `json:"target_sales"`
	CurrentSales      int        `json:"current_sales"`
	RewardName        string     `json:"reward_name"`
	RewardDescription string     `json:"reward_description"`
	RewardImageURL    string     `json:"reward_image_url,omitempty"`
	IsUnlocked        bool       `json:"is_unlocked"`
	UnlockedAt        *time.Time `json:"unlocked_at,omitempty"`
}

// GoalsStatus is the community-wide sales progress
type GoalsStatus struct {
	TotalSales int             `json:"total_sales"`
	Goals      []CommunityGoal `json:"goals"`
}

// UserPackStatus reports whether a user bought the pack and which tiers they claimed
type UserPackStatus struct {
	UserID       string     `json:"user_id"`
	HasPurchased bool       `json:"has_purchased"`
	PurchasedAt  *time.Time `json:"purchased_at,omitempty"`
	ClaimedTiers []int      `json:"claimed_tiers"`
}
