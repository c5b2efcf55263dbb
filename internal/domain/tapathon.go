package domain

import "time"

// Supported platforms for tap records
const (
	PlatformTwitch  = "twitch"
	PlatformYoutube = "youtube"
	PlatformDiscord = "discord"
	PlatformWeb     = "web"
)

// Reward rarity values
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Rarities lists rarities from lowest to highest
var Rarities = []string{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// TapRecord is one batch of taps submitted by a user
type TapRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Platform  string    `json:"platform"`
	TapCount  int       `json:"tap_count"`
	CreatedAt time.Time `json:"created_at"`
}

// TapGoal is a community tap target for the tapathon
type TapGoal struct {
	ID             string    `json:"id,omitempty"`
	Name           string    `json:"name"`
	TargetTaps     int64     `json:"target_taps"`
	CurrentTaps    int64     `json:"current_taps"`
	RewardCategory string    `json:"reward_category"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	IsActive       bool      `json:"is_active"`
}

// TapReward is a reward record earned by a user during the tapathon
type TapReward struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Rarity    string     `json:"rarity"`
	Claimed   bool       `json:"claimed"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TapStats aggregates a set of tap records
type TapStats struct {
	TotalTaps   int64            `json:"total_taps"`
	Records     int              `json:"records"`
	UniqueUsers int              `json:"unique_users"`
	ByPlatform  map[string]int64 `json:"by_platform"`
}
