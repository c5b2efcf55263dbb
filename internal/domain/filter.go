package domain

import "time"

// Claim state filter values for tap rewards
const (
	ClaimStateAll       = ""
	ClaimStateClaimed   = "claimed"
	ClaimStateUnclaimed = "unclaimed"
)

// IsValidClaimState checks a claim-state filter value (empty means no filter)
func IsValidClaimState(state string) bool {
	return state == ClaimStateAll || state == ClaimStateClaimed || state == ClaimStateUnclaimed
}

// TapFilter narrows the tap record list
type TapFilter struct {
	UserID   string
	Platform string
	From     time.Time
	To       time.Time
}

// RewardFilter narrows the tap reward list
type RewardFilter struct {
	UserID     string
	Category   string
	Rarity     string
	ClaimState string
}
