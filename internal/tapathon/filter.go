package tapathon

import (
	"strings"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/listing"
)

// FilterTaps narrows taps by user id substring, platform and date range.
func FilterTaps(taps []domain.TapRecord, f domain.TapFilter) []domain.TapRecord {
	return listing.Filter(taps,
		func(t domain.TapRecord) bool { return listing.ContainsFold(t.UserID, f.UserID) },
		func(t domain.TapRecord) bool { return listing.Equals(t.Platform, f.Platform) },
		func(t domain.TapRecord) bool { return listing.Between(t.CreatedAt, f.From, f.To) },
	)
}

// FilterRewards narrows rewards by user id substring, category, rarity and claim state.
func FilterRewards(rewards []domain.TapReward, f domain.RewardFilter) []domain.TapReward {
	return listing.Filter(rewards,
		func(r domain.TapReward) bool { return listing.ContainsFold(r.UserID, f.UserID) },
		func(r domain.TapReward) bool { return listing.Equals(r.Category, f.Category) },
		func(r domain.TapReward) bool { return listing.Equals(r.Rarity, f.Rarity) },
		func(r domain.TapReward) bool {
			switch f.ClaimState {
			case domain.ClaimStateClaimed:
				return r.Claimed
			case domain.ClaimStateUnclaimed:
				return !r.Claimed
			}
			return true
		},
	)
}

// ComputeStats aggregates tap records.
func ComputeStats(taps []domain.TapRecord) domain.TapStats {
	stats := domain.TapStats{ByPlatform: make(map[string]int64)}
	users := make(map[string]struct{})
	for _, t := range taps {
		stats.TotalTaps += int64(t.TapCount)
		stats.Records++
		stats.ByPlatform[strings.ToLower(t.Platform)] += int64(t.TapCount)
		users[t.UserID] = struct{}{}
	}
	stats.UniqueUsers = len(users)
	return stats
}

// GoalPercent returns progress of a tap goal clamped to 0..100.
func GoalPercent(g domain.TapGoal) int {
	if g.TargetTaps <= 0 {
		return 100
	}
	if g.CurrentTaps <= 0 {
		return 0
	}
	p := g.CurrentTaps * 100 / g.TargetTaps
	if p > 100 {
		p = 100
	}
	return int(p)
}

// Categories returns the distinct reward categories in first-seen order, for filter dropdowns.
func Categories(rewards []domain.TapReward) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rewards {
		if r.Category == "" {
			continue
		}
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}

// ValidateGoal checks a tap goal form.
func ValidateGoal(g domain.TapGoal) error {
	v := domain.NewValidationError()
	if strings.TrimSpace(g.Name) == "" {
		v.Add("name", "name is required")
	}
	if g.TargetTaps < 1 {
		v.Add("target_taps", "target taps must be 1 or higher")
	}
	if g.CurrentTaps < 0 {
		v.Add("current_taps", "current taps cannot be negative")
	}
	if !g.StartsAt.IsZero() && !g.EndsAt.IsZero() && !g.EndsAt.After(g.StartsAt) {
		v.Add("ends_at", "end must be after start")
	}
	return v.OrNil()
}
