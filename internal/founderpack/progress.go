package founderpack

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// GoalProgress is one row of the community progress tracker.
type GoalProgress struct {
	Goal      domain.CommunityGoal `json:"goal"`
	Percent   int                  `json:"percent"`
	Remaining int                  `json:"remaining"`
	Reached   bool                 `json:"reached"`
}

// TrackProgress computes progress of every goal against totalSales, ordered by tier.
func TrackProgress(goals []domain.CommunityGoal, totalSales int) []GoalProgress {
	sorted := sortByTier(goals)
	out := make([]GoalProgress, 0, len(sorted))
	for _, g := range sorted {
		out = append(out, progressOf(g, totalSales))
	}
	return out
}

func progressOf(g domain.CommunityGoal, sales int) GoalProgress {
	p := GoalProgress{Goal: g}
	if sales < 0 {
		sales = 0
	}
	if g.TargetSales <= 0 {
		p.Percent = 100
		p.Reached = true
		return p
	}

	p.Percent = sales * 100 / g.TargetSales
	if p.Percent > 100 {
		p.Percent = 100
	}
	p.Remaining = g.TargetSales - sales
	if p.Remaining < 0 {
		p.Remaining = 0
	}
	p.Reached = sales >= g.TargetSales || g.IsUnlocked
	if p.Reached {
		p.Remaining = 0
	}
	return p
}

// NextGoal returns the lowest tier not yet reached, or nil when all are reached.
func NextGoal(progress []GoalProgress) *GoalProgress {
	var next *GoalProgress
	for i := range progress {
		p := &progress[i]
		if p.Reached {
			continue
		}
		if next == nil || p.Goal.TierNumber < next.Goal.TierNumber {
			next = p
		}
	}
	return next
}

func sortByTier(goals []domain.CommunityGoal) []domain.CommunityGoal {
	out := make([]domain.CommunityGoal, len(goals))
	copy(out, goals)
	sort.SliceStable(out, func(i, j int) bool { return out[i].TierNumber < out[j].TierNumber })
	return out
}

// ValidateGoal checks a single goal form.
func ValidateGoal(g domain.CommunityGoal) error {
	v := domain.NewValidationError()
	validateGoalInto(v, g)
	return v.OrNil()
}

func validateGoalInto(v *domain.ValidationError, g domain.CommunityGoal) {
	if g.TierNumber < 1 {
		v.Add("tier_number", "tier must be 1 or higher")
	}
	if g.TargetSales < 1 {
		v.Add("target_sales", "target sales must be 1 or higher")
	}
	if strings.TrimSpace(g.RewardName) == "" {
		v.Add("reward_name", "reward name is required")
	}
}

// ValidateGoalSet checks candidate against the existing goals: the tier must be
// unique and targets must strictly increase with tier. A goal with the same ID
// as candidate is replaced by it.
func ValidateGoalSet(existing []domain.CommunityGoal, candidate domain.CommunityGoal) error {
	v := domain.NewValidationError()
	validateGoalInto(v, candidate)
	if v.HasErrors() {
		return v
	}

	set := make([]domain.CommunityGoal, 0, len(existing)+1)
	for _, g := range existing {
		if candidate.ID != "" && g.ID == candidate.ID {
			continue
		}
		if g.TierNumber == candidate.TierNumber {
			v.Add("tier_number", fmt.Sprintf("tier %d already exists", candidate.TierNumber))
			return v
		}
		set = append(set, g)
	}
	set = append(set, candidate)

	sorted := sortByTier(set)
	for i, g := range sorted {
		if g.TierNumber != candidate.TierNumber {
			continue
		}
		if i > 0 && sorted[i-1].TargetSales >= g.TargetSales {
			prev := sorted[i-1]
			v.Add("target_sales", fmt.Sprintf("must be greater than tier %d target (%d)", prev.TierNumber, prev.TargetSales))
		}
		if i+1 < len(sorted) && sorted[i+1].TargetSales <= g.TargetSales {
			next := sorted[i+1]
			v.Add("target_sales", fmt.Sprintf("must be less than tier %d target (%d)", next.TierNumber, next.TargetSales))
		}
	}
	return v.OrNil()
}
