package countdown

import (
	"fmt"
	"sort"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// Messages used in reward row validation
const (
	MsgRewardMissing      = "reward is missing"
	MsgRewardTypeRequired = "reward type is required"
	MsgRewardTypeUnknown  = "unknown reward type"
	MsgAmountRequired     = "amount is required"
	MsgRewardIDRequired   = "reward id is required"
	MsgDuplicateDay       = "duplicate day"
)

// DayField names the form field group of one reward row, e.g. "day 3".
func DayField(day int) string {
	return fmt.Sprintf("day %d", day)
}

// EmptyRewards returns the seven blank rows of a new event.
func EmptyRewards() []domain.DailyReward {
	rows := make([]domain.DailyReward, domain.CountdownDays)
	for i := range rows {
		rows[i].Day = i + 1
	}
	return rows
}

// NormalizeRewards returns exactly seven rows ordered by day, placing each
// known row on its day and leaving missing days blank. Rows outside 1..7 are dropped.
func NormalizeRewards(rewards []domain.DailyReward) []domain.DailyReward {
	rows := EmptyRewards()
	for _, r := range rewards {
		if r.Day >= 1 && r.Day <= domain.CountdownDays {
			rows[r.Day-1] = r
		}
	}
	return rows
}

// SortRewards returns a copy of rewards ordered by day.
func SortRewards(rewards []domain.DailyReward) []domain.DailyReward {
	out := make([]domain.DailyReward, len(rewards))
	copy(out, rewards)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func isRewardType(t string) bool {
	for _, known := range domain.RewardTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ValidateRewards checks that there is exactly one complete row for every day
// 1..7 and records one message per incomplete day.
func ValidateRewards(rewards []domain.DailyReward) error {
	v := domain.NewValidationError()
	validateRewardsInto(v, rewards)
	return v.OrNil()
}

func validateRewardsInto(v *domain.ValidationError, rewards []domain.DailyReward) {
	byDay := make(map[int]domain.DailyReward, len(rewards))
	for _, r := range rewards {
		if r.Day < 1 || r.Day > domain.CountdownDays {
			v.Add("rewards", fmt.Sprintf("day %d is outside 1..%d", r.Day, domain.CountdownDays))
			continue
		}
		if _, dup := byDay[r.Day]; dup {
			v.Add(DayField(r.Day), MsgDuplicateDay)
			continue
		}
		byDay[r.Day] = r
	}

	for day := 1; day <= domain.CountdownDays; day++ {
		r, ok := byDay[day]
		if !ok {
			v.Add(DayField(day), MsgRewardMissing)
			continue
		}
		if msg := rowProblem(r); msg != "" {
			v.Add(DayField(day), msg)
		}
	}
}

func rowProblem(r domain.DailyReward) string {
	switch {
	case r.RewardType == "":
		return MsgRewardTypeRequired
	case !isRewardType(r.RewardType):
		return MsgRewardTypeUnknown
	case r.RewardType == domain.RewardTypeCurrency && r.Amount <= 0:
		return MsgAmountRequired
	case r.RewardType != domain.RewardTypeCurrency && r.RewardID == "":
		return MsgRewardIDRequired
	}
	return ""
}
