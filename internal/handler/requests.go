package handler

import (
	"strings"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// CountdownRequest is the body for creating or replacing a countdown event.
// Per-day reward completeness is checked by the countdown service.
type CountdownRequest struct {
	Name        string          `json:"name" validate:"required,max=120"`
	Description string          `json:"description" validate:"max=2000"`
	StartTime   time.Time       `json:"start_time" validate:"required"`
	EndTime     time.Time       `json:"end_time" validate:"required,gtfield=StartTime"`
	IsActive    bool            `json:"is_active"`
	Rewards     []RewardRequest `json:"rewards" validate:"max=7,dive"`
}

// RewardRequest is one daily reward row
type RewardRequest struct {
	Day         int    `json:"day" validate:"min=1,max=7"`
	RewardType  string `json:"reward_type" validate:"rewardtype"`
	RewardID    string `json:"reward_id" validate:"max=100"`
	Amount      int    `json:"amount" validate:"min=0"`
	Description string `json:"description" validate:"max=500"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

func (r CountdownRequest) toDomain() domain.CountdownEvent {
	rewards := make([]domain.DailyReward, 0, len(r.Rewards))
	for _, rw := range r.Rewards {
		rewards = append(rewards, domain.DailyReward{
			Day:         rw.Day,
			RewardType:  strings.ToLower(rw.RewardType),
			RewardID:    strings.TrimSpace(rw.RewardID),
			Amount:      rw.Amount,
			Description: strings.TrimSpace(rw.Description),
			ImageURL:    strings.TrimSpace(rw.ImageURL),
		})
	}
	return domain.CountdownEvent{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		StartTime:   r.StartTime.UTC(),
		EndTime:     r.EndTime.UTC(),
		IsActive:    r.IsActive,
		Rewards:     rewards,
	}
}

// FounderPackRequest replaces the founder pack
type FounderPackRequest struct {
	Name           string            `json:"name" validate:"required,max=120"`
	Description    string            `json:"description" validate:"max=2000"`
	PriceCents     int               `json:"price_cents" validate:"min=0"`
	Currency       string            `json:"currency" validate:"required,iso4217"`
	IsAvailable    bool              `json:"is_available"`
	AvailableUntil *time.Time        `json:"available_until"`
	Contents       []PackItemRequest `json:"contents" validate:"dive"`
}

// PackItemRequest is one entry of the pack contents
type PackItemRequest struct {
	ItemID   string `json:"item_id" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=120"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

func (r FounderPackRequest) toDomain() domain.FounderPack {
	contents := make([]domain.PackItem, 0, len(r.Contents))
	for _, c := range r.Contents {
		contents = append(contents, domain.PackItem{
			ItemID:   strings.TrimSpace(c.ItemID),
			Name:     strings.TrimSpace(c.Name),
			Quantity: c.Quantity,
		})
	}
	pack := domain.FounderPack{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		PriceCents:  r.PriceCents,
		Currency:    strings.ToUpper(r.Currency),
		IsAvailable: r.IsAvailable,
		Contents:    contents,
	}
	if r.AvailableUntil != nil && !r.AvailableUntil.IsZero() {
		until := r.AvailableUntil.UTC()
		pack.AvailableUntil = &until
	}
	return pack
}

// CommunityGoalRequest creates or replaces a community goal tier
type CommunityGoalRequest struct {
	TierNumber        int    `json:"tier_number" validate:"min=1"`
	TargetSales       int    `json:"target_sales" validate:"min=1"`
	RewardName        string `json:"reward_name" validate:"required,max=120"`
	RewardDescription string `json:"reward_description" validate:"max=1000"`
	RewardImageURL    string `json:"reward_image_url" validate:"omitempty,url"`
}

func (r CommunityGoalRequest) toDomain() domain.CommunityGoal {
	return domain.CommunityGoal{
		TierNumber:        r.TierNumber,
		TargetSales:       r.TargetSales,
		RewardName:        strings.TrimSpace(r.RewardName),
		RewardDescription: strings.TrimSpace(r.RewardDescription),
		RewardImageURL:    strings.TrimSpace(r.RewardImageURL),
	}
}

// TapGoalRequest creates or replaces a tapathon goal
type TapGoalRequest struct {
	Name           string    `json:"name" validate:"required,max=120"`
	TargetTaps     int64     `json:"target_taps" validate:"min=1"`
	CurrentTaps    int64     `json:"current_taps" validate:"min=0"`
	RewardCategory string    `json:"reward_category" validate:"required,max=60"`
	StartsAt       time.Time `json:"starts_at" validate:"required"`
	EndsAt         time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	IsActive       bool      `json:"is_active"`
}

func (r TapGoalRequest) toDomain() domain.TapGoal {
	return domain.TapGoal{
		Name:           strings.TrimSpace(r.Name),
		TargetTaps:     r.TargetTaps,
		CurrentTaps:    r.CurrentTaps,
		RewardCategory: strings.TrimSpace(r.RewardCategory),
		StartsAt:       r.StartsAt.UTC(),
		EndsAt:         r.EndsAt.UTC(),
		IsActive:       r.IsActive,
	}
}

// BulkDeleteRequest names the rows of a bulk delete. Confirm must be true.
type BulkDeleteRequest struct {
	IDs     []string `json:"ids" validate:"max=1000,dive,max=100"`
	Confirm bool     `json:"confirm"`
}

// RewardClaimRequest marks a tap reward claimed or unclaimed
type RewardClaimRequest struct {
	Claimed bool `json:"claimed"`
}

// ImageMetadataRequest edits an image's category and alt text
type ImageMetadataRequest struct {
	Category string `json:"category" validate:"required,imagecategory"`
	AltText  string `json:"alt_text" validate:"max=300"`
}

// LoginRequest is the admin login body
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}
