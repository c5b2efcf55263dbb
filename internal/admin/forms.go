package admin

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/countdown"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/formtime"
)

// Per-day reward row field prefixes, e.g. "amount_3"
const (
	rowRewardType  = "reward_type"
	rowRewardID    = "reward_id"
	rowAmount      = "amount"
	rowDescription = "description"
	rowImageURL    = "image_url"
)

func dayFieldName(prefix string, day int) string {
	return prefix + "_" + strconv.Itoa(day)
}

// formReader collects parse problems while reading typed values from a form
type formReader struct {
	r    *http.Request
	loc  *time.Location
	errs *domain.ValidationError
}

func newFormReader(r *http.Request, loc *time.Location) *formReader {
	return &formReader{r: r, loc: loc, errs: domain.NewValidationError()}
}

func (f *formReader) text(name string) string {
	return strings.TrimSpace(f.r.PostFormValue(name))
}

func (f *formReader) checkbox(name string) bool {
	v := f.r.PostFormValue(name)
	return v == "on" || v == "true" || v == "1"
}

// number reads an optional whole number, reporting bad input under field
func (f *formReader) number(name, field string) int {
	s := f.text(name)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f.errs.Add(field, MsgInvalidNumber)
		return 0
	}
	return n
}

func (f *formReader) number64(name string) int64 {
	s := f.text(name)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f.errs.Add(name, MsgInvalidNumber)
		return 0
	}
	return n
}

func (f *formReader) datetime(name string) time.Time {
	t, err := formtime.FromInputValue(f.r.PostFormValue(name), f.loc)
	if err != nil {
		f.errs.Add(name, MsgInvalidDateTime)
	}
	return t
}

func (f *formReader) optionalDatetime(name string) *time.Time {
	t := f.datetime(name)
	if t.IsZero() {
		return nil
	}
	return &t
}

// priceCents reads a decimal price such as "19.99"
func (f *formReader) priceCents(name string) int {
	s := f.text(name)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		f.errs.Add(name, MsgInvalidPrice)
		return 0
	}
	return int(math.Round(v * 100))
}

// countdownForm keeps the raw time inputs so a rejected submission is shown as typed
type countdownForm struct {
	ID          string
	Name        string
	Description string
	StartTime   string
	EndTime     string
	IsActive    bool
	Rewards     []domain.DailyReward
	RewardTypes []string
	Pictures    []domain.ImageAsset
}

func newCountdownForm(evt domain.CountdownEvent, loc *time.Location) *countdownForm {
	return &countdownForm{
		ID:          evt.ID,
		Name:        evt.Name,
		Description: evt.Description,
		StartTime:   formtime.ToInputValue(evt.StartTime, loc),
		EndTime:     formtime.ToInputValue(evt.EndTime, loc),
		IsActive:    evt.IsActive,
		Rewards:     countdown.NormalizeRewards(evt.Rewards),
		RewardTypes: domain.RewardTypes,
	}
}

// parseCountdownForm reads the event form with its seven reward rows
func parseCountdownForm(r *http.Request, loc *time.Location) (domain.CountdownEvent, *countdownForm, error) {
	f := newFormReader(r, loc)

	evt := domain.CountdownEvent{
		Name:        f.text("name"),
		Description: f.text("description"),
		StartTime:   f.datetime("start_time"),
		EndTime:     f.datetime("end_time"),
		IsActive:    f.checkbox("is_active"),
	}
	for day := 1; day <= domain.CountdownDays; day++ {
		evt.Rewards = append(evt.Rewards, domain.DailyReward{
			Day:         day,
			RewardType:  strings.ToLower(f.text(dayFieldName(rowRewardType, day))),
			RewardID:    f.text(dayFieldName(rowRewardID, day)),
			Amount:      f.number(dayFieldName(rowAmount, day), countdown.DayField(day)),
			Description: f.text(dayFieldName(rowDescription, day)),
			ImageURL:    f.text(dayFieldName(rowImageURL, day)),
		})
	}

	form := newCountdownForm(evt, loc)
	form.StartTime = f.text("start_time")
	form.EndTime = f.text("end_time")
	return evt, form, f.errs.OrNil()
}

// blankPackRows is how many empty content rows the pack form offers
const blankPackRows = 3

func parsePackForm(r *http.Request, loc *time.Location) (domain.FounderPack, error) {
	f := newFormReader(r, loc)

	pack := domain.FounderPack{
		ID:             f.text("id"),
		Name:           f.text("name"),
		Description:    f.text("description"),
		PriceCents:     f.priceCents("price"),
		Currency:       strings.ToUpper(f.text("currency")),
		IsAvailable:    f.checkbox("is_available"),
		AvailableUntil: f.optionalDatetime("available_until"),
	}

	ids, names, qtys := r.PostForm["item_id"], r.PostForm["item_name"], r.PostForm["item_quantity"]
	for i := range ids {
		item := domain.PackItem{ItemID: strings.TrimSpace(ids[i])}
		if i < len(names) {
			item.Name = strings.TrimSpace(names[i])
		}
		if i < len(qtys) && strings.TrimSpace(qtys[i]) != "" {
			n, err := strconv.Atoi(strings.TrimSpace(qtys[i]))
			if err != nil {
				f.errs.Add("contents["+strconv.Itoa(i)+"]", MsgInvalidNumber)
			}
			item.Quantity = n
		}
		if item.ItemID == "" && item.Name == "" && item.Quantity == 0 {
			continue
		}
		pack.Contents = append(pack.Contents, item)
	}
	return pack, f.errs.OrNil()
}

func parseGoalForm(r *http.Request) (domain.CommunityGoal, error) {
	f := newFormReader(r, time.UTC)
	goal := domain.CommunityGoal{
		TierNumber:        f.number("tier_number", "tier_number"),
		TargetSales:       f.number("target_sales", "target_sales"),
		CurrentSales:      f.number("current_sales", "current_sales"),
		RewardName:        f.text("reward_name"),
		RewardDescription: f.text("reward_description"),
		RewardImageURL:    f.text("reward_image_url"),
		IsUnlocked:        f.checkbox("is_unlocked"),
	}
	return goal, f.errs.OrNil()
}

func parseTapGoalForm(r *http.Request, loc *time.Location) (domain.TapGoal, error) {
	f := newFormReader(r, loc)
	goal := domain.TapGoal{
		Name:           f.text("name"),
		TargetTaps:     f.number64("target_taps"),
		CurrentTaps:    f.number64("current_taps"),
		RewardCategory: f.text("reward_category"),
		StartsAt:       f.datetime("starts_at"),
		EndsAt:         f.datetime("ends_at"),
		IsActive:       f.checkbox("is_active"),
	}
	return goal, f.errs.OrNil()
}

// isConfirmed checks the value set by the confirmation dialog
func isConfirmed(r *http.Request) bool {
	return strings.EqualFold(r.PostFormValue(FieldConfirm), domain.ConfirmValue)
}

// parseForm bounds and parses a urlencoded form body
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	return r.ParseForm()
}
