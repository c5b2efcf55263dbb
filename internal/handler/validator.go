package handler

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("platform", oneOfOrEmpty(domain.PlatformTwitch, domain.PlatformYoutube,
		domain.PlatformDiscord, domain.PlatformWeb))
	_ = v.RegisterValidation("rewardtype", oneOfOrEmpty(domain.RewardTypes...))
	_ = v.RegisterValidation("imagecategory", oneOfOrEmpty(domain.ImageCategories...))
	_ = v.RegisterValidation("rarity", oneOfOrEmpty(domain.Rarities...))

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by the JSON path of the field, e.g. "rewards[2].amount".
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := fieldPath(e.Namespace())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "platform":
			errs[field] = "Invalid platform"
		case "rewardtype":
			errs[field] = "Invalid reward type"
		case "imagecategory":
			errs[field] = "Invalid image category"
		case "rarity":
			errs[field] = "Invalid rarity"
		case "iso4217":
			errs[field] = "Must be a three-letter currency code"
		case "url":
			errs[field] = "Must be a valid URL"
		case "gtfield":
			errs[field] = "Must be after the start time"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// fieldPath strips the top-level struct name from a validator namespace
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// oneOfOrEmpty accepts an empty value (left to 'required') or one of allowed, case-insensitively
func oneOfOrEmpty(allowed ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := strings.ToLower(fl.Field().String())
		if value == "" {
			return true
		}
		return slices.Contains(allowed, value)
	}
}
