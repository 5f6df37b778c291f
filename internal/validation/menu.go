// Package validation holds the value checks applied to inputs before they
// reach the store.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"yayayum/internal/models"
)

const (
	MinRating         = 1
	MaxRating         = 5
	MaxUsernameLength = 64
)

// ValidateRatingInput checks the score bounds. Dish and user existence are left
// to the foreign keys.
func ValidateRatingInput(in models.RatingInput) error {
	if in.Rating < MinRating || in.Rating > MaxRating {
		return models.NewValidationError("rating out of range")
	}
	return nil
}

// ValidateDishInput checks the dish fields that JSON decoding cannot.
func ValidateDishInput(in models.DishInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return models.NewValidationError("name is required")
	}
	if in.PriceKr < 0 {
		return models.NewValidationError("price_kr must not be negative")
	}
	if !in.Category.Valid() {
		return models.NewValidationError(fmt.Sprintf("unknown dish category %q", in.Category))
	}
	for _, r := range in.DietaryRestrictions {
		if !r.Valid() {
			return models.NewValidationError(fmt.Sprintf("unknown dietary restriction %q", r))
		}
	}
	return nil
}

// ValidateUserInput checks the username after trimming.
func ValidateUserInput(in models.UserInput) error {
	name := strings.TrimSpace(in.Username)
	if name == "" {
		return models.NewValidationError("username is required")
	}
	if utf8.RuneCountInString(name) > MaxUsernameLength {
		return models.NewValidationError(fmt.Sprintf("username must be at most %d characters", MaxUsernameLength))
	}
	return nil
}
