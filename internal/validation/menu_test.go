package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"yayayum/internal/models"
)

func TestValidateRatingInput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		rating  int
		wantErr bool
	}{
		{"Zero", 0, true},
		{"Lower Bound", 1, false},
		{"Middle", 3, false},
		{"Upper Bound", 5, false},
		{"Six", 6, true},
		{"Negative", -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRatingInput(models.RatingInput{DishID: 1, UserID: 1, Rating: tt.rating})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, models.KindValidation, models.KindOf(err))
				assert.Equal(t, "rating out of range", err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDishInput(t *testing.T) {
	t.Parallel()
	valid := models.DishInput{
		Nr:                  12,
		Name:                "Pad Thai",
		PriceKr:             120,
		DietaryRestrictions: models.DietaryRestrictions{models.DietaryVegetarian},
		Category:            models.CategoryWokWithNoodles,
	}

	tests := []struct {
		name    string
		mutate  func(*models.DishInput)
		wantErr bool
	}{
		{"Valid", func(*models.DishInput) {}, false},
		{"Free Dish", func(in *models.DishInput) { in.PriceKr = 0 }, false},
		{"Nil Restrictions", func(in *models.DishInput) { in.DietaryRestrictions = nil }, false},
		{"Blank Name", func(in *models.DishInput) { in.Name = "   " }, true},
		{"Negative Price", func(in *models.DishInput) { in.PriceKr = -1 }, true},
		{"Missing Category", func(in *models.DishInput) { in.Category = "" }, true},
		{"Unknown Restriction", func(in *models.DishInput) {
			in.DietaryRestrictions = models.DietaryRestrictions{"Paleo"}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := ValidateDishInput(in)
			if tt.wantErr {
				assert.Equal(t, models.KindValidation, models.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUserInput(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateUserInput(models.UserInput{Username: "mai"}))
	assert.NoError(t, ValidateUserInput(models.UserInput{Username: strings.Repeat("å", MaxUsernameLength)}))
	assert.Error(t, ValidateUserInput(models.UserInput{Username: " \t"}))
	assert.Error(t, ValidateUserInput(models.UserInput{Username: strings.Repeat("a", MaxUsernameLength+1)}))
}
