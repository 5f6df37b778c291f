package models

import (
	"encoding/json"
	"fmt"
)

// DietaryRestriction is one tag from the closed set of dietary labels a dish can carry.
type DietaryRestriction string

// Dietary restriction tags. The string value is both the JSON spelling and the
// tag written by the column codec.
const (
	DietaryVegetarian DietaryRestriction = "Vegetarian"
	DietaryVegan      DietaryRestriction = "Vegan"
	DietaryGlutenFree DietaryRestriction = "GlutenFree"
	DietaryDairyFree  DietaryRestriction = "DairyFree"
	DietaryNutFree    DietaryRestriction = "NutFree"
	DietaryHalal      DietaryRestriction = "Halal"
	DietaryKosher     DietaryRestriction = "Kosher"
	DietaryLowCarb    DietaryRestriction = "LowCarb"
	DietaryKeto       DietaryRestriction = "Keto"
	DietaryNone       DietaryRestriction = "None"
)

// AllDietaryRestrictions lists every restriction tag in declaration order.
var AllDietaryRestrictions = []DietaryRestriction{
	DietaryVegetarian,
	DietaryVegan,
	DietaryGlutenFree,
	DietaryDairyFree,
	DietaryNutFree,
	DietaryHalal,
	DietaryKosher,
	DietaryLowCarb,
	DietaryKeto,
	DietaryNone,
}

// Valid reports whether r is a member of the closed set.
func (r DietaryRestriction) Valid() bool {
	for _, known := range AllDietaryRestrictions {
		if r == known {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects tags outside the closed set.
func (r *DietaryRestriction) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("dietary restriction must be a string: %w", err)
	}
	if !DietaryRestriction(tag).Valid() {
		return fmt.Errorf("unknown dietary restriction %q", tag)
	}
	*r = DietaryRestriction(tag)
	return nil
}

// DishCategory is the single menu section a dish belongs to.
type DishCategory string

const (
	CategoryWokWithNoodles DishCategory = "WokWithNoodles"
	CategorySpecialDish    DishCategory = "SpecialDish"
	CategoryStew           DishCategory = "Stew"
	CategoryWokWithRice    DishCategory = "WokWithRice"
	CategoryRamen          DishCategory = "Ramen"
	CategoryKidsMenu       DishCategory = "KidsMenu"
	CategorySideOrder      DishCategory = "SideOrder"
)

// AllDishCategories lists every category in declaration order.
var AllDishCategories = []DishCategory{
	CategoryWokWithNoodles,
	CategorySpecialDish,
	CategoryStew,
	CategoryWokWithRice,
	CategoryRamen,
	CategoryKidsMenu,
	CategorySideOrder,
}

// Valid reports whether c is a member of the closed set.
func (c DishCategory) Valid() bool {
	for _, known := range AllDishCategories {
		if c == known {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects categories outside the closed set.
func (c *DishCategory) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("category must be a string: %w", err)
	}
	if !DishCategory(tag).Valid() {
		return fmt.Errorf("unknown dish category %q", tag)
	}
	*c = DishCategory(tag)
	return nil
}

// DietaryRestrictions is the ordered restriction list of a dish. It is stored
// in a single text column through the v1 codec.
type DietaryRestrictions []DietaryRestriction

// MarshalJSON always emits an array, never null.
func (l DietaryRestrictions) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]DietaryRestriction(l))
}

// Dish is a menu entry.
type Dish struct {
	ID                  uint                `gorm:"primaryKey" json:"id"`
	Nr                  int                 `gorm:"not null;index" json:"nr"`
	Name                string              `gorm:"not null" json:"name"`
	Description         string              `gorm:"not null" json:"description"`
	PriceKr             int                 `gorm:"not null;check:price_kr >= 0" json:"price_kr"`
	DietaryRestrictions DietaryRestrictions `gorm:"not null" json:"dietary_restrictions"`
	Category            DishCategory        `gorm:"not null;index" json:"category"`
}

// DishInput is the create/update payload for a dish.
type DishInput struct {
	Nr                  int                 `json:"nr"`
	Name                string              `json:"name"`
	Description         string              `json:"description"`
	PriceKr             int                 `json:"price_kr"`
	DietaryRestrictions DietaryRestrictions `json:"dietary_restrictions"`
	Category            DishCategory        `json:"category"`
}

// ToDish builds an unsaved Dish from the input.
func (in DishInput) ToDish() Dish {
	restrictions := in.DietaryRestrictions
	if restrictions == nil {
		restrictions = DietaryRestrictions{}
	}
	return Dish{
		Nr:                  in.Nr,
		Name:                in.Name,
		Description:         in.Description,
		PriceKr:             in.PriceKr,
		DietaryRestrictions: restrictions,
		Category:            in.Category,
	}
}
