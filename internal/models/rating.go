package models

import "time"

// Rating is one user's score for one dish. Date comes from the database clock
// when the row is inserted and is never taken from the client.
type Rating struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DishID      uint      `gorm:"not null;index" json:"dish_id"`
	Rating      int       `gorm:"not null;index;check:rating BETWEEN 1 AND 5" json:"rating"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Description *string   `json:"description"`
	Photo       *string   `json:"photo"`
	Date        time.Time `gorm:"column:date;not null;default:CURRENT_TIMESTAMP;index" json:"date"`

	Dish *Dish `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"-"`
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// RatingInput is the create/update payload for a rating.
type RatingInput struct {
	DishID      uint    `json:"dish_id"`
	Rating      int     `json:"rating"`
	UserID      uint    `json:"user_id"`
	Description *string `json:"description"`
	Photo       *string `json:"photo"`
}

// ToRating builds an unsaved Rating from the input.
func (in RatingInput) ToRating() Rating {
	return Rating{
		DishID:      in.DishID,
		Rating:      in.Rating,
		UserID:      in.UserID,
		Description: in.Description,
		Photo:       in.Photo,
	}
}
