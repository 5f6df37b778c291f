// Package models contains the entities, wire inputs and error taxonomy of the
// menu service.
package models

import "strings"

// User is a diner who can rate dishes.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null" json:"username"`
}

// UserInput is the create/update payload for a user.
type UserInput struct {
	Username string `json:"username"`
}

// ToUser builds an unsaved User from the input.
func (in UserInput) ToUser() User {
	return User{Username: strings.TrimSpace(in.Username)}
}
