package models

import "time"

// Meal is one recorded meal, owned by exactly one user.
//
// Seq is the insertion-order key: listings are ordered by it, and the
// summary's streak computation depends on that order. It never leaves
// the process; the public identity is the uuid ID.
type Meal struct {
	Seq         uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID          string    `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	UserID      string    `gorm:"type:uuid;index;not null" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	IsOnDiet    bool      `json:"is_on_diet"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
