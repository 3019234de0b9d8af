package models

import "time"

// User is created once at registration and never changes afterwards.
// SessionID is the opaque token stored in the browser's session cookie.
type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID string    `gorm:"uniqueIndex;not null" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
