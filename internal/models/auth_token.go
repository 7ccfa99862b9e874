package models

import "time"

// AuthToken is the opaque bearer token issued at signup/login.
// One per user, fetched idempotently and never rotated.
type AuthToken struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Key string `gorm:"size:64;uniqueIndex;not null" json:"key"`

	CreatedAt time.Time `json:"created_at"`
}
