package models

import "time"

type PhotographerTeam struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PhotographerID uint         `gorm:"not null" json:"photographer_id"`
	Photographer   Photographer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name string `gorm:"size:80;not null" json:"name"`
	Role string `gorm:"size:80" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
