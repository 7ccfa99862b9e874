package models

import "time"

type PortfolioImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PhotographerID uint         `gorm:"not null" json:"photographer_id"`
	Photographer   Photographer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Image   string `gorm:"size:255;not null" json:"image"`
	Caption string `gorm:"size:200" json:"caption"`

	CreatedAt time.Time `json:"created_at"`
}
