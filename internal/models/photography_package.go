package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PhotographyPackage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PhotographerID uint         `gorm:"not null" json:"photographer_id"`
	Photographer   Photographer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	EventType   string          `gorm:"size:80" json:"event_type"`
	Price       decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`
	Description string          `gorm:"type:text" json:"description"`

	Duration     int    `gorm:"default:1" json:"duration"`      // hours
	DeliveryTime int    `gorm:"default:7" json:"delivery_time"` // days
	Includes     string `gorm:"type:text" json:"includes"`

	CreatedAt time.Time `json:"created_at"`
}
