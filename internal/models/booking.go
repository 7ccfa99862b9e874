package models

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PhotographerID uint         `gorm:"not null" json:"photographer_id"`
	Photographer   Photographer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Nil means a custom booking with no package attached.
	PackageID *uint               `json:"package_id"`
	Package   *PhotographyPackage `gorm:"foreignKey:PackageID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"package,omitempty"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:254;not null" json:"client_email"`
	ClientPhone string `gorm:"size:15;not null" json:"client_phone"`

	EventDate       string `gorm:"size:10;not null" json:"event_date"` // YYYY-MM-DD
	EventTime       string `gorm:"size:5;not null" json:"event_time"`  // HH:MM
	EventLocation   string `gorm:"type:text;not null" json:"event_location"`
	EventType       string `gorm:"size:100" json:"event_type"`
	SpecialRequests string `gorm:"type:text" json:"special_requests"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
