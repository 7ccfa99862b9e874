package models

import "time"

// Review identity is the (photographer, client_email) pair. The unique
// index backs the upsert write path in usecase/review.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PhotographerID uint         `gorm:"not null;uniqueIndex:uq_reviews_photographer_client" json:"photographer_id"`
	Photographer   Photographer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BookingID *uint    `json:"booking_id"`
	Booking   *Booking `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:254;not null;uniqueIndex:uq_reviews_photographer_client" json:"client_email"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
