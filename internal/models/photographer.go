package models

import "time"

// Photographer is created lazily on the first profile save, not at
// signup. Consumers must treat its absence as a normal outcome.
type Photographer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"-"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PhoneNumber       string `gorm:"size:15" json:"phone_number"`
	Location          string `gorm:"size:100" json:"location"`
	Bio               string `gorm:"type:text" json:"bio"`
	TypeOfPhotography string `gorm:"size:200" json:"type_of_photography"`
	ProfilePicture    string `gorm:"size:255" json:"profile_picture"`

	CreatedAt time.Time `json:"created_at"`
}
