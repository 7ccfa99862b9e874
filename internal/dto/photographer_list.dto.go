package dto

import "time"

type UserRefDTO struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type TeamMemberDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type PackageSummaryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	EventType   string `json:"event_type"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

type PackageDetailDTO struct {
	PackageSummaryDTO
	Duration     int    `json:"duration"`
	DeliveryTime int    `json:"delivery_time"`
	Includes     string `json:"includes"`
}

type PhotographerListDTO struct {
	ID                uint                `json:"id"`
	User              UserRefDTO          `json:"user"`
	PhoneNumber       string              `json:"phone_number"`
	Location          string              `json:"location"`
	Bio               string              `json:"bio"`
	TypeOfPhotography string              `json:"type_of_photography"`
	ProfilePicture    string              `json:"profile_picture"`
	CreatedAt         time.Time           `json:"created_at"`
	Team              []TeamMemberDTO     `json:"team"`
	Packages          []PackageSummaryDTO `json:"packages"`
	AverageRating     float64             `json:"average_rating"`
	TotalReviews      int64               `json:"total_reviews"`
}
