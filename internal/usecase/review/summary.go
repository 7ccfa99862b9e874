package review

import (
	"context"
	"fmt"
	"math"

	domain "github.com/vkclicks/vkclicks-api/internal/domain/review"
	"github.com/vkclicks/vkclicks-api/internal/httperr"
	"github.com/vkclicks/vkclicks-api/internal/models"
)

// ======================================================
// OUTPUT
// ======================================================

type RatingBucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type RatingBreakdown struct {
	Excellent int `json:"excellent"` // 5 stars
	VeryGood  int `json:"very_good"` // 4 stars
	Good      int `json:"good"`      // 3 stars
	Fair      int `json:"fair"`      // 2 stars
	Poor      int `json:"poor"`      // 1 star
}

type Summary struct {
	PhotographerID    uint   `json:"photographer_id"`
	PhotographerName  string `json:"photographer_name"`
	PhotographerEmail string `json:"photographer_email"`

	AverageRating      float64                 `json:"average_rating"`
	TotalReviews       int                     `json:"total_reviews"`
	RatingDistribution map[string]RatingBucket `json:"rating_distribution"`
	RatingBreakdown    RatingBreakdown         `json:"rating_breakdown"`
	RecentReviews      []models.Review         `json:"recent_reviews"`
	HasReviews         bool                    `json:"has_reviews"`
}

// ======================================================
// USE CASE
// ======================================================

type GetSummary struct {
	repo domain.Repository
}

func NewGetSummary(repo domain.Repository) *GetSummary {
	return &GetSummary{repo: repo}
}

func (uc *GetSummary) Execute(
	ctx context.Context,
	photographerID uint,
) (*Summary, error) {

	photographer, err := uc.repo.GetPhotographer(ctx, photographerID)
	if err != nil {
		return nil, httperr.ErrBusiness("photographer_not_found")
	}

	ratings, err := uc.repo.RatingsByPhotographer(ctx, photographerID)
	if err != nil {
		return nil, err
	}

	recent, err := uc.repo.ListByPhotographer(ctx, photographerID, 5, 0)
	if err != nil {
		return nil, err
	}

	return BuildSummary(photographer, ratings, recent), nil
}

// BuildSummary computes the aggregate statistics over a photographer's
// ratings. All percentages are zero when there are no reviews.
func BuildSummary(
	photographer *models.Photographer,
	ratings []int,
	recent []models.Review,
) *Summary {

	total := len(ratings)

	counts := [6]int{} // index by star value, 0 unused
	sum := 0
	for _, r := range ratings {
		if r >= 1 && r <= 5 {
			counts[r]++
		}
		sum += r
	}

	average := 0.0
	if total > 0 {
		average = round2(float64(sum) / float64(total))
	}

	distribution := make(map[string]RatingBucket, 5)
	for star := 1; star <= 5; star++ {
		percentage := 0.0
		if total > 0 {
			percentage = round1(float64(counts[star]) / float64(total) * 100)
		}
		distribution[fmt.Sprintf("%d_star", star)] = RatingBucket{
			Count:      counts[star],
			Percentage: percentage,
		}
	}

	if recent == nil {
		recent = []models.Review{}
	}

	return &Summary{
		PhotographerID:    photographer.ID,
		PhotographerName:  photographer.User.Username,
		PhotographerEmail: photographer.User.Email,
		AverageRating:     average,
		TotalReviews:      total,
		RatingDistribution: distribution,
		RatingBreakdown: RatingBreakdown{
			Excellent: counts[5],
			VeryGood:  counts[4],
			Good:      counts[3],
			Fair:      counts[2],
			Poor:      counts[1],
		},
		RecentReviews: recent,
		HasReviews:    total > 0,
	}
}

// Rounding is half away from zero in both places.

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
