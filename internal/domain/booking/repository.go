package booking

import (
	"context"

	"github.com/vkclicks/vkclicks-api/internal/models"
)

type Repository interface {
	// Photographer is returned with its User preloaded (the
	// notification mail needs the account email).
	GetPhotographer(
		ctx context.Context,
		id uint,
	) (*models.Photographer, error)

	GetPackage(
		ctx context.Context,
		id uint,
	) (*models.PhotographyPackage, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
