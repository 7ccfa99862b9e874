package review

import (
	"context"
	"errors"

	"github.com/vkclicks/vkclicks-api/internal/models"
)

// ErrDuplicate is returned by Create when the (photographer,
// client_email) unique index rejects the row. The upsert use case
// retries the write as an update.
var ErrDuplicate = errors.New("duplicate review")

type Repository interface {
	// Photographer is returned with its User preloaded.
	GetPhotographer(
		ctx context.Context,
		id uint,
	) (*models.Photographer, error)

	// FindByClient returns (nil, nil) when no review exists for the
	// pair.
	FindByClient(
		ctx context.Context,
		photographerID uint,
		clientEmail string,
	) (*models.Review, error)

	Create(ctx context.Context, r *models.Review) error
	Update(ctx context.Context, r *models.Review) error

	Get(ctx context.Context, id uint) (*models.Review, error)
	Delete(ctx context.Context, id uint) error

	// ListByPhotographer orders newest first. limit <= 0 means no
	// limit.
	ListByPhotographer(
		ctx context.Context,
		photographerID uint,
		limit int,
		offset int,
	) ([]models.Review, error)

	CountByPhotographer(
		ctx context.Context,
		photographerID uint,
	) (int64, error)

	RatingsByPhotographer(
		ctx context.Context,
		photographerID uint,
	) ([]int, error)
}
