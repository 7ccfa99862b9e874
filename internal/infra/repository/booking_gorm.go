package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/vkclicks/vkclicks-api/internal/domain/booking"
	"github.com/vkclicks/vkclicks-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) GetPhotographer(
	ctx context.Context,
	id uint,
) (*models.Photographer, error) {

	var photographer models.Photographer
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&photographer, id).Error
	if err != nil {
		return nil, err
	}

	return &photographer, nil
}

func (r *BookingGormRepository) GetPackage(
	ctx context.Context,
	id uint,
) (*models.PhotographyPackage, error) {

	var pkg models.PhotographyPackage
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
