package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/vkclicks/vkclicks-api/internal/domain/review"
	"github.com/vkclicks/vkclicks-api/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) GetPhotographer(
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

func (r *ReviewGormRepository) FindByClient(
	ctx context.Context,
	photographerID uint,
	clientEmail string,
) (*models.Review, error) {

	var review models.Review
	err := r.db.WithContext(ctx).
		Where("photographer_id = ? AND client_email = ?", photographerID, clientEmail).
		First(&review).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *ReviewGormRepository) Create(ctx context.Context, review *models.Review) error {
	err := r.db.WithContext(ctx).Create(review).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *ReviewGormRepository) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *ReviewGormRepository) Get(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Review{}, id).Error
}

func (r *ReviewGormRepository) ListByPhotographer(
	ctx context.Context,
	photographerID uint,
	limit int,
	offset int,
) ([]models.Review, error) {

	q := r.db.WithContext(ctx).
		Where("photographer_id = ?", photographerID).
		Order("created_at DESC, id DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var reviews []models.Review
	if err := q.Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *ReviewGormRepository) CountByPhotographer(
	ctx context.Context,
	photographerID uint,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("photographer_id = ?", photographerID).
		Count(&count).Error

	return count, err
}

func (r *ReviewGormRepository) RatingsByPhotographer(
	ctx context.Context,
	photographerID uint,
) ([]int, error) {

	var ratings []int
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("photographer_id = ?", photographerID).
		Pluck("rating", &ratings).Error

	return ratings, err
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
