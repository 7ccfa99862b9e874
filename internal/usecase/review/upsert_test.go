package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/vkclicks/vkclicks-api/internal/db"
	domain "github.com/vkclicks/vkclicks-api/internal/domain/review"
	"github.com/vkclicks/vkclicks-api/internal/httperr"
	"github.com/vkclicks/vkclicks-api/internal/infra/repository"
	"github.com/vkclicks/vkclicks-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func seedPhotographer(t *testing.T, db *gorm.DB, username string) *models.Photographer {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)

	photographer := models.Photographer{
		UserID:   user.ID,
		Location: "Pune",
	}
	require.NoError(t, db.Create(&photographer).Error)

	photographer.User = user
	return &photographer
}

func TestUpsertReviewRejectsOutOfRangeRating(t *testing.T) {
	db := setupTestDB(t)
	uc := NewUpsertReview(repository.NewReviewGormRepository(db))

	for _, rating := range []int{0, -1, 6} {
		_, _, err := uc.Execute(context.Background(), UpsertReviewInput{
			PhotographerID: 1,
			ClientName:     "Ravi",
			ClientEmail:    "ravi@example.com",
			Rating:         rating,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_rating"), "rating %d", rating)
	}
}

func TestUpsertReviewUnknownPhotographer(t *testing.T) {
	db := setupTestDB(t)
	uc := NewUpsertReview(repository.NewReviewGormRepository(db))

	_, _, err := uc.Execute(context.Background(), UpsertReviewInput{
		PhotographerID: 999,
		ClientName:     "Ravi",
		ClientEmail:    "ravi@example.com",
		Rating:         5,
	})
	assert.True(t, httperr.IsBusiness(err, "photographer_not_found"))

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpsertReviewCreateThenOverwrite(t *testing.T) {
	db := setupTestDB(t)
	photographer := seedPhotographer(t, db, "asha")
	uc := NewUpsertReview(repository.NewReviewGormRepository(db))

	first, created, err := uc.Execute(context.Background(), UpsertReviewInput{
		PhotographerID: photographer.ID,
		ClientName:     "Ravi",
		ClientEmail:    "ravi@example.com",
		Rating:         5,
		Comment:        "great",
	})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := uc.Execute(context.Background(), UpsertReviewInput{
		PhotographerID: photographer.ID,
		ClientName:     "Ravi K",
		ClientEmail:    "ravi@example.com",
		Rating:         2,
		Comment:        "changed my mind",
	})
	require.NoError(t, err)
	assert.False(t, created)

	// Same identity: the row is overwritten in place.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Rating)
	assert.Equal(t, "Ravi K", second.ClientName)
	assert.WithinDuration(t, first.CreatedAt, second.CreatedAt, 0)

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpsertReviewDistinctClientsGetDistinctRows(t *testing.T) {
	db := setupTestDB(t)
	photographer := seedPhotographer(t, db, "asha")
	uc := NewUpsertReview(repository.NewReviewGormRepository(db))

	_, created, err := uc.Execute(context.Background(), UpsertReviewInput{
		PhotographerID: photographer.ID,
		ClientName:     "Ravi",
		ClientEmail:    "ravi@example.com",
		Rating:         5,
	})
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = uc.Execute(context.Background(), UpsertReviewInput{
		PhotographerID: photographer.ID,
		ClientName:     "Mina",
		ClientEmail:    "mina@example.com",
		Rating:         3,
	})
	require.NoError(t, err)
	assert.True(t, created)

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestUpsertReviewLosingTheCreateRace(t *testing.T) {
	db := setupTestDB(t)
	photographer := seedPhotographer(t, db, "asha")
	repo := repository.NewReviewGormRepository(db)
	uc := NewUpsertReview(repo)

	// Simulate the race: the row appears between the read and the
	// create by inserting it behind the use case's back.
	require.NoError(t, db.Create(&models.Review{
		PhotographerID: photographer.ID,
		ClientName:     "Ravi",
		ClientEmail:    "ravi@example.com",
		Rating:         4,
	}).Error)

	review, err := repo.FindByClient(context.Background(), photographer.ID, "ravi@example.com")
	require.NoError(t, err)
	require.NotNil(t, review)

	// A direct Create for the same pair must surface ErrDuplicate,
	// which is what the retry path keys on.
	err = repo.Create(context.Background(), &models.Review{
		PhotographerID: photographer.ID,
		ClientName:     "Ravi",
		ClientEmail:    "ravi@example.com",
		Rating:         1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, created, err := uc.Execute(context.Background(), UpsertReviewInput{
		PhotographerID: photographer.ID,
		ClientName:     "Ravi",
		ClientEmail:    "ravi@example.com",
		Rating:         1,
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, review.ID, out.ID)
	assert.Equal(t, 1, out.Rating)
}
