package booking

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/vkclicks/vkclicks-api/internal/db"
	"github.com/vkclicks/vkclicks-api/internal/httperr"
	"github.com/vkclicks/vkclicks-api/internal/infra/repository"
	"github.com/vkclicks/vkclicks-api/internal/models"
	"github.com/vkclicks/vkclicks-api/internal/notify"
)

type capturingNotifier struct {
	messages []notify.Message
}

func (n *capturingNotifier) Dispatch(msg notify.Message) {
	n.messages = append(n.messages, msg)
}

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

func seedPhotographer(t *testing.T, db *gorm.DB) *models.Photographer {
	t.Helper()

	user := models.User{
		Username:     "asha",
		Email:        "asha@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)

	photographer := models.Photographer{UserID: user.ID}
	require.NoError(t, db.Create(&photographer).Error)

	photographer.User = user
	return &photographer
}

func validInput(photographerID uint) CreateBookingInput {
	return CreateBookingInput{
		PhotographerID: photographerID,
		ClientName:     "Ravi",
		ClientEmail:    "ravi@example.com",
		ClientPhone:    "9999999999",
		EventDate:      "2026-09-12",
		EventTime:      "14:30",
		EventLocation:  "Mumbai",
		EventType:      "Wedding",
	}
}

func TestCreateBookingUnknownPhotographer(t *testing.T) {
	db := setupTestDB(t)
	notifier := &capturingNotifier{}
	uc := NewCreateBooking(repository.NewBookingGormRepository(db), notifier, "VK Clicks")

	_, err := uc.Execute(context.Background(), validInput(42))
	assert.True(t, httperr.IsBusiness(err, "photographer_not_found"))

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
	assert.Empty(t, notifier.messages)
}

func TestCreateBookingRejectsBadDateAndTime(t *testing.T) {
	db := setupTestDB(t)
	photographer := seedPhotographer(t, db)
	uc := NewCreateBooking(repository.NewBookingGormRepository(db), &capturingNotifier{}, "VK Clicks")

	in := validInput(photographer.ID)
	in.EventDate = "12-09-2026"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	in = validInput(photographer.ID)
	in.EventTime = "2pm"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateBookingWithPackage(t *testing.T) {
	db := setupTestDB(t)
	photographer := seedPhotographer(t, db)

	pkg := models.PhotographyPackage{
		PhotographerID: photographer.ID,
		Name:           "Gold Wedding",
		Price:          decimal.RequireFromString("45000.00"),
	}
	require.NoError(t, db.Create(&pkg).Error)

	notifier := &capturingNotifier{}
	uc := NewCreateBooking(repository.NewBookingGormRepository(db), notifier, "VK Clicks")

	in := validInput(photographer.ID)
	in.PackageID = &pkg.ID

	booking, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, booking.Status)
	require.NotNil(t, booking.PackageID)
	assert.Equal(t, pkg.ID, *booking.PackageID)

	require.Len(t, notifier.messages, 1)
	msg := notifier.messages[0]
	assert.Equal(t, []string{"asha@example.com"}, msg.To)
	assert.Equal(t, "New Booking via VK Clicks - Ravi", msg.Subject)
	assert.True(t, strings.Contains(msg.Body, "Gold Wedding"))
	assert.True(t, strings.Contains(msg.Body, "₹45000.00"))
}

// An id that resolves to nothing downgrades the booking to custom
// instead of failing it.
func TestCreateBookingBogusPackageFallsBackToCustom(t *testing.T) {
	db := setupTestDB(t)
	photographer := seedPhotographer(t, db)

	notifier := &capturingNotifier{}
	uc := NewCreateBooking(repository.NewBookingGormRepository(db), notifier, "VK Clicks")

	bogus := uint(9999)
	in := validInput(photographer.ID)
	in.PackageID = &bogus

	booking, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, booking.PackageID)

	var stored models.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	assert.Nil(t, stored.PackageID)
	assert.Equal(t, models.BookingStatusPending, stored.Status)

	require.Len(t, notifier.messages, 1)
	assert.True(t, strings.Contains(notifier.messages[0].Body, "Custom"))
	assert.True(t, strings.Contains(notifier.messages[0].Body, "To be discussed"))
}
