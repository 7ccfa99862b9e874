package booking

import (
	"context"
	"time"

	domain "github.com/vkclicks/vkclicks-api/internal/domain/booking"
	"github.com/vkclicks/vkclicks-api/internal/httperr"
	"github.com/vkclicks/vkclicks-api/internal/models"
	"github.com/vkclicks/vkclicks-api/internal/notify"
)

// Notifier is what the use case needs from notify.Dispatcher.
type Notifier interface {
	Dispatch(msg notify.Message)
}

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	PhotographerID uint
	PackageID      *uint

	ClientName  string
	ClientEmail string
	ClientPhone string

	EventDate       string // YYYY-MM-DD
	EventTime       string // HH:mm
	EventLocation   string
	EventType       string
	SpecialRequests string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	notifier Notifier
	siteName string
}

func NewCreateBooking(
	repo domain.Repository,
	notifier Notifier,
	siteName string,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		notifier: notifier,
		siteName: siteName,
	}
}

// Execute persists a pending booking and queues the notification mail.
// The package reference is resolved best-effort: an id that does not
// exist downgrades the booking to custom instead of failing it. The
// mail is dispatched after the row is committed and can never fail the
// request.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	photographer, err := uc.repo.GetPhotographer(ctx, in.PhotographerID)
	if err != nil {
		return nil, httperr.ErrBusiness("photographer_not_found")
	}

	if _, err := time.Parse("2006-01-02", in.EventDate); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.EventTime); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	var pkg *models.PhotographyPackage
	if in.PackageID != nil {
		if found, err := uc.repo.GetPackage(ctx, *in.PackageID); err == nil {
			pkg = found
		}
	}

	b := &models.Booking{
		PhotographerID:  photographer.ID,
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		ClientPhone:     in.ClientPhone,
		EventDate:       in.EventDate,
		EventTime:       in.EventTime,
		EventLocation:   in.EventLocation,
		EventType:       in.EventType,
		SpecialRequests: in.SpecialRequests,
		Status:          models.BookingStatusPending,
	}
	if pkg != nil {
		b.PackageID = &pkg.ID
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.ComposeBookingNotification(
		uc.siteName,
		photographer,
		b,
		pkg,
	))

	return b, nil
}
