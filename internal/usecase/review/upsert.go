package review

import (
	"context"
	"errors"

	domain "github.com/vkclicks/vkclicks-api/internal/domain/review"
	"github.com/vkclicks/vkclicks-api/internal/httperr"
	"github.com/vkclicks/vkclicks-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpsertReviewInput struct {
	PhotographerID uint

	ClientName  string
	ClientEmail string
	Rating      int
	Comment     string

	BookingID *uint
}

// ======================================================
// USE CASE
// ======================================================

// UpsertReview implements create-or-update keyed by the natural
// identity (photographer, client_email). An existing review is
// overwritten in place, keeping its id and created_at.
type UpsertReview struct {
	repo domain.Repository
}

func NewUpsertReview(repo domain.Repository) *UpsertReview {
	return &UpsertReview{repo: repo}
}

// Execute returns the stored review and whether it was newly created.
func (uc *UpsertReview) Execute(
	ctx context.Context,
	in UpsertReviewInput,
) (*models.Review, bool, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, false, httperr.ErrBusiness("invalid_rating")
	}

	existing, err := uc.repo.FindByClient(ctx, in.PhotographerID, in.ClientEmail)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		uc.apply(existing, in)
		if err := uc.repo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	photographer, err := uc.repo.GetPhotographer(ctx, in.PhotographerID)
	if err != nil {
		return nil, false, httperr.ErrBusiness("photographer_not_found")
	}

	r := &models.Review{
		PhotographerID: photographer.ID,
		ClientName:     in.ClientName,
		ClientEmail:    in.ClientEmail,
		Rating:         in.Rating,
		Comment:        in.Comment,
		BookingID:      in.BookingID,
	}

	err = uc.repo.Create(ctx, r)
	if errors.Is(err, domain.ErrDuplicate) {
		// Lost the read-then-write race against a concurrent first
		// submission for the same pair. The unique index turned the
		// loser into a conflict; retry as an update.
		existing, ferr := uc.repo.FindByClient(ctx, in.PhotographerID, in.ClientEmail)
		if ferr != nil || existing == nil {
			return nil, false, err
		}
		uc.apply(existing, in)
		if uerr := uc.repo.Update(ctx, existing); uerr != nil {
			return nil, false, uerr
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return r, true, nil
}

func (uc *UpsertReview) apply(r *models.Review, in UpsertReviewInput) {
	r.ClientName = in.ClientName
	r.ClientEmail = in.ClientEmail
	r.Rating = in.Rating
	r.Comment = in.Comment
	if in.BookingID != nil {
		r.BookingID = in.BookingID
	}
}
