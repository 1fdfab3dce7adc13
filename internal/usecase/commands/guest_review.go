package commands

import (
	"context"

	"mine-dine/internal/domain/booking"
	"mine-dine/internal/domain/review"
	"mine-dine/internal/infra"
	"mine-dine/internal/pkg/clock"
	"mine-dine/internal/pkg/errs"
	"mine-dine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotDinnerHost        = errs.New("caller is not the dinner's host")
	ErrDuplicateGuestReview = errs.New("guest review already exists for this booking")
)

type CreateGuestReviewInput struct {
	BookingID uuid.UUID
	Sentiment string
}

type CreateGuestReviewResult struct {
	GuestReviewID uuid.UUID
}

type GuestReviewCommands interface {
	// CreateGuestReview records the host's like/dislike of the guest for a
	// completed booking.
	CreateGuestReview(ctx context.Context, input CreateGuestReviewInput, hostID uuid.UUID) (*CreateGuestReviewResult, error)
}

type guestReviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewGuestReviewCommands(uow shared.UnitOfWork, clk clock.Clock) GuestReviewCommands {
	return &guestReviewCommandsImpl{uow: uow, clock: clk}
}

func (c *guestReviewCommandsImpl) CreateGuestReview(
	ctx context.Context,
	input CreateGuestReviewInput,
	hostID uuid.UUID,
) (*CreateGuestReviewResult, error) {
	sentiment, err := review.NewSentiment(input.Sentiment)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, input.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if snap.HostID != hostID {
			return ErrNotDinnerHost
		}
		if snap.Status != booking.StatusCompleted {
			return ErrBookingNotCompleted
		}

		gr := review.NewGuestReview(snap.ID, hostID, snap.UserID, sentiment, c.clock.Now())
		id, err := tx.GuestReviews().Create(ctx, tx.DB(), gr)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateGuestReview
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateGuestReviewResult{GuestReviewID: createdID}, nil
}
