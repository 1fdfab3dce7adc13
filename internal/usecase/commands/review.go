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
	ErrBookingNotCompleted = errs.New("booking is not completed")
	ErrDuplicateReview     = errs.New("review already exists for this booking")
	ErrInvalidTipIntent    = errs.New("tip payment intent is missing, unpaid, or mismatched")
	ErrStarValidation      = errs.New("invalid star distribution")
)

type CreateReviewInput struct {
	BookingID          uuid.UUID
	HospitalityStars   int
	CleanlinessStars   int
	TasteStars         int
	TipStars           int
	TipPaymentIntentID *string
	Comment            string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type CreateTipIntentInput struct {
	BookingID uuid.UUID
	TipStars  int
}

type TipIntentResult struct {
	PaymentIntentID string
	ClientSecret    string
	AmountCents     int64
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, input CreateReviewInput, userID uuid.UUID) (*CreateReviewResult, error)
	// CreateTipIntent prices the requested tip stars and opens a payment
	// intent which must succeed before the review referencing it is accepted.
	CreateTipIntent(ctx context.Context, input CreateTipIntentInput, userID uuid.UUID) (*TipIntentResult, error)
}

type reviewCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	clock   clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, gateway PaymentGateway, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clk,
	}
}

func (c *reviewCommandsImpl) CreateReview(ctx context.Context, input CreateReviewInput, userID uuid.UUID) (*CreateReviewResult, error) {
	stars := review.StarAllocation{
		Hospitality: input.HospitalityStars,
		Cleanliness: input.CleanlinessStars,
		Taste:       input.TasteStars,
		Tip:         input.TipStars,
	}
	if err := stars.Validate(); err != nil {
		return nil, errs.Mark(err, ErrStarValidation)
	}

	var reviewID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.eligibleBooking(ctx, tx, input.BookingID, userID)
		if err != nil {
			return err
		}

		if stars.Tip > 0 {
			if err := c.validateTipIntent(ctx, tx, input.TipPaymentIntentID, snap, stars.Tip); err != nil {
				return err
			}
		}

		rev, err := review.NewReview(
			snap.ID,
			userID,
			snap.HostID,
			stars,
			snap.TotalPriceCents,
			input.TipPaymentIntentID,
			input.Comment,
			c.clock.Now(),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		id, err := tx.Reviews().Create(ctx, tx.DB(), rev)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		reviewID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateReviewResult{ReviewID: reviewID}, nil
}

func (c *reviewCommandsImpl) CreateTipIntent(ctx context.Context, input CreateTipIntentInput, userID uuid.UUID) (*TipIntentResult, error) {
	if input.TipStars < 1 || input.TipStars > review.MaxTipStars {
		return nil, errs.Mark(review.ErrTipStarsOutOfRange, ErrStarValidation)
	}

	var amountCents int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.eligibleBooking(ctx, tx, input.BookingID, userID)
		if err != nil {
			return err
		}
		amountCents = review.TipAmountCents(snap.TotalPriceCents, input.TipStars)
		return nil
	})
	if err != nil {
		return nil, err
	}

	intent, err := c.gateway.CreateIntent(ctx, amountCents, map[string]string{
		MetaBookingID: input.BookingID.String(),
		MetaUserID:    userID.String(),
		MetaPurpose:   PurposeTip,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentProcessing)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.TipIntents().Create(ctx, tx.DB(), intent.ID, input.BookingID, amountCents, c.clock.Now())
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &TipIntentResult{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		AmountCents:     amountCents,
	}, nil
}

func (c *reviewCommandsImpl) eligibleBooking(ctx context.Context, tx shared.Tx, bookingID, userID uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.UserID != userID {
		return nil, ErrBookingNotOwned
	}
	if snap.Status != booking.StatusCompleted {
		return nil, ErrBookingNotCompleted
	}
	return snap, nil
}

// validateTipIntent enforces the ordering invariant: purchased tip stars
// require a previously succeeded intent for the same booking and amount.
func (c *reviewCommandsImpl) validateTipIntent(
	ctx context.Context,
	tx shared.Tx,
	intentID *string,
	snap *shared.BookingSnapshot,
	tipStars int,
) error {
	if intentID == nil || *intentID == "" {
		return ErrInvalidTipIntent
	}

	tip, err := tx.Reads().TipIntentByID(ctx, *intentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvalidTipIntent
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if tip.BookingID != snap.ID ||
		tip.Status != shared.TipIntentSucceeded ||
		tip.AmountCents != review.TipAmountCents(snap.TotalPriceCents, tipStars) {
		return ErrInvalidTipIntent
	}
	return nil
}
