package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"mine-dine/internal/domain/booking"
	"mine-dine/internal/domain/dinner"
	"mine-dine/internal/domain/moderator"
	"mine-dine/internal/infra"
	"mine-dine/internal/pkg/clock"
	"mine-dine/internal/pkg/errs"
	"mine-dine/internal/usecase/queries"
	"mine-dine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDinnerNotFound          = errs.New("dinner not found")
	ErrDinnerNotBookable       = errs.New("dinner is not bookable")
	ErrCapacityExceeded        = errs.New("dinner capacity exceeded")
	ErrInvalidReferralCode     = errs.New("invalid referral code")
	ErrUnknownAddOn            = errs.New("unknown add-on for this dinner")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingNotOwned         = errs.New("booking not owned by user")
	ErrBookingNotConfirmed     = errs.New("booking is not confirmed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrPaymentProcessing       = errs.New("payment processor failure")
	ErrDuplicateBooking        = errs.New("duplicate booking request")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingInput struct {
	DinnerID       uuid.UUID
	NumberOfGuests int
	SelectedAddOns []booking.AddOnSelection
	ReferralCode   *string
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input CreateBookingInput, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	gateway        PaymentGateway
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		gateway:        gateway,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	input CreateBookingInput,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	requestHash := calculateRequestHash(input)
	expiresAt := c.clock.Now().Add(24 * time.Hour)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	view, err := c.createNewBooking(ctx, input, userID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

func (c *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	key, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	var claimed bool
	var record *shared.IdempotencyRecord

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, "POST /bookings", requestHash, expiresAt)
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		claimed = inserted
		if inserted {
			return nil
		}
		rec, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		record = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	if claimed {
		return nil, nil
	}

	switch record.Status {
	case shared.IdempotencyCompleted:
		if record.ResultBookingID == nil {
			return nil, errs.New("completed idempotency record missing booking id")
		}
		return c.bookingQueries.GetByIDSystem(ctx, *record.ResultBookingID)

	case shared.IdempotencyProcessing:
		if record.RequestHash != requestHash {
			return nil, ErrDuplicateBooking
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *bookingCommandsImpl) createNewBooking(
	ctx context.Context,
	input CreateBookingInput,
	userID, idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	var bookingID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Row lock on the dinner keeps the capacity check and the insert
		// atomic against concurrent bookings (time-of-check/time-of-use).
		snap, err := tx.Reads().DinnerForUpdate(ctx, input.DinnerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrDinnerNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		dinnerEntity, err := dinnerFromSnapshot(snap)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := dinnerEntity.ValidateBookable(); err != nil {
			return ErrDinnerNotBookable
		}

		booked, err := tx.Reads().ActiveGuestCount(ctx, input.DinnerID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := dinnerEntity.CheckCapacity(booked, input.NumberOfGuests); err != nil {
			if errs.Is(err, dinner.ErrCapacityExceeded) {
				return ErrCapacityExceeded
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		quote, err := booking.ComputeQuote(dinnerEntity, input.NumberOfGuests, input.SelectedAddOns)
		if err != nil {
			if errs.Is(err, booking.ErrUnknownAddOn) {
				return ErrUnknownAddOn
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		referralModeratorID, err := c.resolveReferral(ctx, tx, input.ReferralCode)
		if err != nil {
			return err
		}

		b := booking.NewBooking(
			userID,
			input.DinnerID,
			input.NumberOfGuests,
			quote,
			input.SelectedAddOns,
			input.ReferralCode,
			referralModeratorID,
			c.clock.Now(),
		)

		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		bookingID = id

		if err := createNotificationJob(ctx, tx, "booking_created", id, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		responseHash := calculateIDHash(id)
		if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, responseHash, id); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := c.attachPaymentIntent(ctx, bookingID, userID, input.DinnerID); err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (c *bookingCommandsImpl) resolveReferral(ctx context.Context, tx shared.Tx, code *string) (*uuid.UUID, error) {
	if code == nil {
		return nil, nil
	}

	snap, err := tx.Reads().ModeratorByReferralCode(ctx, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidReferralCode
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	mod := moderator.Reconstruct(snap.ID, snap.UserID, snap.ReferralCode, snap.Active)
	if err := mod.ValidateActive(); err != nil {
		return nil, ErrInvalidReferralCode
	}

	id := mod.ID()
	return &id, nil
}

// attachPaymentIntent runs after the booking transaction commits: the intent
// is created with the processor and its id persisted. On processor failure the
// booking stays PENDING for the expiry sweep, and the caller sees a 500.
func (c *bookingCommandsImpl) attachPaymentIntent(ctx context.Context, bookingID, userID, dinnerID uuid.UUID) error {
	view, err := c.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	intent, err := c.gateway.CreateIntent(ctx, view.TotalPriceCents, map[string]string{
		MetaBookingID: bookingID.String(),
		MetaUserID:    userID.String(),
		MetaDinnerID:  dinnerID.String(),
		MetaPurpose:   PurposeBooking,
	})
	if err != nil {
		slog.Error("payment intent creation failed, booking left pending",
			"booking_id", bookingID, "error", err.Error())
		return errs.Mark(err, ErrPaymentProcessing)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().SetPaymentIntent(ctx, tx.DB(), bookingID, intent.ID, c.clock.Now())
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) CompleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if snap.Status != booking.StatusConfirmed {
			return ErrBookingNotConfirmed
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, booking.StatusCompleted, c.clock.Now())
	})
}

func dinnerFromSnapshot(snap *shared.DinnerSnapshot) (*dinner.Dinner, error) {
	return dinner.NewDinner(
		snap.ID,
		snap.HostID,
		snap.Title,
		snap.MaxGuests,
		snap.BasePriceCents,
		dinner.Status(snap.Status),
		dinner.ModerationStatus(snap.ModerationStatus),
		dinner.Visibility(snap.Visibility),
		snap.DateTime,
		snap.AddOns,
	)
}

func createNotificationJob(ctx context.Context, tx shared.Tx, topic string, bookingID uuid.UUID, runAt time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, payload, runAt)
}

func calculateRequestHash(input CreateBookingInput) string {
	data, _ := json.Marshal(input)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
