//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"mine-dine/internal/domain/booking"
	"mine-dine/internal/infra"
	"mine-dine/internal/pkg/clock"
	"mine-dine/internal/usecase/commands"
	"mine-dine/internal/usecase/queries"
	"mine-dine/internal/usecase/shared"
	"mine-dine/tests/common/builder"
	"mine-dine/tests/common/fake"
	commandsmock "mine-dine/tests/mock/commands"
	queriesmock "mine-dine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingFixture struct {
	uow      *fake.StubUoW
	gateway  *commandsmock.MockPaymentGateway
	queries  *queriesmock.MockBookingQueries
	clock    *clock.MockClock
	commands commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	ctrl := gomock.NewController(t)
	uow := fake.NewStubUoW(ctrl)
	gateway := commandsmock.NewMockPaymentGateway(ctrl)
	bookingQueries := queriesmock.NewMockBookingQueries(ctrl)
	clk := clock.NewMockClock(time.Now())
	return &bookingFixture{
		uow:      uow,
		gateway:  gateway,
		queries:  bookingQueries,
		clock:    clk,
		commands: commands.NewBookingCommands(uow, gateway, bookingQueries, clk),
	}
}

// expectFreshKey claims the idempotency key on the first attempt.
func (f *bookingFixture) expectFreshKey() {
	f.uow.Tx.IdempotencyMock.EXPECT().
		TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "POST /bookings", gomock.Any(), gomock.Any()).
		Return(true, nil)
}

func TestCreateBooking(t *testing.T) {
	t.Run("books a dinner with seats available", func(t *testing.T) {
		f := newBookingFixture(t)
		userID := uuid.New()
		key := uuid.New()
		db := builder.NewDinnerBuilder().WithMaxGuests(8).WithBasePrice(5000)
		snap := db.BuildSnapshot()

		f.expectFreshKey()
		reads := f.uow.Tx.ReadsMock
		reads.EXPECT().DinnerForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		reads.EXPECT().ActiveGuestCount(gomock.Any(), snap.ID).Return(3, nil)

		bookingID := uuid.New()
		f.uow.Tx.BookingsMock.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (uuid.UUID, error) {
				assert.Equal(t, booking.StatusPending, b.Status())
				assert.Equal(t, int64(10000), b.Quote().TotalPriceCents)
				return bookingID, nil
			})
		f.uow.Tx.NotificationsMock.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "booking_created", gomock.Any(), gomock.Any()).
			Return(nil)
		f.uow.Tx.IdempotencyMock.EXPECT().
			UpdateStatusCompleted(gomock.Any(), gomock.Any(), key, userID, gomock.Any(), bookingID).
			Return(nil)

		view := &queries.BookingView{ID: bookingID, TotalPriceCents: 10000, Status: "pending"}
		f.queries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).Return(view, nil).Times(2)
		f.gateway.EXPECT().
			CreateIntent(gomock.Any(), int64(10000), gomock.Any()).
			Return(&commands.PaymentIntent{ID: "pi_123", ClientSecret: "cs_123"}, nil)
		f.uow.Tx.BookingsMock.EXPECT().
			SetPaymentIntent(gomock.Any(), gomock.Any(), bookingID, "pi_123", gomock.Any()).
			Return(nil)

		input := commands.CreateBookingInput{DinnerID: snap.ID, NumberOfGuests: 2}
		result, err := f.commands.CreateBooking(context.Background(), input, userID, key)

		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
		assert.Equal(t, bookingID, result.Booking.ID)
	})

	t.Run("dinner not found", func(t *testing.T) {
		f := newBookingFixture(t)
		dinnerID := uuid.New()

		f.expectFreshKey()
		f.uow.Tx.ReadsMock.EXPECT().DinnerForUpdate(gomock.Any(), dinnerID).
			Return(nil, infra.WrapRepoErr("dinner not found", nil, infra.KindNotFound))

		input := commands.CreateBookingInput{DinnerID: dinnerID, NumberOfGuests: 2}
		_, err := f.commands.CreateBooking(context.Background(), input, uuid.New(), uuid.New())

		assert.ErrorIs(t, err, commands.ErrDinnerNotFound)
	})

	t.Run("draft dinner is not bookable", func(t *testing.T) {
		f := newBookingFixture(t)
		snap := builder.NewDinnerBuilder().BuildSnapshot()
		snap.Status = "draft"

		f.expectFreshKey()
		f.uow.Tx.ReadsMock.EXPECT().DinnerForUpdate(gomock.Any(), snap.ID).Return(snap, nil)

		input := commands.CreateBookingInput{DinnerID: snap.ID, NumberOfGuests: 2}
		_, err := f.commands.CreateBooking(context.Background(), input, uuid.New(), uuid.New())

		assert.ErrorIs(t, err, commands.ErrDinnerNotBookable)
	})

	t.Run("request exceeding remaining seats", func(t *testing.T) {
		f := newBookingFixture(t)
		snap := builder.NewDinnerBuilder().WithMaxGuests(8).BuildSnapshot()

		f.expectFreshKey()
		reads := f.uow.Tx.ReadsMock
		reads.EXPECT().DinnerForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		reads.EXPECT().ActiveGuestCount(gomock.Any(), snap.ID).Return(7, nil)

		input := commands.CreateBookingInput{DinnerID: snap.ID, NumberOfGuests: 2}
		_, err := f.commands.CreateBooking(context.Background(), input, uuid.New(), uuid.New())

		assert.ErrorIs(t, err, commands.ErrCapacityExceeded)
	})

	t.Run("selection outside the dinner's catalogue", func(t *testing.T) {
		f := newBookingFixture(t)
		snap := builder.NewDinnerBuilder().BuildSnapshot()

		f.expectFreshKey()
		reads := f.uow.Tx.ReadsMock
		reads.EXPECT().DinnerForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		reads.EXPECT().ActiveGuestCount(gomock.Any(), snap.ID).Return(0, nil)

		input := commands.CreateBookingInput{
			DinnerID:       snap.ID,
			NumberOfGuests: 2,
			SelectedAddOns: []booking.AddOnSelection{{AddOnID: uuid.New(), Quantity: 1}},
		}
		_, err := f.commands.CreateBooking(context.Background(), input, uuid.New(), uuid.New())

		assert.ErrorIs(t, err, commands.ErrUnknownAddOn)
	})

	t.Run("unknown referral code", func(t *testing.T) {
		f := newBookingFixture(t)
		snap := builder.NewDinnerBuilder().BuildSnapshot()
		code := "NOPE"

		f.expectFreshKey()
		reads := f.uow.Tx.ReadsMock
		reads.EXPECT().DinnerForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		reads.EXPECT().ActiveGuestCount(gomock.Any(), snap.ID).Return(0, nil)
		reads.EXPECT().ModeratorByReferralCode(gomock.Any(), code).
			Return(nil, infra.WrapRepoErr("moderator not found", nil, infra.KindNotFound))

		input := commands.CreateBookingInput{DinnerID: snap.ID, NumberOfGuests: 2, ReferralCode: &code}
		_, err := f.commands.CreateBooking(context.Background(), input, uuid.New(), uuid.New())

		assert.ErrorIs(t, err, commands.ErrInvalidReferralCode)
	})

	t.Run("inactive moderator's referral code", func(t *testing.T) {
		f := newBookingFixture(t)
		snap := builder.NewDinnerBuilder().BuildSnapshot()
		code := "MOD-OLD"

		f.expectFreshKey()
		reads := f.uow.Tx.ReadsMock
		reads.EXPECT().DinnerForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		reads.EXPECT().ActiveGuestCount(gomock.Any(), snap.ID).Return(0, nil)
		reads.EXPECT().ModeratorByReferralCode(gomock.Any(), code).
			Return(&shared.ModeratorSnapshot{ID: uuid.New(), ReferralCode: code, Active: false}, nil)

		input := commands.CreateBookingInput{DinnerID: snap.ID, NumberOfGuests: 2, ReferralCode: &code}
		_, err := f.commands.CreateBooking(context.Background(), input, uuid.New(), uuid.New())

		assert.ErrorIs(t, err, commands.ErrInvalidReferralCode)
	})

	t.Run("processor failure leaves the booking pending", func(t *testing.T) {
		f := newBookingFixture(t)
		snap := builder.NewDinnerBuilder().BuildSnapshot()
		bookingID := uuid.New()

		f.expectFreshKey()
		reads := f.uow.Tx.ReadsMock
		reads.EXPECT().DinnerForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		reads.EXPECT().ActiveGuestCount(gomock.Any(), snap.ID).Return(0, nil)
		f.uow.Tx.BookingsMock.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingID, nil)
		f.uow.Tx.NotificationsMock.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "booking_created", gomock.Any(), gomock.Any()).
			Return(nil)
		f.uow.Tx.IdempotencyMock.EXPECT().
			UpdateStatusCompleted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), bookingID).
			Return(nil)

		view := &queries.BookingView{ID: bookingID, TotalPriceCents: 10000}
		f.queries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).Return(view, nil)
		f.gateway.EXPECT().
			CreateIntent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		input := commands.CreateBookingInput{DinnerID: snap.ID, NumberOfGuests: 2}
		_, err := f.commands.CreateBooking(context.Background(), input, uuid.New(), uuid.New())

		assert.ErrorIs(t, err, commands.ErrPaymentProcessing)
	})
}

func TestCreateBookingIdempotency(t *testing.T) {
	t.Run("completed key replays the stored booking", func(t *testing.T) {
		f := newBookingFixture(t)
		userID := uuid.New()
		key := uuid.New()
		bookingID := uuid.New()
		input := commands.CreateBookingInput{DinnerID: uuid.New(), NumberOfGuests: 2}

		f.uow.Tx.IdempotencyMock.EXPECT().
			TryInsert(gomock.Any(), gomock.Any(), key, userID, "POST /bookings", gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.uow.Tx.ReadsMock.EXPECT().IdempotencyByKey(gomock.Any(), key, userID).
			Return(&shared.IdempotencyRecord{
				Key:             key,
				UserID:          userID,
				Status:          shared.IdempotencyCompleted,
				ResultBookingID: &bookingID,
			}, nil)

		view := &queries.BookingView{ID: bookingID}
		f.queries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).Return(view, nil)

		result, err := f.commands.CreateBooking(context.Background(), input, userID, key)

		require.NoError(t, err)
		assert.True(t, result.IsReplayed)
		assert.Equal(t, bookingID, result.Booking.ID)
	})

	t.Run("processing key with the same payload reports in progress", func(t *testing.T) {
		f := newBookingFixture(t)
		userID := uuid.New()
		key := uuid.New()
		input := commands.CreateBookingInput{DinnerID: uuid.New(), NumberOfGuests: 2}

		f.uow.Tx.IdempotencyMock.EXPECT().
			TryInsert(gomock.Any(), gomock.Any(), key, userID, "POST /bookings", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _, hash string, _ time.Time) (bool, error) {
				// Store the live record under the same request hash.
				f.uow.Tx.ReadsMock.EXPECT().IdempotencyByKey(gomock.Any(), key, userID).
					Return(&shared.IdempotencyRecord{
						Key:         key,
						UserID:      userID,
						Status:      shared.IdempotencyProcessing,
						RequestHash: hash,
					}, nil)
				return false, nil
			})

		_, err := f.commands.CreateBooking(context.Background(), input, userID, key)

		assert.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})

	t.Run("processing key with a different payload is a conflict", func(t *testing.T) {
		f := newBookingFixture(t)
		userID := uuid.New()
		key := uuid.New()
		input := commands.CreateBookingInput{DinnerID: uuid.New(), NumberOfGuests: 2}

		f.uow.Tx.IdempotencyMock.EXPECT().
			TryInsert(gomock.Any(), gomock.Any(), key, userID, "POST /bookings", gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.uow.Tx.ReadsMock.EXPECT().IdempotencyByKey(gomock.Any(), key, userID).
			Return(&shared.IdempotencyRecord{
				Key:         key,
				UserID:      userID,
				Status:      shared.IdempotencyProcessing,
				RequestHash: "different-request-hash",
			}, nil)

		_, err := f.commands.CreateBooking(context.Background(), input, userID, key)

		assert.ErrorIs(t, err, commands.ErrDuplicateBooking)
	})
}

func TestCompleteBooking(t *testing.T) {
	t.Run("confirmed booking completes", func(t *testing.T) {
		f := newBookingFixture(t)
		snap := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildSnapshot()

		f.uow.Tx.ReadsMock.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)
		f.uow.Tx.BookingsMock.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusCompleted, gomock.Any()).
			Return(nil)

		assert.NoError(t, f.commands.CompleteBooking(context.Background(), snap.ID))
	})

	t.Run("pending booking cannot complete", func(t *testing.T) {
		f := newBookingFixture(t)
		snap := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildSnapshot()

		f.uow.Tx.ReadsMock.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)

		err := f.commands.CompleteBooking(context.Background(), snap.ID)
		assert.ErrorIs(t, err, commands.ErrBookingNotConfirmed)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(t)
		id := uuid.New()

		f.uow.Tx.ReadsMock.EXPECT().BookingByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		err := f.commands.CompleteBooking(context.Background(), id)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
