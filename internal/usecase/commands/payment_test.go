//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"mine-dine/internal/domain/booking"
	"mine-dine/internal/domain/revenue"
	"mine-dine/internal/infra"
	"mine-dine/internal/pkg/clock"
	"mine-dine/internal/usecase/commands"
	"mine-dine/tests/common/builder"
	"mine-dine/tests/common/fake"
	commandsmock "mine-dine/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentFixture struct {
	ctrl     *gomock.Controller
	uow      *fake.StubUoW
	verifier *commandsmock.MockWebhookVerifier
	clock    *clock.MockClock
	commands commands.PaymentCommands
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	ctrl := gomock.NewController(t)
	uow := fake.NewStubUoW(ctrl)
	verifier := commandsmock.NewMockWebhookVerifier(ctrl)
	clk := clock.NewMockClock(time.Now())
	return &paymentFixture{
		ctrl:     ctrl,
		uow:      uow,
		verifier: verifier,
		clock:    clk,
		commands: commands.NewPaymentCommands(uow, verifier, clk),
	}
}

func (f *paymentFixture) expectVerified(event *commands.PaymentEvent) {
	f.verifier.EXPECT().VerifyEvent(gomock.Any(), gomock.Any()).Return(event, nil)
}

func TestHandleWebhook_SignatureInvalid(t *testing.T) {
	f := newPaymentFixture(t)
	f.verifier.EXPECT().VerifyEvent(gomock.Any(), "bad-sig").
		Return(nil, assert.AnError)

	err := f.commands.HandleWebhook(context.Background(), []byte("{}"), "bad-sig")

	assert.ErrorIs(t, err, commands.ErrWebhookSignatureInvalid)
}

func TestHandleWebhook_PaymentSucceeded(t *testing.T) {
	t.Run("pending booking gets confirmed once", func(t *testing.T) {
		f := newPaymentFixture(t)
		b := builder.NewBookingBuilder().
			WithStatus(booking.StatusPending).
			WithTotal(20000)
		snap := b.BuildSnapshot()

		f.expectVerified(&commands.PaymentEvent{
			Type:      commands.EventPaymentSucceeded,
			IntentID:  "pi_123",
			BookingID: snap.ID,
			Purpose:   commands.PurposeBooking,
		})

		reads := f.uow.Tx.ReadsMock
		reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)
		f.uow.Tx.BookingsMock.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusConfirmed, f.clock.Now()).
			Return(nil)
		f.uow.Tx.BookingsMock.EXPECT().
			SetPaymentIntent(gomock.Any(), gomock.Any(), snap.ID, "pi_123", f.clock.Now()).
			Return(nil)
		f.uow.Tx.NotificationsMock.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "booking_confirmed", gomock.Any(), f.clock.Now()).
			Return(nil)
		reads.EXPECT().HostOnboardedBy(gomock.Any(), snap.HostID).Return(nil, nil)

		err := f.commands.HandleWebhook(context.Background(), []byte("{}"), "sig")
		require.NoError(t, err)
	})

	t.Run("redelivery on confirmed booking skips the transition but heals shares", func(t *testing.T) {
		f := newPaymentFixture(t)
		referrer := uuid.New()
		snap := builder.NewBookingBuilder().
			WithStatus(booking.StatusConfirmed).
			WithTotal(10000).
			WithReferralModerator(referrer, "MOD-REF").
			WithPaymentIntent("pi_123").
			BuildSnapshot()

		f.expectVerified(&commands.PaymentEvent{
			Type:      commands.EventPaymentSucceeded,
			IntentID:  "pi_123",
			BookingID: snap.ID,
			Purpose:   commands.PurposeBooking,
		})

		reads := f.uow.Tx.ReadsMock
		reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)
		reads.EXPECT().HostOnboardedBy(gomock.Any(), snap.HostID).Return(nil, nil)
		f.uow.Tx.RevenueShareMock.EXPECT().
			CreateIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, share *revenue.Share) (bool, error) {
				assert.Equal(t, revenue.ShareReferral, share.ShareType())
				assert.Equal(t, referrer, share.ModeratorID())
				assert.Equal(t, int64(1000), share.AmountCents())
				return false, nil
			})

		err := f.commands.HandleWebhook(context.Background(), []byte("{}"), "sig")
		require.NoError(t, err)
	})

	t.Run("both moderator shares are written", func(t *testing.T) {
		f := newPaymentFixture(t)
		onboarder := uuid.New()
		referrer := uuid.New()
		snap := builder.NewBookingBuilder().
			WithStatus(booking.StatusPending).
			WithTotal(30000).
			WithReferralModerator(referrer, "MOD-REF").
			WithPaymentIntent("pi_123").
			BuildSnapshot()

		f.expectVerified(&commands.PaymentEvent{
			Type:      commands.EventPaymentSucceeded,
			IntentID:  "pi_123",
			BookingID: snap.ID,
			Purpose:   commands.PurposeBooking,
		})

		reads := f.uow.Tx.ReadsMock
		reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)
		f.uow.Tx.BookingsMock.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusConfirmed, gomock.Any()).
			Return(nil)
		f.uow.Tx.NotificationsMock.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "booking_confirmed", gomock.Any(), gomock.Any()).
			Return(nil)
		reads.EXPECT().HostOnboardedBy(gomock.Any(), snap.HostID).Return(&onboarder, nil)

		var got []*revenue.Share
		f.uow.Tx.RevenueShareMock.EXPECT().
			CreateIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, share *revenue.Share) (bool, error) {
				got = append(got, share)
				return true, nil
			}).Times(2)

		err := f.commands.HandleWebhook(context.Background(), []byte("{}"), "sig")
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, revenue.ShareOnboarding, got[0].ShareType())
		assert.Equal(t, onboarder, got[0].ModeratorID())
		assert.Equal(t, revenue.ShareReferral, got[1].ShareType())
		assert.Equal(t, referrer, got[1].ModeratorID())
		assert.Equal(t, int64(3000), got[0].AmountCents())
		assert.Equal(t, int64(3000), got[1].AmountCents())
	})

	t.Run("late success for a cancelled booking distributes nothing", func(t *testing.T) {
		f := newPaymentFixture(t)
		referrer := uuid.New()
		snap := builder.NewBookingBuilder().
			WithStatus(booking.StatusCancelled).
			WithTotal(10000).
			WithReferralModerator(referrer, "MOD-REF").
			BuildSnapshot()

		f.expectVerified(&commands.PaymentEvent{
			Type:      commands.EventPaymentSucceeded,
			IntentID:  "pi_123",
			BookingID: snap.ID,
			Purpose:   commands.PurposeBooking,
		})

		// The expiry sweep already cancelled this booking; the delivery is
		// acked without a status change and without any share writes.
		f.uow.Tx.ReadsMock.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)

		err := f.commands.HandleWebhook(context.Background(), []byte("{}"), "sig")
		require.NoError(t, err)
	})

	t.Run("unknown booking is acked so the processor stops retrying", func(t *testing.T) {
		f := newPaymentFixture(t)
		bookingID := uuid.New()

		f.expectVerified(&commands.PaymentEvent{
			Type:      commands.EventPaymentSucceeded,
			BookingID: bookingID,
			Purpose:   commands.PurposeBooking,
		})
		f.uow.Tx.ReadsMock.EXPECT().BookingByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		err := f.commands.HandleWebhook(context.Background(), []byte("{}"), "sig")
		assert.NoError(t, err)
	})

	t.Run("succeeded tip event marks the intent", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.expectVerified(&commands.PaymentEvent{
			Type:     commands.EventPaymentSucceeded,
			IntentID: "pi_tip",
			Purpose:  commands.PurposeTip,
		})
		f.uow.Tx.TipIntentsMock.EXPECT().
			MarkSucceeded(gomock.Any(), gomock.Any(), "pi_tip", f.clock.Now()).
			Return(nil)

		err := f.commands.HandleWebhook(context.Background(), []byte("{}"), "sig")
		assert.NoError(t, err)
	})
}

func TestHandleWebhook_PaymentFailed(t *testing.T) {
	t.Run("pending booking gets cancelled", func(t *testing.T) {
		f := newPaymentFixture(t)
		snap := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildSnapshot()

		f.expectVerified(&commands.PaymentEvent{
			Type:      commands.EventPaymentFailed,
			BookingID: snap.ID,
			Purpose:   commands.PurposeBooking,
		})
		f.uow.Tx.ReadsMock.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)
		f.uow.Tx.BookingsMock.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusCancelled, gomock.Any()).
			Return(nil)
		f.uow.Tx.NotificationsMock.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "booking_cancelled", gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.commands.HandleWebhook(context.Background(), []byte("{}"), "sig")
		assert.NoError(t, err)
	})

	t.Run("confirmed booking is untouched by a late failure event", func(t *testing.T) {
		f := newPaymentFixture(t)
		snap := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildSnapshot()

		f.expectVerified(&commands.PaymentEvent{
			Type:      commands.EventPaymentFailed,
			BookingID: snap.ID,
			Purpose:   commands.PurposeBooking,
		})
		f.uow.Tx.ReadsMock.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)

		err := f.commands.HandleWebhook(context.Background(), []byte("{}"), "sig")
		assert.NoError(t, err)
	})

	t.Run("failed tip event leaves the intent pending", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.expectVerified(&commands.PaymentEvent{
			Type:    commands.EventPaymentFailed,
			Purpose: commands.PurposeTip,
		})

		err := f.commands.HandleWebhook(context.Background(), []byte("{}"), "sig")
		assert.NoError(t, err)
	})
}

func TestHandleWebhook_IgnoredEventType(t *testing.T) {
	f := newPaymentFixture(t)
	f.expectVerified(&commands.PaymentEvent{
		Type:    commands.EventIgnored,
		RawType: "charge.refunded",
	})

	err := f.commands.HandleWebhook(context.Background(), []byte("{}"), "sig")
	assert.NoError(t, err)
}
