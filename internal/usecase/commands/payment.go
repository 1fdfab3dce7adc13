package commands

import (
	"context"
	"log/slog"

	"mine-dine/internal/domain/booking"
	"mine-dine/internal/domain/revenue"
	"mine-dine/internal/infra"
	"mine-dine/internal/pkg/clock"
	"mine-dine/internal/pkg/errs"
	"mine-dine/internal/usecase/shared"
)

var ErrWebhookSignatureInvalid = errs.New("webhook signature verification failed")

type PaymentCommands interface {
	// HandleWebhook verifies and applies one delivery from the payment
	// processor. Deliveries are at-least-once; every path is replay-safe.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	verifier WebhookVerifier
	clock    clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, verifier WebhookVerifier, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		verifier: verifier,
		clock:    clk,
	}
}

func (c *paymentCommandsImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := c.verifier.VerifyEvent(payload, signature)
	if err != nil {
		return errs.Mark(err, ErrWebhookSignatureInvalid)
	}

	switch event.Type {
	case EventPaymentSucceeded:
		if event.Purpose == PurposeTip {
			return c.markTipSucceeded(ctx, event)
		}
		return c.confirmBooking(ctx, event)

	case EventPaymentFailed:
		if event.Purpose == PurposeTip {
			// Tip intents stay pending; the review path rejects them.
			return nil
		}
		return c.cancelBooking(ctx, event)

	default:
		// At-least-once delivery includes event types this service never
		// subscribes to; ack them so the processor stops retrying.
		slog.Info("ignoring webhook event", "type", event.RawType)
		return nil
	}
}

func (c *paymentCommandsImpl) confirmBooking(ctx context.Context, event *PaymentEvent) error {
	var snap *shared.BookingSnapshot
	var confirmed bool

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Reads().BookingByID(ctx, event.BookingID)
		if err != nil {
			return err
		}
		snap = s

		switch s.Status {
		case booking.StatusConfirmed:
			// Redelivery of an already-applied event.
			confirmed = true
			return nil
		case booking.StatusPending:
			if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), s.ID, booking.StatusConfirmed, c.clock.Now()); err != nil {
				return err
			}
			if s.PaymentIntentID == nil {
				if err := tx.Bookings().SetPaymentIntent(ctx, tx.DB(), s.ID, event.IntentID, c.clock.Now()); err != nil {
					return err
				}
			}
			confirmed = true
			return createNotificationJob(ctx, tx, "booking_confirmed", s.ID, c.clock.Now())
		default:
			// A late success for a booking already CANCELLED (expiry sweep)
			// or COMPLETED through another path. Ack without confirming; the
			// payment needs operator follow-up, not a share payout.
			slog.Warn("payment succeeded for booking in final state",
				"booking_id", s.ID, "status", s.Status.String())
			return nil
		}
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Permanently unknown booking; retrying the delivery cannot help.
			slog.Warn("webhook references unknown booking", "booking_id", event.BookingID)
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !confirmed {
		return nil
	}

	// Revenue distribution runs after the confirm commits and never rolls it
	// back: the payment already succeeded, bookkeeping is secondary. Running
	// it on replays too lets redeliveries heal a previously failed pass, but
	// it is only ever reached from a CONFIRMED booking.
	if err := c.distributeRevenue(ctx, snap); err != nil {
		slog.Error("revenue share distribution failed",
			"booking_id", snap.ID, "error", err.Error())
	}
	return nil
}

func (c *paymentCommandsImpl) distributeRevenue(ctx context.Context, snap *shared.BookingSnapshot) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		onboardedBy, err := tx.Reads().HostOnboardedBy(ctx, snap.HostID)
		if err != nil {
			return err
		}

		specs := revenue.ComputeShares(snap.TotalPriceCents, revenue.Attribution{
			OnboardedByID:       onboardedBy,
			ReferralModeratorID: snap.ReferralModeratorID,
		})

		for _, spec := range specs {
			share := revenue.NewShare(spec.ModeratorID, snap.ID, spec.AmountCents, spec.ShareType, c.clock.Now())
			created, err := tx.RevenueShares().CreateIfAbsent(ctx, tx.DB(), share)
			if err != nil {
				return err
			}
			if !created {
				slog.Debug("revenue share already recorded",
					"booking_id", snap.ID, "share_type", spec.ShareType.String())
			}
		}
		return nil
	})
}

func (c *paymentCommandsImpl) cancelBooking(ctx context.Context, event *PaymentEvent) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Reads().BookingByID(ctx, event.BookingID)
		if err != nil {
			return err
		}

		switch s.Status {
		case booking.StatusCancelled:
			return nil
		case booking.StatusPending:
			if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), s.ID, booking.StatusCancelled, c.clock.Now()); err != nil {
				return err
			}
			return createNotificationJob(ctx, tx, "booking_cancelled", s.ID, c.clock.Now())
		default:
			slog.Warn("payment failed for booking not pending",
				"booking_id", s.ID, "status", s.Status.String())
			return nil
		}
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("webhook references unknown booking", "booking_id", event.BookingID)
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *paymentCommandsImpl) markTipSucceeded(ctx context.Context, event *PaymentEvent) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.TipIntents().MarkSucceeded(ctx, tx.DB(), event.IntentID, c.clock.Now())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("webhook references unknown tip intent", "intent_id", event.IntentID)
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
