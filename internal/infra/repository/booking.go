package repository

import (
	"context"
	"encoding/json"
	"time"

	"mine-dine/internal/domain/booking"
	"mine-dine/internal/infra"
	"mine-dine/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	selections, err := json.Marshal(b.SelectedAddOns())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode selected add-ons", err)
	}

	quote := b.Quote()
	var id uuid.UUID
	err = dbtx.QueryRow(ctx, `
		INSERT INTO bookings (
			id, user_id, dinner_id, number_of_guests,
			base_price_cents, add_ons_total_cents, total_price_cents,
			selected_add_ons, referral_code_used, referral_moderator_id,
			status, stripe_payment_intent_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		b.ID(), b.UserID(), b.DinnerID(), b.NumberOfGuests(),
		quote.BasePriceCents, quote.AddOnsTotalCents, quote.TotalPriceCents,
		selections, b.ReferralCodeUsed(), b.ReferralModeratorID(),
		b.Status().String(), b.PaymentIntentID(), b.CreatedAt(), b.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status, now time.Time) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status.String(), now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) SetPaymentIntent(ctx context.Context, dbtx db.DBTX, id uuid.UUID, intentID string, now time.Time) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE bookings SET stripe_payment_intent_id = $2, updated_at = $3 WHERE id = $1`,
		id, intentID, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set payment intent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) CancelStalePending(ctx context.Context, dbtx db.DBTX, cutoff time.Time, limit int32) ([]uuid.UUID, error) {
	rows, err := dbtx.Query(ctx, `
		UPDATE bookings SET status = 'cancelled', updated_at = now()
		WHERE id IN (
			SELECT id FROM bookings
			WHERE status = 'pending' AND created_at < $1
			ORDER BY created_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id`,
		cutoff, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to cancel stale pending bookings", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cancelled booking id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cancelled bookings", err)
	}
	return ids, nil
}
