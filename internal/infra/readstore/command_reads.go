package readstore

import (
	"context"

	"mine-dine/internal/domain/booking"
	"mine-dine/internal/domain/dinner"
	"mine-dine/internal/infra"
	"mine-dine/internal/infra/db"
	"mine-dine/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the validation reads commands need. It is bound to a
// DBTX so the same implementation works on the pool and inside a transaction,
// which is what makes DinnerForUpdate meaningful.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

const dinnerSnapshotColumns = `
	id, host_id, title, max_guests, base_price_cents,
	status, moderation_status, visibility, date_time`

func (r *CommandReads) DinnerForUpdate(ctx context.Context, id uuid.UUID) (*shared.DinnerSnapshot, error) {
	return r.dinnerByID(ctx, id, true)
}

func (r *CommandReads) DinnerByID(ctx context.Context, id uuid.UUID) (*shared.DinnerSnapshot, error) {
	return r.dinnerByID(ctx, id, false)
}

func (r *CommandReads) dinnerByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*shared.DinnerSnapshot, error) {
	query := `SELECT ` + dinnerSnapshotColumns + ` FROM dinners WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var snap shared.DinnerSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.HostID, &snap.Title, &snap.MaxGuests, &snap.BasePriceCents,
		&snap.Status, &snap.ModerationStatus, &snap.Visibility, &snap.DateTime,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find dinner", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, price_cents
		FROM dinner_add_ons
		WHERE dinner_id = $1`,
		id,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find dinner add-ons", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a dinner.AddOn
		if err := rows.Scan(&a.ID, &a.Name, &a.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan add-on row", err)
		}
		snap.AddOns = append(snap.AddOns, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read add-on rows", err)
	}
	return &snap, nil
}

func (r *CommandReads) ActiveGuestCount(ctx context.Context, dinnerID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(number_of_guests), 0)
		FROM bookings
		WHERE dinner_id = $1 AND status IN ('pending', 'confirmed')`,
		dinnerID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active guests", err)
	}
	return count, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap   shared.BookingSnapshot
		status string
	)
	err := r.db.QueryRow(ctx, `
		SELECT b.id, b.user_id, b.dinner_id, d.host_id, b.number_of_guests,
		       b.total_price_cents, b.referral_moderator_id, b.status, b.stripe_payment_intent_id
		FROM bookings b
		JOIN dinners d ON d.id = b.dinner_id
		WHERE b.id = $1`,
		id,
	).Scan(
		&snap.ID, &snap.UserID, &snap.DinnerID, &snap.HostID, &snap.NumberOfGuests,
		&snap.TotalPriceCents, &snap.ReferralModeratorID, &status, &snap.PaymentIntentID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	snap.Status = booking.Status(status)
	if !snap.Status.IsValid() {
		return nil, infra.WrapRepoErr("invalid booking status in store", nil, infra.KindDBFailure)
	}
	return &snap, nil
}

func (r *CommandReads) ModeratorByReferralCode(ctx context.Context, code string) (*shared.ModeratorSnapshot, error) {
	var snap shared.ModeratorSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, referral_code, active
		FROM moderators
		WHERE referral_code = $1`,
		code,
	).Scan(&snap.ID, &snap.UserID, &snap.ReferralCode, &snap.Active)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find moderator by referral code", err)
	}
	return &snap, nil
}

func (r *CommandReads) HostOnboardedBy(ctx context.Context, hostID uuid.UUID) (*uuid.UUID, error) {
	var moderatorID *uuid.UUID
	err := r.db.QueryRow(ctx, `
		SELECT onboarded_by_id
		FROM host_applications
		WHERE host_id = $1 AND status = 'approved'
		ORDER BY approved_at DESC
		LIMIT 1`,
		hostID,
	).Scan(&moderatorID)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find host onboarding moderator", err)
	}
	return moderatorID, nil
}

func (r *CommandReads) TipIntentByID(ctx context.Context, intentID string) (*shared.TipIntentSnapshot, error) {
	var snap shared.TipIntentSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT payment_intent_id, booking_id, amount_cents, status
		FROM tip_intents
		WHERE payment_intent_id = $1`,
		intentID,
	).Scan(&snap.IntentID, &snap.BookingID, &snap.AmountCents, &snap.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tip intent", err)
	}
	return &snap, nil
}

func (r *CommandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	var rec shared.IdempotencyRecord
	err := r.db.QueryRow(ctx, `
		SELECT key, user_id, status, request_hash, result_booking_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2`,
		key, userID,
	).Scan(&rec.Key, &rec.UserID, &rec.Status, &rec.RequestHash, &rec.ResultBookingID, &rec.ExpiresAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find idempotency record", err)
	}
	return &rec, nil
}
