package readstore

import (
	"context"
	"encoding/json"

	"mine-dine/internal/infra"
	"mine-dine/internal/infra/db"
	"mine-dine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view       queries.BookingView
		addOnsJSON []byte
	)
	err := s.db.QueryRow(ctx, `
		SELECT b.id, b.dinner_id, d.title, d.host_id, b.user_id,
		       b.number_of_guests, b.base_price_cents, b.add_ons_total_cents,
		       b.total_price_cents, b.selected_add_ons, b.referral_code_used,
		       b.status, b.stripe_payment_intent_id, b.created_at, b.updated_at
		FROM bookings b
		JOIN dinners d ON d.id = b.dinner_id
		WHERE b.id = $1`,
		id,
	).Scan(
		&view.ID, &view.DinnerID, &view.DinnerTitle, &view.HostID, &view.UserID,
		&view.NumberOfGuests, &view.BasePriceCents, &view.AddOnsTotalCents,
		&view.TotalPriceCents, &addOnsJSON, &view.ReferralCodeUsed,
		&view.Status, &view.PaymentIntentID, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	if len(addOnsJSON) > 0 {
		if err := json.Unmarshal(addOnsJSON, &view.SelectedAddOns); err != nil {
			return nil, infra.WrapRepoErr("failed to decode selected add-ons", err)
		}
	}
	return &view, nil
}

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT b.id, b.dinner_id, d.title, b.number_of_guests,
		       b.total_price_cents, b.status, b.created_at
		FROM bookings b
		JOIN dinners d ON d.id = b.dinner_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.DinnerID, &item.DinnerTitle, &item.NumberOfGuests,
			&item.TotalPriceCents, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return items, nil
}
