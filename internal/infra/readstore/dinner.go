package readstore

import (
	"context"

	"mine-dine/internal/infra"
	"mine-dine/internal/infra/db"
	"mine-dine/internal/usecase/queries"

	"github.com/google/uuid"
)

type DinnerReadStore struct {
	db db.DBTX
}

func NewDinnerReadStore(dbtx db.DBTX) *DinnerReadStore {
	return &DinnerReadStore{db: dbtx}
}

func (s *DinnerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DinnerView, error) {
	var (
		view   queries.DinnerView
		booked int
	)
	err := s.db.QueryRow(ctx, `
		SELECT d.id, d.host_id, d.title, d.max_guests, d.base_price_cents,
		       d.status, d.date_time,
		       COALESCE((
		           SELECT SUM(b.number_of_guests) FROM bookings b
		           WHERE b.dinner_id = d.id AND b.status IN ('pending', 'confirmed')
		       ), 0)
		FROM dinners d
		WHERE d.id = $1`,
		id,
	).Scan(
		&view.ID, &view.HostID, &view.Title, &view.MaxGuests, &view.BasePriceCents,
		&view.Status, &view.DateTime, &booked,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find dinner", err)
	}

	view.RemainingSeats = view.MaxGuests - booked
	if view.RemainingSeats < 0 {
		view.RemainingSeats = 0
	}

	addOns, err := s.findAddOns(ctx, id)
	if err != nil {
		return nil, err
	}
	view.AddOns = addOns
	return &view, nil
}

func (s *DinnerReadStore) FindPublished(ctx context.Context, limit int32) ([]*queries.DinnerView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT d.id, d.host_id, d.title, d.max_guests, d.base_price_cents,
		       d.status, d.date_time,
		       COALESCE((
		           SELECT SUM(b.number_of_guests) FROM bookings b
		           WHERE b.dinner_id = d.id AND b.status IN ('pending', 'confirmed')
		       ), 0)
		FROM dinners d
		WHERE d.status = 'published'
		  AND d.moderation_status = 'approved'
		  AND d.visibility = 'public'
		  AND d.date_time > now()
		ORDER BY d.date_time
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dinners", err)
	}
	defer rows.Close()

	var views []*queries.DinnerView
	for rows.Next() {
		var (
			view   queries.DinnerView
			booked int
		)
		if err := rows.Scan(
			&view.ID, &view.HostID, &view.Title, &view.MaxGuests, &view.BasePriceCents,
			&view.Status, &view.DateTime, &booked,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan dinner row", err)
		}
		view.RemainingSeats = view.MaxGuests - booked
		if view.RemainingSeats < 0 {
			view.RemainingSeats = 0
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read dinner rows", err)
	}

	for _, v := range views {
		addOns, err := s.findAddOns(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		v.AddOns = addOns
	}
	return views, nil
}

func (s *DinnerReadStore) findAddOns(ctx context.Context, dinnerID uuid.UUID) ([]queries.DinnerAddOnView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, price_cents
		FROM dinner_add_ons
		WHERE dinner_id = $1
		ORDER BY name`,
		dinnerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dinner add-ons", err)
	}
	defer rows.Close()

	var addOns []queries.DinnerAddOnView
	for rows.Next() {
		var a queries.DinnerAddOnView
		if err := rows.Scan(&a.ID, &a.Name, &a.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan add-on row", err)
		}
		addOns = append(addOns, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read add-on rows", err)
	}
	return addOns, nil
}
