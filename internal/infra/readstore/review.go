package readstore

import (
	"context"

	"mine-dine/internal/infra"
	"mine-dine/internal/infra/db"
	"mine-dine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewColumns = `
	id, booking_id, user_id, host_id,
	hospitality_stars, cleanliness_stars, taste_stars,
	tip_stars, tip_amount_cents, comment, created_at`

func (s *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews
		WHERE id = $1`,
		id,
	)
	view, err := scanReview(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	return view, nil
}

func (s *ReviewReadStore) FindByHostID(ctx context.Context, hostID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews
		WHERE host_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		hostID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var views []*queries.ReviewView
	for rows.Next() {
		view, err := scanReview(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (*queries.ReviewView, error) {
	var view queries.ReviewView
	err := row.Scan(
		&view.ID, &view.BookingID, &view.UserID, &view.HostID,
		&view.HospitalityStars, &view.CleanlinessStars, &view.TasteStars,
		&view.TipStars, &view.TipAmountCents, &view.Comment, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

type GuestReviewReadStore struct {
	db db.DBTX
}

func NewGuestReviewReadStore(dbtx db.DBTX) *GuestReviewReadStore {
	return &GuestReviewReadStore{db: dbtx}
}

func (s *GuestReviewReadStore) CountSentiments(ctx context.Context, guestID uuid.UUID) (int, int, error) {
	var likes, dislikes int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE sentiment = 'like'),
		       COUNT(*) FILTER (WHERE sentiment = 'dislike')
		FROM guest_reviews
		WHERE guest_id = $1`,
		guestID,
	).Scan(&likes, &dislikes)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count guest sentiments", err)
	}
	return likes, dislikes, nil
}

func (s *GuestReviewReadStore) FindRecentByGuestID(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.GuestReviewListItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, booking_id, host_id, sentiment, created_at
		FROM guest_reviews
		WHERE guest_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		guestID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guest reviews", err)
	}
	defer rows.Close()

	var items []*queries.GuestReviewListItem
	for rows.Next() {
		var item queries.GuestReviewListItem
		if err := rows.Scan(&item.ID, &item.BookingID, &item.HostID, &item.Sentiment, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest review row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read guest review rows", err)
	}
	return items, nil
}
