package repository

import (
	"context"

	"mine-dine/internal/domain/review"
	"mine-dine/internal/infra"
	"mine-dine/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// Create relies on the unique constraint on booking_id for the
// one-review-per-booking invariant.
func (r *ReviewRepository) Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	stars := rev.Stars()

	var comment *string
	if rev.Comment() != "" {
		c := rev.Comment()
		comment = &c
	}

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
		INSERT INTO reviews (
			id, booking_id, user_id, host_id,
			hospitality_stars, cleanliness_stars, taste_stars,
			tip_stars, tip_amount_cents, tip_payment_intent_id,
			comment, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		rev.ID(), rev.BookingID(), rev.UserID(), rev.HostID(),
		stars.Hospitality, stars.Cleanliness, stars.Taste,
		stars.Tip, rev.TipAmountCents(), rev.TipPaymentIntentID(),
		comment, rev.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

type GuestReviewRepository struct{}

func NewGuestReviewRepository() *GuestReviewRepository {
	return &GuestReviewRepository{}
}

func (r *GuestReviewRepository) Create(ctx context.Context, dbtx db.DBTX, gr *review.GuestReview) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
		INSERT INTO guest_reviews (id, booking_id, host_id, guest_id, sentiment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		gr.ID(), gr.BookingID(), gr.HostID(), gr.GuestID(), gr.Sentiment().String(), gr.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create guest review", err)
	}
	return id, nil
}
