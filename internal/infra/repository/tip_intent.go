package repository

import (
	"context"
	"time"

	"mine-dine/internal/infra"
	"mine-dine/internal/infra/db"

	"github.com/google/uuid"
)

type TipIntentRepository struct{}

func NewTipIntentRepository() *TipIntentRepository {
	return &TipIntentRepository{}
}

func (r *TipIntentRepository) Create(ctx context.Context, dbtx db.DBTX, intentID string, bookingID uuid.UUID, amountCents int64, now time.Time) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO tip_intents (payment_intent_id, booking_id, amount_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, 'pending', $4, $4)`,
		intentID, bookingID, amountCents, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create tip intent", err)
	}
	return nil
}

func (r *TipIntentRepository) MarkSucceeded(ctx context.Context, dbtx db.DBTX, intentID string, now time.Time) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE tip_intents
		SET status = 'succeeded', updated_at = $2
		WHERE payment_intent_id = $1`,
		intentID, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark tip intent succeeded", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tip intent not found", nil, infra.KindNotFound)
	}
	return nil
}
