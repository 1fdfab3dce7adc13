package repository

import (
	"context"
	"time"

	"mine-dine/internal/infra"
	"mine-dine/internal/infra/db"
	"mine-dine/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryInsert claims the key. The ON CONFLICT guard makes the first writer win;
// everyone else gets claimed=false and must inspect the stored record. Expired
// rows are reclaimed in place rather than waiting for a sweep.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (key, user_id) DO UPDATE
		SET endpoint = EXCLUDED.endpoint,
		    request_hash = EXCLUDED.request_hash,
		    status = EXCLUDED.status,
		    expires_at = EXCLUDED.expires_at,
		    response_hash = NULL,
		    result_booking_id = NULL,
		    created_at = now()
		WHERE idempotency_keys.expires_at < now()`,
		key, userID, endpoint, requestHash, shared.IdempotencyProcessing, expiresAt,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, responseHash string, resultBookingID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE idempotency_keys
		SET status = $3, response_hash = $4, result_booking_id = $5
		WHERE key = $1 AND user_id = $2`,
		key, userID, shared.IdempotencyCompleted, responseHash, resultBookingID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}
