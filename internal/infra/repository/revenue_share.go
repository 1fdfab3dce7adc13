package repository

import (
	"context"

	"mine-dine/internal/domain/revenue"
	"mine-dine/internal/infra"
	"mine-dine/internal/infra/db"
)

type RevenueShareRepository struct{}

func NewRevenueShareRepository() *RevenueShareRepository {
	return &RevenueShareRepository{}
}

// CreateIfAbsent leans on the UNIQUE(booking_id, share_type) constraint so
// webhook replays never double-credit a moderator. Returns false when the
// share already existed.
func (r *RevenueShareRepository) CreateIfAbsent(ctx context.Context, dbtx db.DBTX, share *revenue.Share) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
		INSERT INTO revenue_shares (
			id, moderator_id, booking_id, amount_cents, share_type, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (booking_id, share_type) DO NOTHING`,
		share.ID(), share.ModeratorID(), share.BookingID(),
		share.AmountCents(), share.ShareType().String(), share.Status().String(),
		share.CreatedAt(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to create revenue share", err)
	}
	return tag.RowsAffected() == 1, nil
}
