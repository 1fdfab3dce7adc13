package shared

import (
	"context"
	"time"

	"mine-dine/internal/domain/booking"
	"mine-dine/internal/domain/revenue"
	"mine-dine/internal/domain/review"
	"mine-dine/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: validation reads outside an explicit transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Reviews() ReviewRepository
	GuestReviews() GuestReviewRepository
	RevenueShares() RevenueShareRepository
	TipIntents() TipIntentRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	// DinnerForUpdate locks the dinner row so the capacity check and the
	// booking insert are atomic against concurrent bookings.
	DinnerForUpdate(ctx context.Context, id uuid.UUID) (*DinnerSnapshot, error)
	DinnerByID(ctx context.Context, id uuid.UUID) (*DinnerSnapshot, error)
	// ActiveGuestCount sums guests of PENDING and CONFIRMED bookings.
	ActiveGuestCount(ctx context.Context, dinnerID uuid.UUID) (int, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ModeratorByReferralCode(ctx context.Context, code string) (*ModeratorSnapshot, error)
	// HostOnboardedBy resolves the moderator recorded on the host's approved
	// application, if any.
	HostOnboardedBy(ctx context.Context, hostID uuid.UUID) (*uuid.UUID, error)
	TipIntentByID(ctx context.Context, intentID string) (*TipIntentSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	Create(ctx context.Context, db db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, status booking.Status, now time.Time) error
	SetPaymentIntent(ctx context.Context, db db.DBTX, id uuid.UUID, intentID string, now time.Time) error
	// CancelStalePending flips PENDING bookings created before the cutoff to
	// CANCELLED and returns their ids.
	CancelStalePending(ctx context.Context, db db.DBTX, cutoff time.Time, limit int32) ([]uuid.UUID, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, db db.DBTX, rev *review.Review) (uuid.UUID, error)
}

type GuestReviewRepository interface {
	Create(ctx context.Context, db db.DBTX, gr *review.GuestReview) (uuid.UUID, error)
}

type RevenueShareRepository interface {
	// CreateIfAbsent inserts the share unless one of the same type already
	// exists for the booking. Returns false on the duplicate path.
	CreateIfAbsent(ctx context.Context, db db.DBTX, share *revenue.Share) (bool, error)
}

type TipIntentRepository interface {
	Create(ctx context.Context, db db.DBTX, intentID string, bookingID uuid.UUID, amountCents int64, now time.Time) error
	MarkSucceeded(ctx context.Context, db db.DBTX, intentID string, now time.Time) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key with status processing. Returns false when the
	// key already exists, in which case the caller inspects the stored record.
	TryInsert(ctx context.Context, db db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, db db.DBTX, key, userID uuid.UUID, responseHash string, resultBookingID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, db db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
