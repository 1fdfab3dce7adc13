package queries

import (
	"context"

	"mine-dine/internal/infra"
	"mine-dine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID, limit int32) ([]*ReviewView, error)
}

type GuestReviewReadStore interface {
	CountSentiments(ctx context.Context, guestID uuid.UUID) (likes, dislikes int, err error)
	FindRecentByGuestID(ctx context.Context, guestID uuid.UUID, limit int32) ([]*GuestReviewListItem, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, limit int) ([]*ReviewView, error)
	GuestReputation(ctx context.Context, guestID uuid.UUID) (*GuestReputationView, error)
}

type reviewQueriesImpl struct {
	reviews      ReviewReadStore
	guestReviews GuestReviewReadStore
}

func NewReviewQueries(reviews ReviewReadStore, guestReviews GuestReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews, guestReviews: guestReviews}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	view, err := q.reviews.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListByHost(ctx context.Context, hostID uuid.UUID, limit int) ([]*ReviewView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.reviews.FindByHostID(ctx, hostID, int32(limit))
}

func (q *reviewQueriesImpl) GuestReputation(ctx context.Context, guestID uuid.UUID) (*GuestReputationView, error) {
	likes, dislikes, err := q.guestReviews.CountSentiments(ctx, guestID)
	if err != nil {
		return nil, err
	}

	recent, err := q.guestReviews.FindRecentByGuestID(ctx, guestID, 10)
	if err != nil {
		return nil, err
	}

	var pct float64
	if likes+dislikes > 0 {
		pct = float64(likes) / float64(likes+dislikes) * 100
	}

	return &GuestReputationView{
		GuestID:        guestID,
		Likes:          likes,
		Dislikes:       dislikes,
		LikePercentage: pct,
		Recent:         recent,
	}, nil
}
