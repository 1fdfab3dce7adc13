package queries

import (
	"context"

	"mine-dine/internal/infra"
	"mine-dine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDinnerNotFound = errs.New("dinner not found")

type DinnerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DinnerView, error)
	FindPublished(ctx context.Context, limit int32) ([]*DinnerView, error)
}

type DinnerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DinnerView, error)
	ListPublished(ctx context.Context, limit int) ([]*DinnerView, error)
}

type dinnerQueriesImpl struct {
	store DinnerReadStore
}

func NewDinnerQueries(store DinnerReadStore) DinnerQueries {
	return &dinnerQueriesImpl{store: store}
}

func (q *dinnerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DinnerView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDinnerNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *dinnerQueriesImpl) ListPublished(ctx context.Context, limit int) ([]*DinnerView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.store.FindPublished(ctx, int32(limit))
}
