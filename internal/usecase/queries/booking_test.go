//go:build unit

package queries_test

import (
	"context"
	"testing"

	"mine-dine/internal/domain/user"
	"mine-dine/internal/infra"
	"mine-dine/internal/usecase/queries"
	queriesmock "mine-dine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueriesGetByID(t *testing.T) {
	guestID := uuid.New()
	hostID := uuid.New()

	newQueries := func(t *testing.T) (queries.BookingQueries, *queriesmock.MockBookingReadStore) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		return queries.NewBookingQueries(store), store
	}

	view := func(id uuid.UUID) *queries.BookingView {
		return &queries.BookingView{ID: id, UserID: guestID, HostID: hostID, Status: "confirmed"}
	}

	t.Run("guest sees their own booking", func(t *testing.T) {
		q, store := newQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(view(id), nil)

		got, err := q.GetByID(context.Background(), guestID, user.RoleGuest, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("host sees bookings for their dinner", func(t *testing.T) {
		q, store := newQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(view(id), nil)

		_, err := q.GetByID(context.Background(), hostID, user.RoleHost, id)
		assert.NoError(t, err)
	})

	t.Run("staff sees any booking", func(t *testing.T) {
		q, store := newQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(view(id), nil)

		_, err := q.GetByID(context.Background(), uuid.New(), user.RoleStaff, id)
		assert.NoError(t, err)
	})

	t.Run("unrelated guest cannot see the booking", func(t *testing.T) {
		q, store := newQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(view(id), nil)

		_, err := q.GetByID(context.Background(), uuid.New(), user.RoleGuest, id)
		assert.ErrorIs(t, err, queries.ErrBookingHidden)
	})

	t.Run("missing booking", func(t *testing.T) {
		q, store := newQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), guestID, user.RoleGuest, id)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("system lookup skips the visibility check", func(t *testing.T) {
		q, store := newQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(view(id), nil)

		_, err := q.GetByIDSystem(context.Background(), id)
		assert.NoError(t, err)
	})
}

func TestBookingQueriesListByUser(t *testing.T) {
	newQueries := func(t *testing.T) (queries.BookingQueries, *queriesmock.MockBookingReadStore) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		return queries.NewBookingQueries(store), store
	}

	t.Run("passes the limit through", func(t *testing.T) {
		q, store := newQueries(t)
		userID := uuid.New()
		store.EXPECT().FindByUserID(gomock.Any(), userID, int32(20)).Return(nil, nil)

		_, err := q.ListByUser(context.Background(), userID, 20)
		assert.NoError(t, err)
	})

	t.Run("clamps an out-of-range limit", func(t *testing.T) {
		q, store := newQueries(t)
		userID := uuid.New()
		store.EXPECT().FindByUserID(gomock.Any(), userID, int32(50)).Return(nil, nil)

		_, err := q.ListByUser(context.Background(), userID, -1)
		assert.NoError(t, err)
	})
}
