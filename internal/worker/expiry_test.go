//go:build unit

package worker_test

import (
	"context"
	"testing"
	"time"

	"mine-dine/internal/pkg/clock"
	"mine-dine/internal/pkg/config"
	"mine-dine/internal/worker"
	"mine-dine/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSweeper(t *testing.T) (*worker.ExpirySweeper, *fake.StubUoW, *clock.MockClock) {
	ctrl := gomock.NewController(t)
	uow := fake.NewStubUoW(ctrl)
	clk := clock.NewMockClock(time.Now())
	sweeper := worker.NewExpirySweeper(uow, clk, config.BookingConfig{
		PendingTTL:    30 * time.Minute,
		SweepInterval: 5 * time.Minute,
	})
	return sweeper, uow, clk
}

func TestSweepOnce(t *testing.T) {
	t.Run("cancels stale bookings and queues expiry notifications", func(t *testing.T) {
		sweeper, uow, clk := newSweeper(t)
		stale := []uuid.UUID{uuid.New(), uuid.New()}
		cutoff := clk.Now().Add(-30 * time.Minute)

		uow.Tx.BookingsMock.EXPECT().
			CancelStalePending(gomock.Any(), gomock.Any(), cutoff, int32(100)).
			Return(stale, nil)
		uow.Tx.NotificationsMock.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "email", "booking_expired", gomock.Any(), clk.Now()).
			Return(nil).
			Times(len(stale))

		require.NoError(t, sweeper.SweepOnce(context.Background()))
	})

	t.Run("no stale bookings means no jobs", func(t *testing.T) {
		sweeper, uow, _ := newSweeper(t)

		uow.Tx.BookingsMock.EXPECT().
			CancelStalePending(gomock.Any(), gomock.Any(), gomock.Any(), int32(100)).
			Return(nil, nil)

		require.NoError(t, sweeper.SweepOnce(context.Background()))
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		sweeper, uow, _ := newSweeper(t)

		uow.Tx.BookingsMock.EXPECT().
			CancelStalePending(gomock.Any(), gomock.Any(), gomock.Any(), int32(100)).
			Return(nil, assert.AnError)

		assert.Error(t, sweeper.SweepOnce(context.Background()))
	})
}
