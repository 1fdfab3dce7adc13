package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"mine-dine/internal/pkg/clock"
	"mine-dine/internal/pkg/config"
	"mine-dine/internal/usecase/shared"
)

const expiryBatchSize = 100

// ExpirySweeper cancels PENDING bookings whose payment never arrived, freeing
// the seats they hold against dinner capacity.
type ExpirySweeper struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	ttl   time.Duration
	every time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewExpirySweeper(uow shared.UnitOfWork, clk clock.Clock, cfg config.BookingConfig) *ExpirySweeper {
	return &ExpirySweeper{
		uow:   uow,
		clock: clk,
		ttl:   cfg.PendingTTL,
		every: cfg.SweepInterval,
	}
}

func (s *ExpirySweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.SweepOnce(ctx); err != nil {
					slog.Error("pending booking sweep failed", "error", err.Error())
				}
			}
		}
	}()
}

func (s *ExpirySweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

// SweepOnce cancels one batch of stale bookings. Batches keep the row locks
// short; the next tick picks up whatever is left.
func (s *ExpirySweeper) SweepOnce(ctx context.Context) error {
	cutoff := s.clock.Now().Add(-s.ttl)

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Bookings().CancelStalePending(ctx, tx.DB(), cutoff, expiryBatchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		for _, id := range ids {
			payload, err := json.Marshal(map[string]any{
				"booking_id": id,
				"type":       "booking_expired",
			})
			if err != nil {
				return err
			}
			if err := tx.Notifications().CreateJob(ctx, tx.DB(), "email", "booking_expired", payload, s.clock.Now()); err != nil {
				return err
			}
		}

		slog.Info("cancelled stale pending bookings", "count", len(ids), "cutoff", cutoff)
		return nil
	})
}
