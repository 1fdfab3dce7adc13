//go:build unit || e2e

// Package fake provides an in-memory unit-of-work harness for command tests.
// Within and WithDB just invoke the callback; the repositories behind the Tx
// are gomock mocks wired up per test.
package fake

import (
	"context"

	"mine-dine/internal/infra/db"
	"mine-dine/internal/usecase/shared"
	sharedmock "mine-dine/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

type StubTx struct {
	BookingsMock      *sharedmock.MockBookingRepository
	ReviewsMock       *sharedmock.MockReviewRepository
	GuestReviewsMock  *sharedmock.MockGuestReviewRepository
	RevenueShareMock  *sharedmock.MockRevenueShareRepository
	TipIntentsMock    *sharedmock.MockTipIntentRepository
	IdempotencyMock   *sharedmock.MockIdempotencyRepository
	NotificationsMock *sharedmock.MockNotificationRepository
	ReadsMock         *sharedmock.MockCommandReads
}

func NewStubTx(ctrl *gomock.Controller) *StubTx {
	return &StubTx{
		BookingsMock:      sharedmock.NewMockBookingRepository(ctrl),
		ReviewsMock:       sharedmock.NewMockReviewRepository(ctrl),
		GuestReviewsMock:  sharedmock.NewMockGuestReviewRepository(ctrl),
		RevenueShareMock:  sharedmock.NewMockRevenueShareRepository(ctrl),
		TipIntentsMock:    sharedmock.NewMockTipIntentRepository(ctrl),
		IdempotencyMock:   sharedmock.NewMockIdempotencyRepository(ctrl),
		NotificationsMock: sharedmock.NewMockNotificationRepository(ctrl),
		ReadsMock:         sharedmock.NewMockCommandReads(ctrl),
	}
}

func (t *StubTx) Bookings() shared.BookingRepository           { return t.BookingsMock }
func (t *StubTx) Reviews() shared.ReviewRepository             { return t.ReviewsMock }
func (t *StubTx) GuestReviews() shared.GuestReviewRepository   { return t.GuestReviewsMock }
func (t *StubTx) RevenueShares() shared.RevenueShareRepository { return t.RevenueShareMock }
func (t *StubTx) TipIntents() shared.TipIntentRepository       { return t.TipIntentsMock }
func (t *StubTx) Idempotency() shared.IdempotencyRepository    { return t.IdempotencyMock }
func (t *StubTx) Notifications() shared.NotificationRepository { return t.NotificationsMock }
func (t *StubTx) Reads() shared.CommandReads                   { return t.ReadsMock }
func (t *StubTx) DB() db.DBTX                                  { return nil }

type StubUoW struct {
	Tx *StubTx
	// OuterReads serves CommandReads() calls made outside a transaction.
	OuterReads *sharedmock.MockCommandReads
	// WithinErr, when set, fails Within before the callback runs.
	WithinErr error
}

func NewStubUoW(ctrl *gomock.Controller) *StubUoW {
	return &StubUoW{
		Tx:         NewStubTx(ctrl),
		OuterReads: sharedmock.NewMockCommandReads(ctrl),
	}
}

func (u *StubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.WithinErr != nil {
		return u.WithinErr
	}
	return fn(ctx, u.Tx)
}

func (u *StubUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *StubUoW) CommandReads() shared.CommandReads {
	return u.OuterReads
}
