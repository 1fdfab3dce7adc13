package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"mine-dine/internal/infra"
	"mine-dine/internal/infra/db"
	"mine-dine/internal/infra/mail"
	"mine-dine/internal/infra/repository"
	"mine-dine/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	notifyBatchSize   = 20
	notifyMaxAttempts = 5
	notifyRetryDelay  = 2 * time.Minute
	notifyPollEvery   = 10 * time.Second
)

var notificationSubjects = map[string]string{
	"booking_created":   "Your booking is awaiting payment",
	"booking_confirmed": "Your booking is confirmed",
	"booking_cancelled": "Your booking was cancelled",
	"booking_expired":   "Your booking expired",
}

// Notifier drains the notification_jobs outbox and delivers email.
// Delivery is best effort; a dead job never blocks the booking flow.
type Notifier struct {
	pool   db.DBTX
	jobs   *repository.NotificationRepository
	mailer mail.Mailer
	clock  clock.Clock

	cancel context.CancelFunc
	done   chan struct{}
}

func NewNotifier(pool db.DBTX, jobs *repository.NotificationRepository, mailer mail.Mailer, clk clock.Clock) *Notifier {
	return &Notifier{
		pool:   pool,
		jobs:   jobs,
		mailer: mailer,
		clock:  clk,
	}
}

func (n *Notifier) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel
	n.done = make(chan struct{})

	go func() {
		defer close(n.done)
		ticker := time.NewTicker(notifyPollEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := n.DrainOnce(ctx); err != nil {
					slog.Error("notification drain failed", "error", err.Error())
				}
			}
		}
	}()
}

func (n *Notifier) Stop() {
	if n.cancel == nil {
		return
	}
	n.cancel()
	<-n.done
}

func (n *Notifier) DrainOnce(ctx context.Context) error {
	jobs, err := n.jobs.ClaimDue(ctx, n.pool, n.clock.Now(), notifyBatchSize)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		if deliverErr := n.deliver(ctx, job); deliverErr != nil {
			slog.Warn("notification delivery failed",
				"job_id", job.ID, "topic", job.Topic, "error", deliverErr.Error())
			retryAt := n.clock.Now().Add(notifyRetryDelay)
			if err := n.jobs.MarkFailed(ctx, n.pool, job.ID, retryAt, notifyMaxAttempts, deliverErr.Error()); err != nil {
				return err
			}
			continue
		}
		if err := n.jobs.MarkDone(ctx, n.pool, job.ID); err != nil {
			return err
		}
	}
	return nil
}

func (n *Notifier) deliver(ctx context.Context, job repository.NotificationJob) error {
	var body struct {
		BookingID uuid.UUID `json:"booking_id"`
		Type      string    `json:"type"`
	}
	if err := json.Unmarshal(job.Payload, &body); err != nil {
		return err
	}

	email, err := n.guestEmail(ctx, body.BookingID)
	if err != nil {
		return err
	}

	subject, ok := notificationSubjects[job.Topic]
	if !ok {
		subject = "Mine Dine booking update"
	}
	text := fmt.Sprintf("Booking %s: %s.", body.BookingID, job.Topic)

	return n.mailer.Send(email, subject, text)
}

func (n *Notifier) guestEmail(ctx context.Context, bookingID uuid.UUID) (string, error) {
	var email string
	err := n.pool.QueryRow(ctx, `
		SELECT u.email
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1`,
		bookingID,
	).Scan(&email)
	if err != nil {
		return "", infra.WrapRepoErr("failed to resolve guest email", err)
	}
	return email, nil
}
