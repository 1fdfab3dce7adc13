package repository

import (
	"context"
	"time"

	"mine-dine/internal/infra"
	"mine-dine/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationJob is an outbox row claimed by the notifier worker.
type NotificationJob struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at, attempts, created_at)
		VALUES ($1, $2, $3, $4, 'queued', $5, 0, now())`,
		uuid.New(), kind, topic, payload, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}

// ClaimDue locks a batch of runnable jobs so concurrent workers never pick
// the same row.
func (r *NotificationRepository) ClaimDue(ctx context.Context, dbtx db.DBTX, now time.Time, limit int32) ([]NotificationJob, error) {
	rows, err := dbtx.Query(ctx, `
		UPDATE notification_jobs
		SET status = 'processing', attempts = attempts + 1
		WHERE id IN (
			SELECT id FROM notification_jobs
			WHERE status = 'queued' AND run_at <= $1
			ORDER BY run_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, kind, topic, payload, run_at`,
		now, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []NotificationJob
	for rows.Next() {
		var j NotificationJob
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkDone(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `
		UPDATE notification_jobs SET status = 'done' WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job done", err)
	}
	return nil
}

// MarkFailed requeues the job with a delay until attempts run out, after
// which it is parked as dead.
func (r *NotificationRepository) MarkFailed(ctx context.Context, dbtx db.DBTX, id uuid.UUID, retryAt time.Time, maxAttempts int32, lastError string) error {
	_, err := dbtx.Exec(ctx, `
		UPDATE notification_jobs
		SET status = CASE WHEN attempts >= $3 THEN 'dead' ELSE 'queued' END,
		    run_at = $2,
		    last_error = $4
		WHERE id = $1`,
		id, retryAt, maxAttempts, lastError)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
