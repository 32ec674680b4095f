package repository

import (
	"context"
	"time"

	"stagepass/internal/infra"
	"stagepass/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue locks a batch of runnable jobs so concurrent workers never pick
// the same row.
func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int32) ([]NotificationJob, error) {
	const query = `
		SELECT id, kind, topic, payload, run_at, attempts
		FROM notification_jobs
		WHERE status = 'pending' AND run_at <= $1
		ORDER BY run_at
		LIMIT $2
		FOR UPDATE SKIP LOCKED`

	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []NotificationJob
	for rows.Next() {
		var job NotificationJob
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &job.RunAt, &job.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE notification_jobs
		SET status = 'sent', updated_at = now()
		WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification sent", err)
	}
	return nil
}

// MarkFailed either reschedules with backoff or buries the job once the
// retry budget is spent.
func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, cause string, retryAt *time.Time) error {
	if retryAt != nil {
		const query = `
			UPDATE notification_jobs
			SET attempts = attempts + 1, last_error = $2, run_at = $3, updated_at = now()
			WHERE id = $1`
		if _, err := r.db.Exec(ctx, query, id, cause, *retryAt); err != nil {
			return infra.WrapRepoErr("failed to reschedule notification", err)
		}
		return nil
	}

	const query = `
		UPDATE notification_jobs
		SET attempts = attempts + 1, last_error = $2, status = 'failed', updated_at = now()
		WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id, cause); err != nil {
		return infra.WrapRepoErr("failed to mark notification failed", err)
	}
	return nil
}
