package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"stagepass/internal/infra/mailer"
	"stagepass/internal/infra/repository"
	"stagepass/internal/pkg/clock"
	"stagepass/internal/pkg/config"
	"stagepass/internal/usecase/queries"

	"github.com/google/uuid"
)

// NotificationWorker drains the notification_jobs table and delivers
// reservation emails. Failures are retried with linear backoff until the
// attempt budget runs out.
type NotificationWorker struct {
	jobs         *repository.NotificationRepository
	reservations queries.ReservationQueries
	sender       mailer.Sender
	clock        clock.Clock
	interval     time.Duration
	batchSize    int32
	maxRetries   int32
}

func NewNotificationWorker(
	jobs *repository.NotificationRepository,
	reservations queries.ReservationQueries,
	sender mailer.Sender,
	clock clock.Clock,
	cfg config.WorkerConfig,
) *NotificationWorker {
	return &NotificationWorker{
		jobs:         jobs,
		reservations: reservations,
		sender:       sender,
		clock:        clock,
		interval:     cfg.NotifyInterval,
		batchSize:    int32(cfg.NotifyBatchSize),
		maxRetries:   int32(cfg.NotifyMaxRetries),
	}
}

func (w *NotificationWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

func (w *NotificationWorker) drain(ctx context.Context) {
	jobs, err := w.jobs.ClaimDue(ctx, w.clock.Now(), w.batchSize)
	if err != nil {
		slog.Error("failed to claim notification jobs", "error", err)
		return
	}

	for _, job := range jobs {
		if err := w.process(ctx, job); err != nil {
			w.recordFailure(ctx, job, err)
			continue
		}
		if err := w.jobs.MarkSent(ctx, job.ID); err != nil {
			slog.Error("failed to mark notification sent", "job_id", job.ID, "error", err)
		}
	}
}

func (w *NotificationWorker) process(ctx context.Context, job repository.NotificationJob) error {
	var payload struct {
		ReservationID uuid.UUID `json:"reservation_id"`
	}
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}

	view, err := w.reservations.GetByIDSystem(ctx, payload.ReservationID)
	if err != nil {
		return fmt.Errorf("reservation lookup: %w", err)
	}

	subject, body := composeReservationMail(job.Topic, view)
	return w.sender.Send(view.UserEmail, subject, body)
}

func (w *NotificationWorker) recordFailure(ctx context.Context, job repository.NotificationJob, cause error) {
	slog.Warn("notification delivery failed", "job_id", job.ID, "attempts", job.Attempts, "error", cause)

	var retryAt *time.Time
	if job.Attempts+1 < w.maxRetries {
		next := w.clock.Now().Add(time.Duration(job.Attempts+1) * time.Minute)
		retryAt = &next
	}
	if err := w.jobs.MarkFailed(ctx, job.ID, cause.Error(), retryAt); err != nil {
		slog.Error("failed to record notification failure", "job_id", job.ID, "error", err)
	}
}

func composeReservationMail(topic string, view *queries.ReservationView) (string, string) {
	switch topic {
	case "reservation_created":
		if view.ReservationStatus == "PENDING" {
			return fmt.Sprintf("[%s] 예약 접수", view.ScheduleTitle),
				fmt.Sprintf("%s님, 예약이 접수되었습니다. 입금 확인 후 확정됩니다. 예약금: %d원", view.UserName, view.Amount)
		}
		return fmt.Sprintf("[%s] 예약 확정", view.ScheduleTitle),
			fmt.Sprintf("%s님, 예약이 확정되었습니다. 입장 시 QR 패스를 제시해 주세요.", view.UserName)
	default:
		return fmt.Sprintf("[%s] 예약 안내", view.ScheduleTitle),
			fmt.Sprintf("%s님, 예약 상태가 변경되었습니다: %s", view.UserName, view.ReservationStatus)
	}
}
