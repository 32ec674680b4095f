package worker

import (
	"context"
	"log/slog"
	"time"

	"stagepass/internal/infra/repository"
	"stagepass/internal/pkg/clock"
	"stagepass/internal/pkg/config"
)

// Sweeper cancels bank-transfer reservations whose deposit never arrived
// within the payment window, and prunes expired idempotency keys on the
// same tick.
type Sweeper struct {
	reservations *repository.ReservationRepository
	idempotency  *repository.IdempotencyRepository
	clock        clock.Clock
	interval     time.Duration
	unpaidTTL    time.Duration
}

func NewSweeper(
	reservations *repository.ReservationRepository,
	idempotency *repository.IdempotencyRepository,
	clock clock.Clock,
	cfg config.WorkerConfig,
) *Sweeper {
	return &Sweeper{
		reservations: reservations,
		idempotency:  idempotency,
		clock:        clock,
		interval:     cfg.SweepInterval,
		unpaidTTL:    cfg.UnpaidTTL,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	now := s.clock.Now()

	cancelled, err := s.reservations.CancelExpiredPending(ctx, now.Add(-s.unpaidTTL))
	if err != nil {
		slog.Error("failed to cancel expired reservations", "error", err)
	} else if cancelled > 0 {
		slog.Info("cancelled unpaid reservations", "count", cancelled)
	}

	pruned, err := s.idempotency.DeleteExpired(ctx, now)
	if err != nil {
		slog.Error("failed to prune idempotency keys", "error", err)
	} else if pruned > 0 {
		slog.Info("pruned expired idempotency keys", "count", pruned)
	}
}
