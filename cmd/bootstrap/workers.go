package bootstrap

import (
	"context"

	"stagepass/internal/infra/mailer"
	"stagepass/internal/infra/repository"
	"stagepass/internal/pkg/clock"
	"stagepass/internal/pkg/config"
	"stagepass/internal/usecase/queries"
	"stagepass/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweeper,
		NewNotificationWorker,
	),
	fx.Invoke(
		StartWorkers,
	),
)

func NewSweeper(
	reservations *repository.ReservationRepository,
	idempotency *repository.IdempotencyRepository,
	clk clock.Clock,
	cfg config.Config,
) *worker.Sweeper {
	return worker.NewSweeper(reservations, idempotency, clk, cfg.Worker)
}

func NewNotificationWorker(
	jobs *repository.NotificationRepository,
	reservations queries.ReservationQueries,
	sender mailer.Sender,
	clk clock.Clock,
	cfg config.Config,
) *worker.NotificationWorker {
	return worker.NewNotificationWorker(jobs, reservations, sender, clk, cfg.Worker)
}

func StartWorkers(lc fx.Lifecycle, sweeper *worker.Sweeper, notifier *worker.NotificationWorker) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweeper.Run(ctx)
			go notifier.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
