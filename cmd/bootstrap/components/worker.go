package components

import (
	"context"

	"mine-dine/internal/infra/db"
	"mine-dine/internal/infra/mail"
	"mine-dine/internal/infra/repository"
	"mine-dine/internal/pkg/clock"
	"mine-dine/internal/pkg/config"
	"mine-dine/internal/usecase/shared"
	"mine-dine/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewExpirySweeper,
		NewNotifier,
	),
	fx.Invoke(registerWorkers),
)

func NewExpirySweeper(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) *worker.ExpirySweeper {
	return worker.NewExpirySweeper(uow, clk, cfg.Booking)
}

func NewNotifier(dbtx db.DBTX, jobs *repository.NotificationRepository, mailer mail.Mailer, clk clock.Clock) *worker.Notifier {
	return worker.NewNotifier(dbtx, jobs, mailer, clk)
}

func registerWorkers(lc fx.Lifecycle, sweeper *worker.ExpirySweeper, notifier *worker.Notifier) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			notifier.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			notifier.Stop()
			return nil
		},
	})
}
