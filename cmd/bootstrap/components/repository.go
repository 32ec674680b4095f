package components

import (
	"stagepass/internal/infra/db"
	"stagepass/internal/infra/kakao"
	"stagepass/internal/infra/readstore"
	repo_impl "stagepass/internal/infra/repository"
	"stagepass/internal/pkg/config"
	"stagepass/internal/usecase/commands"
	"stagepass/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewTxBeginner,

		// Workers hold the concrete types, commands see the ports
		repo_impl.NewReservationRepository,
		repo_impl.NewIdempotencyRepository,
		repo_impl.NewNotificationRepository,
		func(r *repo_impl.ReservationRepository) commands.ReservationRepository { return r },
		func(r *repo_impl.IdempotencyRepository) commands.IdempotencyRepository { return r },
		func(r *repo_impl.NotificationRepository) commands.NotificationRepository { return r },

		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewTeamRepository,
			fx.As(new(commands.TeamRepository)),
		),
		fx.Annotate(
			repo_impl.NewScheduleRepository,
			fx.As(new(commands.ScheduleRepository)),
		),
		fx.Annotate(
			repo_impl.NewFavoriteRepository,
			fx.As(new(commands.FavoriteRepository)),
		),
		fx.Annotate(
			repo_impl.NewInquiryRepository,
			fx.As(new(commands.InquiryRepository)),
		),
		fx.Annotate(
			repo_impl.NewManagerRequestRepository,
			fx.As(new(commands.ManagerRequestRepository)),
		),

		// Read-side stores for queries
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewTeamReadStore,
			fx.As(new(queries.TeamReadStore)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewFavoriteReadStore,
			fx.As(new(queries.FavoriteReadStore)),
		),
		fx.Annotate(
			readstore.NewInquiryReadStore,
			fx.As(new(queries.InquiryReadStore)),
		),
		fx.Annotate(
			readstore.NewManagerRequestReadStore,
			fx.As(new(queries.ManagerRequestReadStore)),
		),

		// External clients
		fx.Annotate(
			NewKakaoClient,
			fx.As(new(commands.KakaoClient)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) commands.TxBeginner {
	return pool
}

func NewKakaoClient(cfg config.Config) *kakao.Client {
	return kakao.NewClient(cfg.Kakao)
}
