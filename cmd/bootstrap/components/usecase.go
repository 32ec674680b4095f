package components

import (
	"stagepass/internal/pkg/clock"
	"stagepass/internal/usecase/commands"
	"stagepass/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewTeamQueries,
		queries.NewScheduleQueries,
		queries.NewReservationQueries,
		queries.NewCheckInQueries,
		queries.NewFavoriteQueries,
		queries.NewInquiryQueries,
		queries.NewManagerRequestQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewTeamCommands,
		commands.NewScheduleCommands,
		commands.NewReservationCommands,
		commands.NewCheckInCommands,
		commands.NewFavoriteCommands,
		commands.NewInquiryCommands,
		commands.NewManagerRequestCommands,
	),
)
