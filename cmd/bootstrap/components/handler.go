package components

import (
	"stagepass/internal/handler"
	"stagepass/internal/handler/api"
	"stagepass/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewTeamHandler,
		api.NewScheduleHandler,
		api.NewReservationHandler,
		api.NewCheckInHandler,
		api.NewFavoriteHandler,
		api.NewInquiryHandler,
		api.NewManagerRequestHandler,
		api.NewFileHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	team *api.TeamHandler,
	schedule *api.ScheduleHandler,
	reservation *api.ReservationHandler,
	checkIn *api.CheckInHandler,
	favorite *api.FavoriteHandler,
	inquiry *api.InquiryHandler,
	managerRequest *api.ManagerRequestHandler,
	file *api.FileHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:           auth,
		User:           user,
		Team:           team,
		Schedule:       schedule,
		Reservation:    reservation,
		CheckIn:        checkIn,
		Favorite:       favorite,
		Inquiry:        inquiry,
		ManagerRequest: managerRequest,
		File:           file,
	}
}
