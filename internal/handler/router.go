package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stagepass/internal/domain/user"
	"stagepass/internal/handler/api"
	"stagepass/internal/handler/middleware"
	"stagepass/internal/infra/redisx"
	"stagepass/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth           *api.AuthHandler
	User           *api.UserHandler
	Team           *api.TeamHandler
	Schedule       *api.ScheduleHandler
	Reservation    *api.ReservationHandler
	CheckIn        *api.CheckInHandler
	Favorite       *api.FavoriteHandler
	Inquiry        *api.InquiryHandler
	ManagerRequest *api.ManagerRequestHandler
	File           *api.FileHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *redisx.LoginLimiter,
) {
	setupMiddleware(engine, cfg)
	engine.Static("/uploads", cfg.Upload.Dir)
	setupRoutes(engine, handlers, authMiddleware, loginLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *redisx.LoginLimiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireManager := authMiddleware.RequireRoleAtLeast(user.RoleManager)
	requireAdmin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{middleware.LoginRateLimit(loginLimiter)}},
				{Method: http.MethodPost, Path: "/kakao/callback", Handler: h.Auth.KakaoCallback},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(requireAuth)
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.User.GetProfile},
				{Method: http.MethodPatch, Path: "/me", Handler: h.User.UpdateProfile},
				{Method: http.MethodGet, Path: "", Handler: h.User.ListUsers, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPatch, Path: "/:id/role", Handler: h.User.ChangeRole, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		teams := apiGroup.Group("/teams")
		{
			addRoutes(teams, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Team.ListTeams},
				{Method: http.MethodGet, Path: "/search", Handler: h.Team.SearchTeams},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Team.GetTeam},
			})

			teamWrites := teams.Group("")
			teamWrites.Use(requireAuth, requireManager)
			addRoutes(teamWrites, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Team.CreateTeam},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Team.UpdateTeam},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Team.DeleteTeam},
			})
		}

		schedules := apiGroup.Group("/schedules")
		{
			addRoutes(schedules, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Schedule.ListSchedules},
				{Method: http.MethodGet, Path: "/date/:date", Handler: h.Schedule.ListSchedulesByDate},
				{Method: http.MethodGet, Path: "/month", Handler: h.Schedule.ListSchedulesByMonth},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Schedule.GetSchedule},
			})

			scheduleAuth := schedules.Group("")
			scheduleAuth.Use(requireAuth, requireManager)
			addRoutes(scheduleAuth, []route{
				{Method: http.MethodGet, Path: "/my", Handler: h.Schedule.ListMySchedules},
				{Method: http.MethodPost, Path: "", Handler: h.Schedule.CreateSchedule},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Schedule.UpdateSchedule},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Schedule.DeleteSchedule},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.CancelReservation},
				{Method: http.MethodGet, Path: "/:id/pass.png", Handler: h.Reservation.GetPassImage},
				{Method: http.MethodGet, Path: "/schedule/:id", Handler: h.CheckIn.ListBySchedule, Mw: []gin.HandlerFunc{requireManager}},
				{Method: http.MethodPost, Path: "/qr/:code", Handler: h.CheckIn.EnterByQRCode, Mw: []gin.HandlerFunc{requireManager}},
				{Method: http.MethodPost, Path: "/:id/confirm-payment", Handler: h.CheckIn.ConfirmPayment, Mw: []gin.HandlerFunc{requireManager}},
				{Method: http.MethodPost, Path: "/:id/enter", Handler: h.CheckIn.EnterByID, Mw: []gin.HandlerFunc{requireManager}},
			})
		}

		favorites := apiGroup.Group("/favorites")
		favorites.Use(requireAuth)
		{
			addRoutes(favorites, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Favorite.ListFavorites},
				{Method: http.MethodGet, Path: "/check/:teamId", Handler: h.Favorite.CheckFavorite},
				{Method: http.MethodPost, Path: "", Handler: h.Favorite.AddFavorite},
				{Method: http.MethodDelete, Path: "/:teamId", Handler: h.Favorite.RemoveFavorite},
			})
		}

		files := apiGroup.Group("/files")
		files.Use(requireAuth, requireManager)
		{
			addRoutes(files, []route{
				{Method: http.MethodPost, Path: "/upload", Handler: h.File.Upload},
			})
		}

		inquiries := apiGroup.Group("/inquiries")
		inquiries.Use(requireAuth)
		{
			addRoutes(inquiries, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Inquiry.ListMyInquiries},
				{Method: http.MethodPost, Path: "", Handler: h.Inquiry.CreateInquiry},
				{Method: http.MethodGet, Path: "/all", Handler: h.Inquiry.ListAllInquiries, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPost, Path: "/:id/answer", Handler: h.Inquiry.AnswerInquiry, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		managerRequests := apiGroup.Group("/manager-requests")
		managerRequests.Use(requireAuth)
		{
			addRoutes(managerRequests, []route{
				{Method: http.MethodGet, Path: "", Handler: h.ManagerRequest.ListMyRequests},
				{Method: http.MethodPost, Path: "", Handler: h.ManagerRequest.SubmitRequest},
				{Method: http.MethodGet, Path: "/all", Handler: h.ManagerRequest.ListAllRequests, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodGet, Path: "/pending", Handler: h.ManagerRequest.ListPendingRequests, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.ManagerRequest.ApproveRequest, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.ManagerRequest.RejectRequest, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
