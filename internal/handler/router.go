package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sitlink/internal/domain/user"
	"sitlink/internal/handler/api"
	"sitlink/internal/handler/middleware"
	"sitlink/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Application *api.ApplicationHandler
	Dispute     *api.DisputeHandler
	Review      *api.ReviewHandler
	Webhook     *api.WebhookHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Stripe calls this endpoint directly; authentication is the signature check.
	engine.POST("/webhooks/stripe", handlers.Webhook.HandleStripeEvent)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: handlers.Reservation.ListMyReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Reservation.GetReservation},
				{Method: http.MethodPost, Path: "/:id/start", Handler: handlers.Reservation.StartService},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: handlers.Reservation.CompleteService},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: handlers.Reservation.CancelReservation},
				{Method: http.MethodGet, Path: "/:id/transactions", Handler: handlers.Reservation.ListTransactions},
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: handlers.Reservation.CreateReview},
			})
		}

		applications := apiGroup.Group("/applications")
		applications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(applications, []route{
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: handlers.Application.CancelApplication},
			})
		}

		disputes := apiGroup.Group("/disputes")
		disputes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(disputes, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Dispute.OpenDispute},
				{Method: http.MethodPost, Path: "/:id/resolve", Handler: handlers.Dispute.ResolveDispute,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: handlers.Review.ListUserReviews},
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
