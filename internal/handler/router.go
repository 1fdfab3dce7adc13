package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mine-dine/internal/domain/user"
	"mine-dine/internal/handler/api"
	"mine-dine/internal/handler/middleware"
	"mine-dine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	dinnerHandler *api.DinnerHandler,
	reviewHandler *api.ReviewHandler,
	guestReviewHandler *api.GuestReviewHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, dinnerHandler, reviewHandler, guestReviewHandler, webhookHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	dinnerHandler *api.DinnerHandler,
	reviewHandler *api.ReviewHandler,
	guestReviewHandler *api.GuestReviewHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Webhooks authenticate by signature, not bearer token.
	engine.POST("/webhooks/stripe", webhookHandler.HandleStripe)

	apiGroup := engine.Group("/api")
	{
		dinners := apiGroup.Group("/dinners")
		{
			addRoutes(dinners, []route{
				{Method: http.MethodGet, Path: "", Handler: dinnerHandler.ListDinners},
				{Method: http.MethodGet, Path: "/:id", Handler: dinnerHandler.GetDinner},
			})
		}

		hosts := apiGroup.Group("/hosts")
		{
			addRoutes(hosts, []route{
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListHostReviews},
			})
		}

		// Review reads are public; writes below require auth.
		apiGroup.GET("/reviews/:id", reviewHandler.GetReview)

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: bookingHandler.CompleteBooking,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleStaff)}},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: reviewHandler.CreateReview},
				{Method: http.MethodPost, Path: "/tip", Handler: reviewHandler.CreateTipIntent},
			})
		}

		guestReviews := apiGroup.Group("/guest-reviews")
		guestReviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(guestReviews, []route{
				{Method: http.MethodPost, Path: "", Handler: guestReviewHandler.CreateGuestReview,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleHost)}},
				{Method: http.MethodGet, Path: "", Handler: guestReviewHandler.GetGuestReputation},
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
