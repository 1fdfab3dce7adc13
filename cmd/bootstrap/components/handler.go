package components

import (
	"mine-dine/internal/handler"
	"mine-dine/internal/handler/api"
	"mine-dine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewDinnerHandler,
		api.NewReviewHandler,
		api.NewGuestReviewHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
