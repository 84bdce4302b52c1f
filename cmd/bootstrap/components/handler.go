package components

import (
	"sitlink/internal/handler"
	"sitlink/internal/handler/api"
	"sitlink/internal/handler/middleware"
	"sitlink/internal/pkg/config"
	"sitlink/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewApplicationHandler,
		api.NewDisputeHandler,
		api.NewReviewHandler,
		NewWebhookHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewWebhookHandler(webhookCommands commands.WebhookCommands, cfg config.Config) *api.WebhookHandler {
	return api.NewWebhookHandler(webhookCommands, cfg.Stripe)
}

func NewHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	application *api.ApplicationHandler,
	dispute *api.DisputeHandler,
	review *api.ReviewHandler,
	webhook *api.WebhookHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Application: application,
		Dispute:     dispute,
		Review:      review,
		Webhook:     webhook,
	}
}
