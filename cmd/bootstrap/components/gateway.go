package components

import (
	"context"

	"sitlink/internal/infra/push"
	"sitlink/internal/infra/stripegw"
	"sitlink/internal/pkg/config"
	"sitlink/internal/usecase/commands"
	"sitlink/internal/worker"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewStripeGateway,
		NewPushClient,
		NewAsynqClient,
		worker.NewScheduler,
	),
)

func NewStripeGateway(cfg config.Config) commands.PaymentGateway {
	return stripegw.NewGateway(cfg.Stripe)
}

func NewPushClient(cfg config.Config) *push.Client {
	return push.NewClient(cfg.Push)
}

func NewAsynqClient(lc fx.Lifecycle, cfg config.Config) *asynq.Client {
	client, cleanup := worker.NewAsynqClient(cfg.Asynq)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client
}
