package components

import (
	"sitlink/internal/domain/reservation"
	"sitlink/internal/pkg/clock"
	"sitlink/internal/pkg/config"
	"sitlink/internal/usecase/commands"
	"sitlink/internal/usecase/queries"
	"sitlink/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) reservation.FeeSchedule {
		return reservation.NewFeeSchedule(cfg.Fees.ServiceFeeCents, cfg.Fees.PlatformFeePercent)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		NewReservationCommands,
		commands.NewApplicationUseCase,
		commands.NewDisputeUseCase,
		commands.NewReviewUseCase,
		commands.NewWebhookUseCase,
		commands.NewReleaseUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewReviewQueries,
	),
)

func NewReservationCommands(
	uow shared.UnitOfWork,
	gateway commands.PaymentGateway,
	scheduler commands.TaskScheduler,
	fees reservation.FeeSchedule,
	cfg config.Config,
	clk clock.Clock,
) commands.ReservationCommands {
	return commands.NewReservationUseCase(uow, gateway, scheduler, fees, cfg.Fees.FundsHoldWindow, clk)
}
