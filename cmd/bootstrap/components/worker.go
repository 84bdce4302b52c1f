package components

import (
	"context"
	"log/slog"

	"sitlink/internal/pkg/config"
	"sitlink/internal/worker"

	"go.uber.org/fx"
)

// WorkerModule runs the asynq consumer in the same process as the API.
// Fund releases and notification dispatches survive restarts because the
// tasks live in Redis, not in memory.
var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewHandlers,
	),
	fx.Invoke(startWorker),
)

func startWorker(lc fx.Lifecycle, cfg config.Config, h *worker.Handlers) {
	srv := worker.NewServer(cfg.Asynq)
	mux := worker.NewMux(h)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := srv.Start(mux); err != nil {
				return err
			}
			slog.Info("Task worker started", "concurrency", cfg.Asynq.Concurrency)
			return nil
		},
		OnStop: func(_ context.Context) error {
			srv.Shutdown()
			return nil
		},
	})
}
