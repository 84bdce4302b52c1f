package worker

import (
	"context"
	"log/slog"

	"sitlink/internal/pkg/config"

	"github.com/hibiken/asynq"
)

func NewServer(cfg config.AsynqConfig) *asynq.Server {
	return asynq.NewServer(
		RedisOpt(cfg),
		asynq.Config{
			Concurrency: cfg.Concurrency,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(logTaskError),
		},
	)
}

func logTaskError(_ context.Context, task *asynq.Task, err error) {
	slog.Error("task failed", "type", task.Type(), "error", err.Error())
}
