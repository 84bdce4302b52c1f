// Package worker holds the asynq task definitions and handlers behind the
// deferred fund release and the notification outbox.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"sitlink/internal/pkg/config"
	"sitlink/internal/pkg/errs"
	"sitlink/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypeFundsRelease   = "funds:release"
	TypeNotifyDispatch = "notify:dispatch"
)

type fundsReleasePayload struct {
	ReservationID uuid.UUID `json:"reservation_id"`
}

type notifyDispatchPayload struct {
	JobID uuid.UUID `json:"job_id"`
}

func RedisOpt(cfg config.AsynqConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

func NewAsynqClient(cfg config.AsynqConfig) (*asynq.Client, func()) {
	client := asynq.NewClient(RedisOpt(cfg))
	return client, func() { _ = client.Close() }
}

// Scheduler implements the task-queue port over asynq. Tasks carry only ids;
// handlers reload all state from the database when they fire.
type Scheduler struct {
	client *asynq.Client
}

func NewScheduler(client *asynq.Client) commands.TaskScheduler {
	return &Scheduler{client: client}
}

func (s *Scheduler) ScheduleFundsRelease(ctx context.Context, reservationID uuid.UUID, at time.Time) error {
	b, err := json.Marshal(fundsReleasePayload{ReservationID: reservationID})
	if err != nil {
		return errs.Wrap(err, "marshal funds release payload")
	}
	task := asynq.NewTask(TypeFundsRelease, b)
	_, err = s.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(at),
		asynq.MaxRetry(10),
	)
	return errs.Wrap(err, "enqueue funds release")
}

func (s *Scheduler) EnqueueNotifyDispatch(ctx context.Context, jobID uuid.UUID) error {
	b, err := json.Marshal(notifyDispatchPayload{JobID: jobID})
	if err != nil {
		return errs.Wrap(err, "marshal notify dispatch payload")
	}
	task := asynq.NewTask(TypeNotifyDispatch, b)
	_, err = s.client.EnqueueContext(ctx, task,
		asynq.MaxRetry(5),
	)
	return errs.Wrap(err, "enqueue notify dispatch")
}
