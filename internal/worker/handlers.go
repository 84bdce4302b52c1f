package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sitlink/internal/infra"
	"sitlink/internal/infra/push"
	"sitlink/internal/pkg/clock"
	"sitlink/internal/pkg/errs"
	"sitlink/internal/usecase/commands"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type Handlers struct {
	release commands.ReleaseCommands
	uow     shared.UnitOfWork
	push    *push.Client
	clock   clock.Clock
}

func NewHandlers(release commands.ReleaseCommands, uow shared.UnitOfWork, pushClient *push.Client, clk clock.Clock) *Handlers {
	return &Handlers{
		release: release,
		uow:     uow,
		push:    pushClient,
		clock:   clk,
	}
}

func NewMux(h *Handlers) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeFundsRelease, h.HandleFundsRelease)
	mux.HandleFunc(TypeNotifyDispatch, h.HandleNotifyDispatch)
	return mux
}

// HandleFundsRelease fires when a reservation's hold window elapses. All
// validation lives in the usecase; this only decodes and delegates.
func (h *Handlers) HandleFundsRelease(ctx context.Context, task *asynq.Task) error {
	var p fundsReleasePayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		slog.Error("invalid funds release payload", "error", err.Error())
		return errs.Wrap(asynq.SkipRetry, "invalid funds release payload")
	}
	return h.release.ReleaseFunds(ctx, p.ReservationID)
}

// HandleNotifyDispatch delivers one outbox row as a push notification. The
// row is the source of truth: already-sent jobs are skipped, failures bump
// the attempt counter and requeue.
func (h *Handlers) HandleNotifyDispatch(ctx context.Context, task *asynq.Task) error {
	var p notifyDispatchPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		slog.Error("invalid notify dispatch payload", "error", err.Error())
		return errs.Wrap(asynq.SkipRetry, "invalid notify dispatch payload")
	}
	now := h.clock.Now()

	var (
		job       *shared.OutboxJob
		recipient *shared.UserSnapshot
	)
	err := h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		j, err := tx.Outbox().GetPending(ctx, tx.DB(), p.JobID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Already delivered by an earlier attempt.
				return nil
			}
			return err
		}
		job = j

		recipient, err = tx.Users().GetSnapshot(ctx, tx.DB(), j.RecipientID)
		return err
	})
	if err != nil {
		return err
	}
	if job == nil {
		return nil
	}

	if recipient.PushToken == nil || *recipient.PushToken == "" {
		// Nothing to deliver to; mark sent so the job does not spin.
		return h.markSent(ctx, job.ID, now)
	}

	msg := push.Message{
		To:    *recipient.PushToken,
		Title: notificationTitle(job.Event),
		Body:  notificationBody(job.Event),
		Data: map[string]string{
			"event":   job.Event,
			"payload": string(job.Payload),
		},
		Sound: "default",
	}
	if err := h.push.Send(ctx, msg); err != nil {
		slog.Warn("push delivery failed", "job_id", job.ID, "event", job.Event, "error", err.Error())
		if dbErr := h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Outbox().IncrementAttempts(ctx, tx.DB(), job.ID)
		}); dbErr != nil {
			slog.Error("failed to record delivery attempt", "job_id", job.ID, "error", dbErr.Error())
		}
		return err
	}

	return h.markSent(ctx, job.ID, now)
}

func (h *Handlers) markSent(ctx context.Context, jobID uuid.UUID, now time.Time) error {
	return h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Outbox().MarkSent(ctx, tx.DB(), jobID, now)
	})
}

func notificationTitle(event string) string {
	switch event {
	case commands.EventReservationPaid:
		return "Booking confirmed"
	case commands.EventServiceStarted:
		return "Babysitting started"
	case commands.EventServiceCompleted:
		return "Babysitting completed"
	case commands.EventReservationCancelled:
		return "Booking cancelled"
	case commands.EventFundsReleased:
		return "Payout sent"
	case commands.EventReviewRequested:
		return "How did it go?"
	case commands.EventDisputeCreated:
		return "A dispute was opened"
	case commands.EventDisputeResolved:
		return "Dispute resolved"
	default:
		return "SitLink"
	}
}

func notificationBody(event string) string {
	switch event {
	case commands.EventReservationPaid:
		return "The deposit was paid; your booking is confirmed."
	case commands.EventServiceStarted:
		return "Your babysitter checked in."
	case commands.EventServiceCompleted:
		return "The babysitting session has ended."
	case commands.EventReservationCancelled:
		return "A booking of yours was cancelled. Open the app for details."
	case commands.EventFundsReleased:
		return "Your payout for a completed booking is on its way."
	case commands.EventReviewRequested:
		return "Leave a review for your completed booking."
	case commands.EventDisputeCreated:
		return "A dispute was opened on one of your bookings."
	case commands.EventDisputeResolved:
		return "A dispute on one of your bookings was resolved."
	default:
		return "You have a new update."
	}
}
