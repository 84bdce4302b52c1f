package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sitlink/internal/domain/reservation"
	"sitlink/internal/infra"
	"sitlink/internal/pkg/clock"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type WebhookCommands interface {
	// HandlePaymentSucceeded confirms a reservation's payment from the
	// gateway's webhook. Unknown intents and replays are acknowledged
	// without error so the provider stops retrying. A replay that lands
	// after service completion re-arms the funds release task.
	HandlePaymentSucceeded(ctx context.Context, intentID string) error
}

type webhookUseCaseImpl struct {
	uow       shared.UnitOfWork
	scheduler TaskScheduler
	clock     clock.Clock
}

func NewWebhookUseCase(uow shared.UnitOfWork, scheduler TaskScheduler, clk clock.Clock) WebhookCommands {
	return &webhookUseCaseImpl{
		uow:       uow,
		scheduler: scheduler,
		clock:     clk,
	}
}

func (uc *webhookUseCaseImpl) HandlePaymentSucceeded(ctx context.Context, intentID string) error {
	now := uc.clock.Now()

	var (
		jobIDs       []uuid.UUID
		rescheduleAt *time.Time
		resID        uuid.UUID
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().GetByIntentForUpdate(ctx, tx.DB(), intentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Not ours (another product on the same Stripe account, or a
				// deleted reservation). Ack and move on.
				slog.Warn("payment webhook for unknown intent", "intent_id", intentID)
				return nil
			}
			return err
		}

		if err := res.MarkPaid(intentID, now); err != nil {
			if errors.Is(err, reservation.ErrInvalidTransition) && res.PaidAt() != nil {
				// Webhook replay after we already processed it. If the service
				// finished in the meantime, make sure the release task exists;
				// replays can arrive after a lost schedule. Disputed funds stay
				// with the dispute resolution path.
				if res.Status() == reservation.StatusServiceCompleted &&
					res.Funds() == reservation.FundsHeldForValidation &&
					res.FundsHoldUntil() != nil {
					at := *res.FundsHoldUntil()
					rescheduleAt = &at
					resID = res.ID()
				}
				return nil
			}
			return markDomainErr(err)
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return err
		}

		payload := map[string]any{
			"reservation_id":      res.ID(),
			"total_deposit_cents": res.Fees().TotalDeposit.Cents(),
		}
		if err := appendSystemChat(ctx, tx, res.ConversationID(), EventReservationPaid, payload, now); err != nil {
			return err
		}
		jobID, err := emitNotification(ctx, tx, res.SitterID(), EventReservationPaid, payload, now)
		if err != nil {
			return err
		}
		jobIDs = append(jobIDs, jobID)
		return nil
	})
	if err != nil {
		return err
	}

	if rescheduleAt != nil {
		if err := uc.scheduler.ScheduleFundsRelease(ctx, resID, *rescheduleAt); err != nil {
			// Asynq dedupes by task id, so a retry of the same webhook will
			// try again. Paid acknowledgement still stands.
			slog.Error("funds release reschedule failed",
				"reservation_id", resID, "error", err)
		}
	}

	dispatchJobs(ctx, uc.scheduler, jobIDs)
	return nil
}
