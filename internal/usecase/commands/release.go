package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sitlink/internal/domain/ledger"
	"sitlink/internal/domain/reservation"
	"sitlink/internal/pkg/clock"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
)

// provisionalTransferRef is used to dry-run the release transition on a
// locked copy before any money moves; the copy is never persisted.
const provisionalTransferRef = "pending"

type ReleaseCommands interface {
	// ReleaseFunds is the deferred task behind the validation hold: it
	// re-validates everything from a fresh locked read, pays the babysitter
	// out, and finalizes the reservation as completed. Safe to run more than
	// once for the same reservation.
	ReleaseFunds(ctx context.Context, reservationID uuid.UUID) error
}

type releaseUseCaseImpl struct {
	uow       shared.UnitOfWork
	gateway   PaymentGateway
	scheduler TaskScheduler
	clock     clock.Clock
}

func NewReleaseUseCase(uow shared.UnitOfWork, gateway PaymentGateway, scheduler TaskScheduler, clk clock.Clock) ReleaseCommands {
	return &releaseUseCaseImpl{
		uow:       uow,
		gateway:   gateway,
		scheduler: scheduler,
		clock:     clk,
	}
}

func (uc *releaseUseCaseImpl) ReleaseFunds(ctx context.Context, reservationID uuid.UUID) error {
	now := uc.clock.Now()

	// Validation pass. The scheduled task carries no state; everything is
	// decided from what is in the database right now.
	var (
		payout          reservation.Money
		sitterAccountID string
		rescheduleAt    *time.Time
		eligible        bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockReservation(ctx, tx, reservationID)
		if err != nil {
			return err
		}

		if err := res.ReleaseFunds(provisionalTransferRef, now); err != nil {
			switch {
			case errors.Is(err, reservation.ErrFundsAlreadyRelease):
				// Duplicate task after a successful release.
				return nil
			case errors.Is(err, reservation.ErrFundsNotHeld):
				// Disputed or refunded in the meantime. Dispute resolution
				// schedules its own release when the babysitter prevails.
				slog.Info("funds release skipped, funds no longer held",
					"reservation_id", reservationID, "funds_status", res.Funds().String())
				return nil
			case errors.Is(err, reservation.ErrHoldNotElapsed):
				at := *res.FundsHoldUntil()
				rescheduleAt = &at
				return nil
			default:
				// Cancelled or never completed; nothing to release.
				slog.Info("funds release skipped, reservation not releasable",
					"reservation_id", reservationID, "status", res.Status().String())
				return nil
			}
		}
		// Transition is valid; the mutated copy is dropped without Update.
		eligible = true
		payout = res.Fees().SitterPayout

		sitter, err := tx.Users().GetSnapshot(ctx, tx.DB(), res.SitterID())
		if err != nil {
			return err
		}
		if sitter.StripeAccountID != nil {
			sitterAccountID = *sitter.StripeAccountID
		}
		return nil
	})
	if err != nil {
		return err
	}

	if rescheduleAt != nil {
		return uc.scheduler.ScheduleFundsRelease(ctx, reservationID, *rescheduleAt)
	}
	if !eligible {
		return nil
	}

	transferID, err := uc.gateway.CreateTransfer(ctx, sitterAccountID, payout.Cents(), reservationID)
	if err != nil {
		// Returned to the queue; the task retries with backoff.
		slog.Error("funds release transfer failed", "reservation_id", reservationID, "error", err.Error())
		return err
	}

	var jobIDs []uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockReservation(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if err := res.ReleaseFunds(transferID, now); err != nil {
			if errors.Is(err, reservation.ErrFundsAlreadyRelease) {
				// Lost a race with a concurrent release of the same task.
				return nil
			}
			// State changed between the transfer and this commit (e.g. a
			// dispute opened). The transfer stands; record it for support.
			slog.Error("reservation changed during funds release, transfer needs review",
				"reservation_id", reservationID, "transfer_id", transferID, "error", err.Error())
			return markDomainErr(err)
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return err
		}

		entry := ledger.NewEntry(res.ID(), res.ParentID(), res.SitterID(), ledger.TypePayout, payout, transferID, "service_payout", now)
		if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
			return err
		}

		payload := map[string]any{
			"reservation_id": res.ID(),
			"payout_cents":   payout.Cents(),
		}
		if err := appendSystemChat(ctx, tx, res.ConversationID(), EventFundsReleased, payload, now); err != nil {
			return err
		}
		jobID, err := emitNotification(ctx, tx, res.SitterID(), EventFundsReleased, payload, now)
		if err != nil {
			return err
		}
		jobIDs = append(jobIDs, jobID)

		// Both parties get the review nudge once the money settled.
		reviewPayload := map[string]any{"reservation_id": res.ID()}
		for _, recipient := range []uuid.UUID{res.ParentID(), res.SitterID()} {
			jobID, err := emitNotification(ctx, tx, recipient, EventReviewRequested, reviewPayload, now)
			if err != nil {
				return err
			}
			jobIDs = append(jobIDs, jobID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	dispatchJobs(ctx, uc.scheduler, jobIDs)
	return nil
}
