package commands

import (
	"context"

	"sitlink/internal/domain/reservation"
	"sitlink/internal/domain/review"
	"sitlink/internal/infra"
	"sitlink/internal/pkg/clock"
	"sitlink/internal/pkg/errs"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotApplicationSitter = errs.New("user is not the babysitter of this application")
)

type CancelApplicationResult struct {
	ApplicationID   uuid.UUID
	ReservationID   *uuid.UUID
	Status          *reservation.Status
	Refund          reservation.Money
	PenaltyReviewed bool
}

type ApplicationCommands interface {
	// CancelApplication lets the accepted babysitter withdraw before the
	// service. Any live reservation is cancelled under the babysitter rule;
	// with less than 48h notice an automatic 1-star review is added.
	CancelApplication(ctx context.Context, applicationID, sitterID uuid.UUID) (*CancelApplicationResult, error)
}

type applicationUseCaseImpl struct {
	uow       shared.UnitOfWork
	gateway   PaymentGateway
	scheduler TaskScheduler
	clock     clock.Clock
}

func NewApplicationUseCase(uow shared.UnitOfWork, gateway PaymentGateway, scheduler TaskScheduler, clk clock.Clock) ApplicationCommands {
	return &applicationUseCaseImpl{
		uow:       uow,
		gateway:   gateway,
		scheduler: scheduler,
		clock:     clk,
	}
}

func (uc *applicationUseCaseImpl) CancelApplication(ctx context.Context, applicationID, sitterID uuid.UUID) (*CancelApplicationResult, error) {
	now := uc.clock.Now()

	var (
		res     *reservation.Reservation
		outcome reservation.CancellationOutcome
		jobIDs  []uuid.UUID
		result  = &CancelApplicationResult{ApplicationID: applicationID}
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := tx.Applications().GetForUpdate(ctx, tx.DB(), applicationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrApplicationNotFound)
			}
			return err
		}
		if app.SitterID != sitterID {
			return ErrNotApplicationSitter
		}
		if app.Status != shared.ApplicationStatusAccepted {
			return ErrApplicationNotAccepted
		}

		if err := tx.Applications().MarkCancelled(ctx, tx.DB(), applicationID, now); err != nil {
			return err
		}

		r, err := tx.Reservations().FindActiveByApplication(ctx, tx.DB(), applicationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Nothing was booked yet; withdrawing the application is the
				// whole operation.
				return nil
			}
			return err
		}

		outcome, err = reservation.DecideApplicationCancellation(r, app.ServiceStartAt, now)
		if err != nil {
			return markDomainErr(err)
		}
		if err := r.ApplyCancellation(outcome, now); err != nil {
			return markDomainErr(err)
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), r); err != nil {
			return err
		}
		res = r

		if outcome.AutoPenaltyReview {
			penalty := review.NewSystemPenaltyReview(r.ID(), r.ParentID(), r.SitterID(), now)
			if err := tx.Reviews().Create(ctx, tx.DB(), penalty); err != nil {
				return err
			}
			result.PenaltyReviewed = true
		}

		payload := map[string]any{
			"reservation_id": r.ID(),
			"cancelled_by":   string(reservation.ActorSitter),
			"reason":         outcome.Reason,
			"refund_cents":   outcome.Refund.Cents(),
		}
		if err := appendSystemChat(ctx, tx, r.ConversationID(), EventReservationCancelled, payload, now); err != nil {
			return err
		}
		jobID, err := emitNotification(ctx, tx, r.ParentID(), EventReservationCancelled, payload, now)
		if err != nil {
			return err
		}
		jobIDs = append(jobIDs, jobID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	dispatchJobs(ctx, uc.scheduler, jobIDs)

	if res == nil {
		return result, nil
	}

	if err := settleCancellation(ctx, uc.uow, uc.gateway, res, outcome, now); err != nil {
		return nil, err
	}

	id := res.ID()
	status := outcome.SettledStatus
	result.ReservationID = &id
	result.Status = &status
	result.Refund = outcome.Refund
	return result, nil
}
