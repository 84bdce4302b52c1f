package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sitlink/internal/domain/dispute"
	"sitlink/internal/domain/ledger"
	"sitlink/internal/domain/reservation"
	"sitlink/internal/infra"
	"sitlink/internal/pkg/clock"
	"sitlink/internal/pkg/errs"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDisputeNotFound      = errs.New("dispute not found")
	ErrDisputeExists        = errs.New("an open dispute already exists for this reservation")
	ErrDisputeClosed        = errs.New("dispute is already resolved")
	ErrInvalidDisputeInput  = errs.New("invalid dispute input")
	ErrFundsAlreadyReleased = errs.New("funds have already been released")
)

type OpenDisputeRequest struct {
	ReservationID uuid.UUID
	Reason        string
	Description   string
}

type DisputeCommands interface {
	OpenDispute(ctx context.Context, req OpenDisputeRequest, reporterID uuid.UUID) (*dispute.Dispute, error)
	// ResolveDispute is an admin operation: release_funds hands the money to
	// the babysitter through the normal release path, refund_parent returns
	// the full deposit.
	ResolveDispute(ctx context.Context, disputeID uuid.UUID, resolution dispute.Resolution) error
}

type disputeUseCaseImpl struct {
	uow       shared.UnitOfWork
	gateway   PaymentGateway
	scheduler TaskScheduler
	clock     clock.Clock
}

func NewDisputeUseCase(uow shared.UnitOfWork, gateway PaymentGateway, scheduler TaskScheduler, clk clock.Clock) DisputeCommands {
	return &disputeUseCaseImpl{
		uow:       uow,
		gateway:   gateway,
		scheduler: scheduler,
		clock:     clk,
	}
}

// OpenDispute freezes the reservation's funds and records the complaint.
// Either party can report the other while the money has not been released.
func (uc *disputeUseCaseImpl) OpenDispute(ctx context.Context, req OpenDisputeRequest, reporterID uuid.UUID) (*dispute.Dispute, error) {
	now := uc.clock.Now()

	var (
		created *dispute.Dispute
		jobIDs  []uuid.UUID
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockReservation(ctx, tx, req.ReservationID)
		if err != nil {
			return err
		}
		actor, err := res.ActorFor(reporterID)
		if err != nil {
			return markDomainErr(err)
		}
		reportedID := res.SitterID()
		if actor == reservation.ActorSitter {
			reportedID = res.ParentID()
		}

		if _, err := tx.Disputes().FindOpenByReservation(ctx, tx.DB(), req.ReservationID); err == nil {
			return ErrDisputeExists
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		if err := res.MarkDisputed(now); err != nil {
			if errors.Is(err, reservation.ErrFundsAlreadyRelease) {
				return errs.Mark(err, ErrFundsAlreadyReleased)
			}
			return markDomainErr(err)
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return err
		}

		d, err := dispute.NewDispute(req.ReservationID, reporterID, reportedID, dispute.Reason(req.Reason), req.Description, now)
		if err != nil {
			return errs.Mark(err, ErrInvalidDisputeInput)
		}
		if err := tx.Disputes().Create(ctx, tx.DB(), d); err != nil {
			return err
		}
		created = d

		payload := map[string]any{
			"reservation_id": res.ID(),
			"dispute_id":     d.ID(),
			"reason":         string(d.Reason()),
		}
		if err := appendSystemChat(ctx, tx, res.ConversationID(), EventDisputeCreated, payload, now); err != nil {
			return err
		}
		jobID, err := emitNotification(ctx, tx, reportedID, EventDisputeCreated, payload, now)
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
	return created, nil
}

func (uc *disputeUseCaseImpl) ResolveDispute(ctx context.Context, disputeID uuid.UUID, resolution dispute.Resolution) error {
	now := uc.clock.Now()

	var (
		res       *reservation.Reservation
		jobIDs    []uuid.UUID
		releaseAt time.Time
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Disputes().GetForUpdate(ctx, tx.DB(), disputeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrDisputeNotFound)
			}
			return err
		}
		if !d.Status().IsOpen() {
			return ErrDisputeClosed
		}
		if err := d.Resolve(resolution, now); err != nil {
			return errs.Mark(err, ErrInvalidDisputeInput)
		}
		if err := tx.Disputes().Update(ctx, tx.DB(), d); err != nil {
			return err
		}

		r, err := lockReservation(ctx, tx, d.ReservationID())
		if err != nil {
			return err
		}

		if resolution == dispute.ResolutionReleaseFunds {
			if err := r.ClearDispute(now); err != nil {
				return markDomainErr(err)
			}
			if err := tx.Reservations().Update(ctx, tx.DB(), r); err != nil {
				return err
			}
			releaseAt = now
			if r.FundsHoldUntil() != nil && r.FundsHoldUntil().After(now) {
				releaseAt = *r.FundsHoldUntil()
			}
		}
		res = r

		payload := map[string]any{
			"reservation_id": r.ID(),
			"dispute_id":     d.ID(),
			"resolution":     string(resolution),
		}
		if err := appendSystemChat(ctx, tx, r.ConversationID(), EventDisputeResolved, payload, now); err != nil {
			return err
		}
		for _, recipient := range []uuid.UUID{r.ParentID(), r.SitterID()} {
			jobID, err := emitNotification(ctx, tx, recipient, EventDisputeResolved, payload, now)
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

	switch resolution {
	case dispute.ResolutionReleaseFunds:
		if err := uc.scheduler.ScheduleFundsRelease(ctx, res.ID(), releaseAt); err != nil {
			slog.Error("failed to schedule funds release after dispute",
				"reservation_id", res.ID(), "error", err.Error())
		}
		return nil
	case dispute.ResolutionRefundParent:
		return uc.refundDisputedParent(ctx, res, now)
	default:
		return ErrInvalidDisputeInput
	}
}

// refundDisputedParent pays the full deposit back. A gateway failure leaves
// the reservation in the manual-reconciliation refund-pending state; the
// dispute itself stays resolved.
func (uc *disputeUseCaseImpl) refundDisputedParent(ctx context.Context, res *reservation.Reservation, now time.Time) error {
	amount := res.Fees().TotalDeposit

	refundID, gwErr := uc.gateway.CreateRefund(ctx, res.StripeIntentID(), amount.Cents())
	if gwErr != nil {
		slog.Error("dispute refund failed at gateway", "reservation_id", res.ID(), "error", gwErr.Error())
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			r, err := lockReservation(ctx, tx, res.ID())
			if err != nil {
				return err
			}
			r.MarkRefundPending(reservation.ActorParent, gwErr.Error(), now)
			return tx.Reservations().Update(ctx, tx.DB(), r)
		})
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := lockReservation(ctx, tx, res.ID())
		if err != nil {
			return err
		}
		if err := r.SettleDisputeRefund(refundID, now); err != nil {
			return markDomainErr(err)
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), r); err != nil {
			return err
		}
		entry := ledger.NewEntry(r.ID(), r.ParentID(), r.SitterID(), ledger.TypeRefund, amount, refundID, "dispute_refund_parent", now)
		return tx.Ledger().Append(ctx, tx.DB(), entry)
	})
}
