package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sitlink/internal/domain/ledger"
	"sitlink/internal/domain/reservation"
	"sitlink/internal/infra"
	"sitlink/internal/pkg/clock"
	"sitlink/internal/pkg/errs"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound    = errs.New("application not found")
	ErrApplicationNotAccepted = errs.New("application is not accepted")
	ErrNotApplicationParent   = errs.New("user is not the parent of this application")
	ErrReservationNotFound    = errs.New("reservation not found")
	ErrNotParticipant         = errs.New("user is not a party to this reservation")
	ErrInvalidTransition      = errs.New("invalid reservation state for this operation")
	ErrNotCancellable         = errs.New("reservation cannot be cancelled")
	ErrPaymentGatewayFailed   = errs.New("payment gateway operation failed")
)

type CreateReservationResult struct {
	Reservation  *reservation.Reservation
	ClientSecret string
	IsReplayed   bool
}

type CancelResult struct {
	Status      reservation.Status
	FundsStatus reservation.FundsStatus
	Refund      reservation.Money
	Reason      string
}

type ReservationCommands interface {
	CreateFromApplication(ctx context.Context, applicationID, parentID uuid.UUID) (*CreateReservationResult, error)
	StartService(ctx context.Context, reservationID, actorID uuid.UUID) error
	CompleteService(ctx context.Context, reservationID, actorID uuid.UUID) error
	Cancel(ctx context.Context, reservationID, actorID uuid.UUID) (*CancelResult, error)
}

type reservationUseCaseImpl struct {
	uow        shared.UnitOfWork
	gateway    PaymentGateway
	scheduler  TaskScheduler
	fees       reservation.FeeSchedule
	holdWindow time.Duration
	clock      clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	scheduler TaskScheduler,
	fees reservation.FeeSchedule,
	holdWindow time.Duration,
	clk clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:        uow,
		gateway:    gateway,
		scheduler:  scheduler,
		fees:       fees,
		holdWindow: holdWindow,
		clock:      clk,
	}
}

// CreateFromApplication turns an accepted application into a pending_payment
// reservation. Creation is idempotent per application: a second call while
// the first reservation is still awaiting payment replays it instead of
// charging twice. The payment intent is created before the insert so a
// gateway failure never leaves a reservation without an intent.
func (uc *reservationUseCaseImpl) CreateFromApplication(ctx context.Context, applicationID, parentID uuid.UUID) (*CreateReservationResult, error) {
	now := uc.clock.Now()

	var (
		app      *shared.ApplicationSnapshot
		parent   *shared.UserSnapshot
		existing *reservation.Reservation
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Applications().GetForUpdate(ctx, tx.DB(), applicationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrApplicationNotFound)
			}
			return err
		}
		if a.ParentID != parentID {
			return ErrNotApplicationParent
		}
		if a.Status != shared.ApplicationStatusAccepted {
			return ErrApplicationNotAccepted
		}
		app = a

		res, err := tx.Reservations().FindPendingByApplication(ctx, tx.DB(), applicationID)
		if err == nil {
			existing = res
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		parent, err = tx.Users().GetSnapshot(ctx, tx.DB(), parentID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return uc.replayPending(ctx, existing)
	}

	fees := uc.fees.Compute(reservation.NewMoney(app.HourlyRateCents))

	customerID := ""
	if parent.StripeCustomerID != nil {
		customerID = *parent.StripeCustomerID
	}
	intent, err := uc.gateway.CreateIntent(ctx, fees.TotalDeposit.Cents(), customerID, map[string]string{
		"application_id": applicationID.String(),
		"parent_id":      parentID.String(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGatewayFailed)
	}

	res := reservation.NewReservation(
		app.AdID, app.ID, app.ParentID, app.SitterID,
		app.ConversationID, app.ServiceStartAt, fees, intent.ID, now,
	)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createErr := tx.Reservations().Create(ctx, tx.DB(), res)
		if createErr == nil {
			return nil
		}
		// Lost a race with a concurrent create for the same application;
		// fall back to the winner's pending reservation.
		if infra.IsKind(createErr, infra.KindDuplicateKey) {
			found, findErr := tx.Reservations().FindPendingByApplication(ctx, tx.DB(), applicationID)
			if findErr != nil {
				return createErr
			}
			existing = found
			return nil
		}
		return createErr
	})
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return uc.replayPending(ctx, existing)
	}
	return &CreateReservationResult{
		Reservation:  res,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (uc *reservationUseCaseImpl) replayPending(ctx context.Context, res *reservation.Reservation) (*CreateReservationResult, error) {
	intent, err := uc.gateway.RetrieveIntent(ctx, res.StripeIntentID())
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGatewayFailed)
	}
	return &CreateReservationResult{
		Reservation:  res,
		ClientSecret: intent.ClientSecret,
		IsReplayed:   true,
	}, nil
}

// StartService moves paid -> active when the assigned babysitter checks in.
func (uc *reservationUseCaseImpl) StartService(ctx context.Context, reservationID, actorID uuid.UUID) error {
	now := uc.clock.Now()

	var jobIDs []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockReservation(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if err := res.StartService(actorID, now); err != nil {
			return markDomainErr(err)
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return err
		}

		payload := map[string]any{"reservation_id": res.ID(), "started_at": now}
		if err := appendSystemChat(ctx, tx, res.ConversationID(), EventServiceStarted, payload, now); err != nil {
			return err
		}
		jobID, err := emitNotification(ctx, tx, res.ParentID(), EventServiceStarted, payload, now)
		if err != nil {
			return err
		}
		jobIDs = append(jobIDs, jobID)
		return nil
	})
	if err != nil {
		return err
	}

	dispatchJobs(ctx, uc.scheduler, jobIDs)
	return nil
}

// CompleteService moves active -> service_completed and schedules the
// deferred fund release for when the hold window elapses.
func (uc *reservationUseCaseImpl) CompleteService(ctx context.Context, reservationID, actorID uuid.UUID) error {
	now := uc.clock.Now()

	var (
		jobIDs    []uuid.UUID
		holdUntil time.Time
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockReservation(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if err := res.CompleteService(actorID, uc.holdWindow, now); err != nil {
			return markDomainErr(err)
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return err
		}
		holdUntil = *res.FundsHoldUntil()

		payload := map[string]any{"reservation_id": res.ID(), "ended_at": now, "funds_hold_until": holdUntil}
		if err := appendSystemChat(ctx, tx, res.ConversationID(), EventServiceCompleted, payload, now); err != nil {
			return err
		}
		recipient := res.ParentID()
		if actorID == res.ParentID() {
			recipient = res.SitterID()
		}
		jobID, err := emitNotification(ctx, tx, recipient, EventServiceCompleted, payload, now)
		if err != nil {
			return err
		}
		jobIDs = append(jobIDs, jobID)

		// Reviews open up at service_completed, so the nudge goes out now
		// rather than waiting for the payout.
		reviewPayload := map[string]any{"reservation_id": res.ID()}
		for _, party := range []uuid.UUID{res.ParentID(), res.SitterID()} {
			jobID, err := emitNotification(ctx, tx, party, EventReviewRequested, reviewPayload, now)
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

	if err := uc.scheduler.ScheduleFundsRelease(ctx, reservationID, holdUntil); err != nil {
		// The release handler re-validates from the DB, so a lost schedule is
		// recoverable; it must not fail the completion the user already saw.
		slog.Error("failed to schedule funds release", "reservation_id", reservationID, "error", err.Error())
	}
	dispatchJobs(ctx, uc.scheduler, jobIDs)
	return nil
}

// Cancel runs the cancellation policy for the calling party and settles the
// money in a second transaction. The interim cancelled status commits before
// any gateway call, so a provider outage degrades a cancellation into a
// *_refund_pending reservation instead of rejecting it.
func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, reservationID, actorID uuid.UUID) (*CancelResult, error) {
	now := uc.clock.Now()

	var (
		res     *reservation.Reservation
		outcome reservation.CancellationOutcome
		jobIDs  []uuid.UUID
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := lockReservation(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		actor, err := r.ActorFor(actorID)
		if err != nil {
			return markDomainErr(err)
		}
		outcome, err = reservation.DecideCancellation(r, actor, now)
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

		payload := map[string]any{
			"reservation_id": r.ID(),
			"cancelled_by":   string(outcome.Actor),
			"reason":         outcome.Reason,
			"refund_cents":   outcome.Refund.Cents(),
		}
		if err := appendSystemChat(ctx, tx, r.ConversationID(), EventReservationCancelled, payload, now); err != nil {
			return err
		}
		recipient := r.ParentID()
		if outcome.Actor == reservation.ActorParent {
			recipient = r.SitterID()
		}
		jobID, err := emitNotification(ctx, tx, recipient, EventReservationCancelled, payload, now)
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

	if err := settleCancellation(ctx, uc.uow, uc.gateway, res, outcome, now); err != nil {
		return nil, err
	}

	return &CancelResult{
		Status:      outcome.SettledStatus,
		FundsStatus: outcome.FundsStatus,
		Refund:      outcome.Refund,
		Reason:      outcome.Reason,
	}, nil
}

// settleCancellation performs the gateway money movement decided by the
// policy and records the terminal status plus the ledger lines. Shared with
// the application-withdrawal path.
func settleCancellation(ctx context.Context, uow shared.UnitOfWork, gateway PaymentGateway, res *reservation.Reservation, outcome reservation.CancellationOutcome, now time.Time) error {
	if !outcome.RequiresGateway() {
		return uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			r, err := lockReservation(ctx, tx, res.ID())
			if err != nil {
				return err
			}
			if err := r.SettleCancellation(outcome, "", now); err != nil {
				return markDomainErr(err)
			}
			return tx.Reservations().Update(ctx, tx.DB(), r)
		})
	}

	sitterAccountID := ""
	if outcome.SitterKeepsFunds {
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
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
	}

	refundID, transferID, gwErr := moveCancellationFunds(ctx, gateway, res, outcome, sitterAccountID)
	if gwErr != nil {
		slog.Error("cancellation refund failed at gateway",
			"reservation_id", res.ID(), "reason", outcome.Reason, "error", gwErr.Error())
		return uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			r, err := lockReservation(ctx, tx, res.ID())
			if err != nil {
				return err
			}
			r.MarkRefundPending(outcome.Actor, gwErr.Error(), now)
			return tx.Reservations().Update(ctx, tx.DB(), r)
		})
	}

	return uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := lockReservation(ctx, tx, res.ID())
		if err != nil {
			return err
		}
		if err := r.SettleCancellation(outcome, refundID, now); err != nil {
			return markDomainErr(err)
		}
		if transferID != "" {
			r.RecordTransfer(transferID, now)
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), r); err != nil {
			return err
		}
		return appendCancellationLedger(ctx, tx, r, outcome, refundID, transferID, now)
	})
}

// moveCancellationFunds talks to the gateway only; no DB access. Returns the
// refund and transfer ids produced, either may be empty.
func moveCancellationFunds(ctx context.Context, gateway PaymentGateway, res *reservation.Reservation, outcome reservation.CancellationOutcome, sitterAccountID string) (refundID, transferID string, err error) {
	fees := res.Fees()

	if outcome.ReverseTransfer && res.StripeTransferID() != nil {
		if _, err = gateway.ReverseTransfer(ctx, *res.StripeTransferID(), fees.SitterPayout.Cents()); err != nil {
			return "", "", err
		}
	}
	if outcome.SitterKeepsFunds {
		transferID, err = gateway.CreateTransfer(ctx, sitterAccountID, fees.SitterPayout.Cents(), res.ID())
		if err != nil {
			return "", "", err
		}
	}
	if !outcome.Refund.IsZero() {
		refundID, err = gateway.CreateRefund(ctx, res.StripeIntentID(), outcome.Refund.Cents())
		if err != nil {
			return "", transferID, err
		}
	}
	return refundID, transferID, nil
}

func appendCancellationLedger(ctx context.Context, tx shared.Tx, r *reservation.Reservation, outcome reservation.CancellationOutcome, refundID, transferID string, now time.Time) error {
	fees := r.Fees()

	if !outcome.Refund.IsZero() {
		entry := ledger.NewEntry(r.ID(), r.ParentID(), r.SitterID(), ledger.TypeRefund, outcome.Refund, refundID, outcome.Reason, now)
		if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
			return err
		}
	}
	// The deduction line records what the parent forfeited.
	forfeited := fees.TotalDeposit.Sub(outcome.Refund)
	if outcome.Actor == reservation.ActorParent && !forfeited.IsZero() {
		entry := ledger.NewEntry(r.ID(), r.ParentID(), r.SitterID(), ledger.TypeDeduction, forfeited, "", outcome.Reason, now)
		if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
			return err
		}
	}
	if transferID != "" {
		entry := ledger.NewEntry(r.ID(), r.ParentID(), r.SitterID(), ledger.TypePayout, fees.SitterPayout, transferID, outcome.Reason, now)
		if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
			return err
		}
	}
	return nil
}

func lockReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().GetForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}
	return res, nil
}

// markDomainErr maps domain rule violations onto the usecase sentinels the
// handler layer switches on, keeping the original error in the chain.
func markDomainErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, reservation.ErrNotParticipant), errors.Is(err, reservation.ErrNotAssignedSitter):
		return errs.Mark(err, ErrNotParticipant)
	case errors.Is(err, reservation.ErrAlreadyCancelled), errors.Is(err, reservation.ErrNotCancellable):
		return errs.Mark(err, ErrNotCancellable)
	default:
		return errs.Mark(err, ErrInvalidTransition)
	}
}
