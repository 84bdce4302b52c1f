package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNotCancellable      = errors.New("reservation is not in a cancellable status")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrIntentMismatch      = errors.New("payment intent does not match reservation")
	ErrNotAssignedSitter   = errors.New("actor is not the assigned babysitter")
	ErrNotParticipant      = errors.New("actor is not a party to this reservation")
	ErrFundsAlreadyRelease = errors.New("funds already released")
	ErrHoldNotElapsed      = errors.New("funds hold window has not elapsed")
	ErrFundsNotHeld        = errors.New("funds are not held for validation")
	ErrNotReviewable       = errors.New("reservation is not in a reviewable status")
	ErrAlreadyReviewed     = errors.New("party has already reviewed this reservation")
)

// Reservation is the paid commitment created when a parent accepts a
// babysitter's application. It owns the lifecycle status, the computed money
// fields, and the fund-release bookkeeping; the Stripe ids correlate it to
// the gateway's own ledger.
type Reservation struct {
	id             uuid.UUID
	adID           uuid.UUID
	applicationID  uuid.UUID
	parentID       uuid.UUID
	sitterID       uuid.UUID
	conversationID *uuid.UUID

	fees FeeBreakdown

	status Status
	funds  FundsStatus

	reservedAt      time.Time
	serviceStartAt  time.Time
	serviceEndAt    *time.Time
	paidAt          *time.Time
	cancelledAt     *time.Time
	fundsHoldUntil  *time.Time
	fundsReleasedAt *time.Time

	parentReviewed bool
	sitterReviewed bool

	stripeIntentID   string
	stripeTransferID *string
	stripeRefundID   *string
	gatewayError     *string

	createdAt time.Time
	updatedAt time.Time
}

// NewReservation builds the pending_payment reservation for an accepted
// application. The caller is responsible for the one-reservation-per-
// application invariant (checked against the store before insert).
func NewReservation(
	adID, applicationID, parentID, sitterID uuid.UUID,
	conversationID *uuid.UUID,
	serviceStartAt time.Time,
	fees FeeBreakdown,
	stripeIntentID string,
	now time.Time,
) *Reservation {
	return &Reservation{
		id:             uuid.New(),
		adID:           adID,
		applicationID:  applicationID,
		parentID:       parentID,
		sitterID:       sitterID,
		conversationID: conversationID,
		fees:           fees,
		status:         StatusPendingPayment,
		funds:          FundsPendingService,
		reservedAt:     now,
		serviceStartAt: serviceStartAt,
		stripeIntentID: stripeIntentID,
		createdAt:      now,
		updatedAt:      now,
	}
}

func Reconstruct(
	id, adID, applicationID, parentID, sitterID uuid.UUID,
	conversationID *uuid.UUID,
	fees FeeBreakdown,
	status Status,
	funds FundsStatus,
	reservedAt, serviceStartAt time.Time,
	serviceEndAt, paidAt, cancelledAt, fundsHoldUntil, fundsReleasedAt *time.Time,
	parentReviewed, sitterReviewed bool,
	stripeIntentID string,
	stripeTransferID, stripeRefundID, gatewayError *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		adID:             adID,
		applicationID:    applicationID,
		parentID:         parentID,
		sitterID:         sitterID,
		conversationID:   conversationID,
		fees:             fees,
		status:           status,
		funds:            funds,
		reservedAt:       reservedAt,
		serviceStartAt:   serviceStartAt,
		serviceEndAt:     serviceEndAt,
		paidAt:           paidAt,
		cancelledAt:      cancelledAt,
		fundsHoldUntil:   fundsHoldUntil,
		fundsReleasedAt:  fundsReleasedAt,
		parentReviewed:   parentReviewed,
		sitterReviewed:   sitterReviewed,
		stripeIntentID:   stripeIntentID,
		stripeTransferID: stripeTransferID,
		stripeRefundID:   stripeRefundID,
		gatewayError:     gatewayError,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ActorFor maps a user id onto its side of this reservation.
func (r *Reservation) ActorFor(userID uuid.UUID) (Actor, error) {
	switch userID {
	case r.parentID:
		return ActorParent, nil
	case r.sitterID:
		return ActorSitter, nil
	default:
		return "", ErrNotParticipant
	}
}

// MarkPaid moves pending_payment -> paid once the gateway reports the
// matching intent as succeeded.
func (r *Reservation) MarkPaid(intentID string, now time.Time) error {
	if r.status != StatusPendingPayment {
		return ErrInvalidTransition
	}
	if intentID != r.stripeIntentID {
		return ErrIntentMismatch
	}
	r.status = StatusPaid
	r.funds = FundsPendingService
	r.paidAt = &now
	r.touch(now)
	return nil
}

// StartService moves paid -> active. Only the assigned babysitter may start.
func (r *Reservation) StartService(actorID uuid.UUID, now time.Time) error {
	if actorID != r.sitterID {
		return ErrNotAssignedSitter
	}
	if r.status != StatusPaid {
		return ErrInvalidTransition
	}
	r.status = StatusActive
	r.serviceStartAt = now
	r.touch(now)
	return nil
}

// CompleteService moves active -> service_completed. Either party may
// complete. The actual service end is recorded and the funds enter the
// validation hold; holdWindow later they become eligible for release.
func (r *Reservation) CompleteService(actorID uuid.UUID, holdWindow time.Duration, now time.Time) error {
	if _, err := r.ActorFor(actorID); err != nil {
		return err
	}
	if r.status != StatusActive {
		return ErrInvalidTransition
	}
	end := now
	holdUntil := end.Add(holdWindow)
	r.status = StatusServiceCompleted
	r.funds = FundsHeldForValidation
	r.serviceEndAt = &end
	r.fundsHoldUntil = &holdUntil
	r.touch(now)
	return nil
}

// ApplyCancellation records the interim cancelled status decided by the
// policy engine. The refund settlement happens afterwards so a gateway
// failure never blocks the user-visible cancellation.
func (r *Reservation) ApplyCancellation(outcome CancellationOutcome, now time.Time) error {
	if r.status.IsCancelled() {
		return ErrAlreadyCancelled
	}
	if !isCancellableFrom(r.status) {
		return ErrNotCancellable
	}
	r.status = outcome.InterimStatus
	r.funds = outcome.FundsStatus
	r.cancelledAt = &now
	r.touch(now)
	return nil
}

// SettleCancellation records the gateway result of the refund decided at
// cancellation time.
func (r *Reservation) SettleCancellation(outcome CancellationOutcome, refundID string, now time.Time) error {
	if r.status != outcome.InterimStatus {
		return ErrInvalidTransition
	}
	r.status = outcome.SettledStatus
	if refundID != "" {
		r.stripeRefundID = &refundID
	}
	r.touch(now)
	return nil
}

// MarkRefundPending degrades a cancellation whose gateway refund failed into
// a manual-reconciliation terminal status, retaining the error message.
func (r *Reservation) MarkRefundPending(actor Actor, gatewayErr string, now time.Time) {
	if actor == ActorParent {
		r.status = StatusParentRefundPending
	} else {
		r.status = StatusSitterRefundPending
	}
	r.gatewayError = &gatewayErr
	r.touch(now)
}

// RecordTransfer stores the gateway transfer id for a payout made outside the
// normal release path, e.g. when a late parent cancellation pays the
// babysitter out immediately.
func (r *Reservation) RecordTransfer(transferID string, now time.Time) {
	r.stripeTransferID = &transferID
	r.touch(now)
}

// MarkDisputed freezes the funds. Released funds can no longer be disputed
// through this path.
func (r *Reservation) MarkDisputed(now time.Time) error {
	if r.funds == FundsReleased {
		return ErrFundsAlreadyRelease
	}
	r.funds = FundsDisputed
	r.touch(now)
	return nil
}

// ClearDispute puts the funds back into the validation hold after a dispute
// is resolved in the babysitter's favour.
func (r *Reservation) ClearDispute(now time.Time) error {
	if r.funds != FundsDisputed {
		return ErrInvalidTransition
	}
	r.funds = FundsHeldForValidation
	r.touch(now)
	return nil
}

// SettleDisputeRefund resolves a disputed reservation in the parent's
// favour: the full deposit goes back and the reservation terminates as a
// babysitter-fault refund.
func (r *Reservation) SettleDisputeRefund(refundID string, now time.Time) error {
	if r.funds != FundsDisputed {
		return ErrInvalidTransition
	}
	r.status = StatusRefundedSitterPenalty
	r.funds = FundsRefunded
	if refundID != "" {
		r.stripeRefundID = &refundID
	}
	r.cancelledAt = &now
	r.touch(now)
	return nil
}

// ReleaseFunds performs the terminal transition into completed. It may only
// happen once, after the hold window elapsed, with the funds still held.
// completed is defined as service_completed with funds released.
func (r *Reservation) ReleaseFunds(transferID string, now time.Time) error {
	if r.fundsReleasedAt != nil {
		return ErrFundsAlreadyRelease
	}
	if r.status != StatusServiceCompleted {
		return ErrInvalidTransition
	}
	if r.funds != FundsHeldForValidation {
		return ErrFundsNotHeld
	}
	if r.fundsHoldUntil == nil || now.Before(*r.fundsHoldUntil) {
		return ErrHoldNotElapsed
	}
	r.status = StatusCompleted
	r.funds = FundsReleased
	r.fundsReleasedAt = &now
	r.stripeTransferID = &transferID
	r.touch(now)
	return nil
}

// MarkReviewed flips the per-party review flag. Reviews are gated by the
// completed / service_completed statuses and can be given once per party.
func (r *Reservation) MarkReviewed(actor Actor, now time.Time) error {
	if r.status != StatusServiceCompleted && r.status != StatusCompleted {
		return ErrNotReviewable
	}
	switch actor {
	case ActorParent:
		if r.parentReviewed {
			return ErrAlreadyReviewed
		}
		r.parentReviewed = true
	case ActorSitter:
		if r.sitterReviewed {
			return ErrAlreadyReviewed
		}
		r.sitterReviewed = true
	default:
		return ErrNotParticipant
	}
	r.touch(now)
	return nil
}

func isCancellableFrom(s Status) bool {
	switch s {
	case StatusPendingPayment, StatusPaid, StatusActive:
		return true
	default:
		return false
	}
}

func (r *Reservation) touch(now time.Time) {
	r.updatedAt = now
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) AdID() uuid.UUID            { return r.adID }
func (r *Reservation) ApplicationID() uuid.UUID   { return r.applicationID }
func (r *Reservation) ParentID() uuid.UUID        { return r.parentID }
func (r *Reservation) SitterID() uuid.UUID        { return r.sitterID }
func (r *Reservation) ConversationID() *uuid.UUID { return r.conversationID }
func (r *Reservation) Fees() FeeBreakdown         { return r.fees }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) Funds() FundsStatus         { return r.funds }
func (r *Reservation) ReservedAt() time.Time      { return r.reservedAt }
func (r *Reservation) ServiceStartAt() time.Time  { return r.serviceStartAt }
func (r *Reservation) ServiceEndAt() *time.Time   { return r.serviceEndAt }
func (r *Reservation) PaidAt() *time.Time         { return r.paidAt }
func (r *Reservation) CancelledAt() *time.Time    { return r.cancelledAt }
func (r *Reservation) FundsHoldUntil() *time.Time { return r.fundsHoldUntil }
func (r *Reservation) FundsReleasedAt() *time.Time {
	return r.fundsReleasedAt
}
func (r *Reservation) ParentReviewed() bool      { return r.parentReviewed }
func (r *Reservation) SitterReviewed() bool      { return r.sitterReviewed }
func (r *Reservation) StripeIntentID() string    { return r.stripeIntentID }
func (r *Reservation) StripeTransferID() *string { return r.stripeTransferID }
func (r *Reservation) StripeRefundID() *string   { return r.stripeRefundID }
func (r *Reservation) GatewayError() *string     { return r.gatewayError }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }

// IsPaidOut reports whether any money actually left the parent. Used by the
// cancellation flow to decide whether a gateway refund is needed at all.
func (r *Reservation) IsPaidOut() bool {
	return r.paidAt != nil
}
