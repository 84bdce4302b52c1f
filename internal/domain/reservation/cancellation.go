package reservation

import "time"

// Notice windows for the cancellation policy. Parents cancel penalty-free
// with at least 24h notice; babysitters cancelling an accepted application
// less than 48h out additionally receive an automatic penalty review. The
// asymmetry is deliberate: the parent has already committed funds, so the
// committed babysitter is held to the higher standard.
const (
	ParentFreeCancellationNotice = 24 * time.Hour
	SitterPenaltyReviewNotice    = 48 * time.Hour
)

// FeeBearer names who absorbs the gateway's own refund fee.
type FeeBearer string

const (
	FeeBearerParent   FeeBearer = "parent"
	FeeBearerPlatform FeeBearer = "platform"
	FeeBearerNone     FeeBearer = "none"
)

// Cancellation reason codes, surfaced to the caller and stored on the ledger.
const (
	ReasonBeforePayment     = "cancelled_before_payment"
	ReasonParentNoticeMet   = "parent_cancellation_notice_met"
	ReasonParentLate        = "parent_late_cancellation"
	ReasonSitterCancelled   = "babysitter_cancellation"
	ReasonSitterLateApplied = "babysitter_late_application_cancellation"
)

// CancellationOutcome is the full decision for one cancellation: how much to
// refund, who bears the gateway fee, which statuses to move through, and the
// side effects the orchestrator must perform.
type CancellationOutcome struct {
	Actor  Actor
	Reason string

	Refund    Money
	Penalty   bool
	FeeBearer FeeBearer

	// InterimStatus is applied immediately; SettledStatus once the gateway
	// confirmed the refund. They are equal when no gateway call is needed.
	InterimStatus Status
	SettledStatus Status
	FundsStatus   FundsStatus

	// SitterKeepsFunds: late parent cancellation, deposit is paid out to the
	// babysitter instead of refunded.
	SitterKeepsFunds bool
	// ReverseTransfer: a payout already reached the babysitter and must be
	// clawed back before refunding the parent.
	ReverseTransfer bool
	// AutoPenaltyReview: application-path babysitter cancellation inside the
	// 48h window generates the automatic 1-star review.
	AutoPenaltyReview bool
}

// RequiresGateway reports whether settling this outcome involves the payment
// provider at all.
func (o CancellationOutcome) RequiresGateway() bool {
	return !o.Refund.IsZero() || o.SitterKeepsFunds || o.ReverseTransfer
}

// DecideCancellation is the pure cancellation policy: a function of
// (reservation, actor, now) with no I/O. Business-rule violations come back
// as structured errors, never panics; callers surface them to the user.
func DecideCancellation(r *Reservation, actor Actor, now time.Time) (CancellationOutcome, error) {
	if r.status.IsCancelled() {
		return CancellationOutcome{}, ErrAlreadyCancelled
	}
	if !isCancellableFrom(r.status) {
		return CancellationOutcome{}, ErrNotCancellable
	}

	if !r.IsPaidOut() {
		return cancelBeforePayment(r, actor), nil
	}

	switch actor {
	case ActorParent:
		return parentCancellation(r, now), nil
	case ActorSitter:
		return sitterCancellation(r), nil
	default:
		return CancellationOutcome{}, ErrNotParticipant
	}
}

// DecideApplicationCancellation covers the distinct code path where a
// babysitter withdraws an accepted application before the service. The refund
// rule is the full babysitter rule; inside the 48h window the automatic
// penalty review is added on top.
func DecideApplicationCancellation(r *Reservation, serviceStartAt, now time.Time) (CancellationOutcome, error) {
	outcome, err := DecideCancellation(r, ActorSitter, now)
	if err != nil {
		return CancellationOutcome{}, err
	}
	if serviceStartAt.Sub(now) < SitterPenaltyReviewNotice {
		outcome.AutoPenaltyReview = true
		outcome.Reason = ReasonSitterLateApplied
	}
	return outcome, nil
}

func cancelBeforePayment(r *Reservation, actor Actor) CancellationOutcome {
	status := StatusCancelledByParent
	if actor == ActorSitter {
		status = StatusCancelledBySitter
	}
	return CancellationOutcome{
		Actor:         actor,
		Reason:        ReasonBeforePayment,
		Refund:        NewMoney(0),
		FeeBearer:     FeeBearerNone,
		InterimStatus: status,
		SettledStatus: status,
		FundsStatus:   FundsCancelled,
	}
}

func parentCancellation(r *Reservation, now time.Time) CancellationOutcome {
	notice := r.serviceStartAt.Sub(now)
	if notice >= ParentFreeCancellationNotice {
		// Refund everything except the flat service fee; the parent bears
		// the gateway's refund fee.
		return CancellationOutcome{
			Actor:         ActorParent,
			Reason:        ReasonParentNoticeMet,
			Refund:        r.fees.TotalDeposit.Sub(r.fees.ServiceFee),
			FeeBearer:     FeeBearerParent,
			InterimStatus: StatusCancelledByParent,
			SettledStatus: StatusRefundedMinusFees,
			FundsStatus:   FundsRefunded,
		}
	}
	// Inside 24h the babysitter keeps the funds; no refund at all.
	return CancellationOutcome{
		Actor:            ActorParent,
		Reason:           ReasonParentLate,
		Refund:           NewMoney(0),
		Penalty:          true,
		FeeBearer:        FeeBearerNone,
		InterimStatus:    StatusCancelledByParentLate,
		SettledStatus:    StatusCancelledByParentLate,
		FundsStatus:      FundsReleased,
		SitterKeepsFunds: true,
	}
}

func sitterCancellation(r *Reservation) CancellationOutcome {
	// Babysitter cancellations always carry the penalty: the parent is made whole
	// (full deposit incl. service fee), the platform absorbs the gateway
	// fee, and any payout already made is reversed.
	return CancellationOutcome{
		Actor:           ActorSitter,
		Reason:          ReasonSitterCancelled,
		Refund:          r.fees.TotalDeposit,
		Penalty:         true,
		FeeBearer:       FeeBearerPlatform,
		InterimStatus:   StatusCancelledBySitter,
		SettledStatus:   StatusRefundedSitterPenalty,
		FundsStatus:     FundsRefunded,
		ReverseTransfer: r.stripeTransferID != nil,
	}
}
