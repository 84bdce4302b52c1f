package reservation

// Status is the single source of truth for the reservation lifecycle.
//
// Forward path:
//
//	pending_payment -> paid -> active -> service_completed -> completed
//
// Cancellation branches are reachable from pending_payment, paid, or active
// only, never from service_completed or completed. The cancelled_by_* states
// are transitional while the refund settles; they end in refunded_* on
// gateway success or *_refund_pending on gateway failure (manual
// reconciliation).
type Status string

const (
	StatusPendingPayment   Status = "pending_payment"
	StatusPaid             Status = "paid"
	StatusActive           Status = "active"
	StatusServiceCompleted Status = "service_completed"
	StatusCompleted        Status = "completed"

	StatusCancelledByParent     Status = "cancelled_by_parent"
	StatusCancelledByParentLate Status = "cancelled_by_parent_late"
	StatusRefundedMinusFees     Status = "refunded_minus_service_fees"
	StatusCancelledBySitter     Status = "cancelled_by_babysitter"
	StatusRefundedSitterPenalty Status = "refunded_babysitter_penalty"

	StatusParentRefundPending Status = "parent_refund_pending"
	StatusSitterRefundPending Status = "babysitter_refund_pending"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusPaid, StatusActive,
		StatusServiceCompleted, StatusCompleted,
		StatusCancelledByParent, StatusCancelledByParentLate,
		StatusRefundedMinusFees, StatusCancelledBySitter,
		StatusRefundedSitterPenalty,
		StatusParentRefundPending, StatusSitterRefundPending:
		return true
	default:
		return false
	}
}

// IsCancelled reports whether the reservation left the forward path.
func (s Status) IsCancelled() bool {
	switch s {
	case StatusCancelledByParent, StatusCancelledByParentLate,
		StatusRefundedMinusFees, StatusCancelledBySitter,
		StatusRefundedSitterPenalty,
		StatusParentRefundPending, StatusSitterRefundPending:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further lifecycle transition is allowed.
// completed is terminal; refund-pending states are terminal for the state
// machine even though support staff resolve them out of band.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelledByParentLate,
		StatusRefundedMinusFees, StatusRefundedSitterPenalty,
		StatusParentRefundPending, StatusSitterRefundPending:
		return true
	default:
		return false
	}
}

// FundsStatus tracks where the parent's deposit currently sits.
type FundsStatus string

const (
	FundsPendingService    FundsStatus = "pending_service"
	FundsHeldForValidation FundsStatus = "held_for_validation"
	FundsReleased          FundsStatus = "released"
	FundsDisputed          FundsStatus = "disputed"
	FundsCancelled         FundsStatus = "cancelled"
	FundsRefunded          FundsStatus = "refunded"
)

func (f FundsStatus) String() string {
	return string(f)
}

func (f FundsStatus) IsValid() bool {
	switch f {
	case FundsPendingService, FundsHeldForValidation, FundsReleased,
		FundsDisputed, FundsCancelled, FundsRefunded:
		return true
	default:
		return false
	}
}

// Actor identifies which side of the marketplace performs an operation.
type Actor string

const (
	ActorParent Actor = "parent"
	ActorSitter Actor = "babysitter"
)
