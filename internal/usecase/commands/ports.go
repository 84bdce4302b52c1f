package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PaymentIntent is the gateway-neutral view of a payment authorization.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

// PaymentGateway abstracts the payment provider. Amounts are minor units.
// Implementations must be safe for concurrent use.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, customerID string, metadata map[string]string) (*PaymentIntent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*PaymentIntent, error)
	// CreateRefund refunds part or all of a captured intent and returns the
	// gateway refund id.
	CreateRefund(ctx context.Context, intentID string, amountCents int64) (string, error)
	// CreateTransfer moves a payout to the babysitter's connected account and
	// returns the gateway transfer id.
	CreateTransfer(ctx context.Context, accountID string, amountCents int64, reservationID uuid.UUID) (string, error)
	// ReverseTransfer claws back an already-paid transfer and returns the
	// gateway reversal id.
	ReverseTransfer(ctx context.Context, transferID string, amountCents int64) (string, error)
}

// TaskScheduler abstracts the delayed-task queue. Scheduling is best effort
// outside the DB transaction; handlers re-validate state from a fresh locked
// read, so a duplicate or stale task is harmless.
type TaskScheduler interface {
	ScheduleFundsRelease(ctx context.Context, reservationID uuid.UUID, at time.Time) error
	EnqueueNotifyDispatch(ctx context.Context, jobID uuid.UUID) error
}

// Notification events. The same names key the system chat messages appended
// to the reservation's conversation.
const (
	EventReservationPaid      = "reservation_paid"
	EventServiceStarted       = "service_started"
	EventServiceCompleted     = "service_completed"
	EventReservationCancelled = "reservation_cancelled"
	EventFundsReleased        = "funds_released"
	EventReviewRequested      = "review_requested"
	EventDisputeCreated       = "dispute_created"
	EventDisputeResolved      = "dispute_resolved"
)
