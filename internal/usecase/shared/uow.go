package shared

import (
	"context"
	"time"

	"sitlink/internal/domain/dispute"
	"sitlink/internal/domain/ledger"
	"sitlink/internal/domain/reservation"
	"sitlink/internal/domain/review"
	"sitlink/internal/infra/sqlgen"

	"github.com/google/uuid"
)

// UnitOfWork wraps every multi-row write in a single commit/rollback unit.
// State transitions take row-level locks through the repository GetForUpdate
// methods so concurrent mutations of the same reservation serialize.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlgen.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Applications() ApplicationRepository
	Disputes() DisputeRepository
	Reviews() ReviewRepository
	Ledger() LedgerRepository
	Outbox() OutboxRepository
	Conversations() ConversationRepository
	Users() UserRepository
	DB() sqlgen.DBTX
}

type ReservationRepository interface {
	Create(ctx context.Context, db sqlgen.DBTX, res *reservation.Reservation) error
	// GetForUpdate acquires a row-level lock; every state transition goes
	// through it.
	GetForUpdate(ctx context.Context, db sqlgen.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	GetByIntentForUpdate(ctx context.Context, db sqlgen.DBTX, intentID string) (*reservation.Reservation, error)
	// FindPendingByApplication backs the idempotent-creation check: at most
	// one pending_payment reservation per application.
	FindPendingByApplication(ctx context.Context, db sqlgen.DBTX, applicationID uuid.UUID) (*reservation.Reservation, error)
	// FindActiveByApplication returns the non-cancelled, not-yet-completed
	// reservation for an application, KindNotFound when none exists.
	FindActiveByApplication(ctx context.Context, db sqlgen.DBTX, applicationID uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, db sqlgen.DBTX, res *reservation.Reservation) error
}

// ApplicationSnapshot is the write-side view of a babysitter's accepted bid.
type ApplicationSnapshot struct {
	ID              uuid.UUID
	AdID            uuid.UUID
	ParentID        uuid.UUID
	SitterID        uuid.UUID
	ConversationID  *uuid.UUID
	HourlyRateCents int64
	ServiceStartAt  time.Time
	ServiceEndAt    time.Time
	Status          string
}

const (
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusCancelled = "cancelled"
)

type ApplicationRepository interface {
	GetForUpdate(ctx context.Context, db sqlgen.DBTX, id uuid.UUID) (*ApplicationSnapshot, error)
	MarkCancelled(ctx context.Context, db sqlgen.DBTX, id uuid.UUID, now time.Time) error
}

type DisputeRepository interface {
	Create(ctx context.Context, db sqlgen.DBTX, d *dispute.Dispute) error
	// FindOpenByReservation returns KindNotFound when no open dispute exists.
	FindOpenByReservation(ctx context.Context, db sqlgen.DBTX, reservationID uuid.UUID) (*dispute.Dispute, error)
	GetForUpdate(ctx context.Context, db sqlgen.DBTX, id uuid.UUID) (*dispute.Dispute, error)
	Update(ctx context.Context, db sqlgen.DBTX, d *dispute.Dispute) error
}

type ReviewRepository interface {
	Create(ctx context.Context, db sqlgen.DBTX, rev *review.Review) error
}

type LedgerRepository interface {
	// Append inserts one audit line; ledger rows are never updated.
	Append(ctx context.Context, db sqlgen.DBTX, entry *ledger.Entry) error
}

// OutboxJob is a pending notification written in the same transaction as the
// state change that caused it (outbox pattern): delivery failures can never
// be mistaken for a failure of the financial transition.
type OutboxJob struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	Event       string
	Payload     []byte
	RunAt       time.Time
	SentAt      *time.Time
	Attempts    int32
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, db sqlgen.DBTX, job OutboxJob) error
	GetPending(ctx context.Context, db sqlgen.DBTX, id uuid.UUID) (*OutboxJob, error)
	MarkSent(ctx context.Context, db sqlgen.DBTX, id uuid.UUID, now time.Time) error
	IncrementAttempts(ctx context.Context, db sqlgen.DBTX, id uuid.UUID) error
}

type ConversationRepository interface {
	// AppendSystemMessage adds a type=system message with a structured
	// payload keyed by event name to the reservation's conversation.
	AppendSystemMessage(ctx context.Context, db sqlgen.DBTX, conversationID uuid.UUID, event string, payload []byte, now time.Time) error
}

// UserSnapshot is the write-side view of an account, including the gateway
// references needed for intents and connected-account transfers.
type UserSnapshot struct {
	ID               uuid.UUID
	Email            string
	Role             string
	DisplayName      string
	StripeCustomerID *string
	StripeAccountID  *string
	PushToken        *string
}

type UserRepository interface {
	GetSnapshot(ctx context.Context, db sqlgen.DBTX, id uuid.UUID) (*UserSnapshot, error)
}
