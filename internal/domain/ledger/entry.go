package ledger

import (
	"time"

	"github.com/google/uuid"

	"sitlink/internal/domain/reservation"
)

// EntryType classifies a ledger line. The ledger is append-only; entries are
// never mutated after insert.
type EntryType string

const (
	TypeRefund    EntryType = "refund"
	TypeDeduction EntryType = "deduction"
	TypePayout    EntryType = "payout"
)

func (t EntryType) IsValid() bool {
	switch t {
	case TypeRefund, TypeDeduction, TypePayout:
		return true
	default:
		return false
	}
}

// Entry is one audit line: a signed amount moved for a reservation, with the
// gateway's own id for correlation. Negative amounts leave the platform.
type Entry struct {
	id            uuid.UUID
	reservationID uuid.UUID
	parentID      uuid.UUID
	sitterID      uuid.UUID
	entryType     EntryType
	amount        reservation.Money
	gatewayRef    string
	reason        string
	createdAt     time.Time
}

func NewEntry(reservationID, parentID, sitterID uuid.UUID, entryType EntryType, amount reservation.Money, gatewayRef, reason string, now time.Time) *Entry {
	return &Entry{
		id:            uuid.New(),
		reservationID: reservationID,
		parentID:      parentID,
		sitterID:      sitterID,
		entryType:     entryType,
		amount:        amount,
		gatewayRef:    gatewayRef,
		reason:        reason,
		createdAt:     now,
	}
}

func (e *Entry) ID() uuid.UUID             { return e.id }
func (e *Entry) ReservationID() uuid.UUID  { return e.reservationID }
func (e *Entry) ParentID() uuid.UUID       { return e.parentID }
func (e *Entry) SitterID() uuid.UUID       { return e.sitterID }
func (e *Entry) Type() EntryType           { return e.entryType }
func (e *Entry) Amount() reservation.Money { return e.amount }
func (e *Entry) GatewayRef() string        { return e.gatewayRef }
func (e *Entry) Reason() string            { return e.reason }
func (e *Entry) CreatedAt() time.Time      { return e.createdAt }
