//go:build unit

package builder

import (
	"time"

	"sitlink/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// ReservationBuilder assembles reservations in arbitrary lifecycle states via
// Reconstruct, so tests do not have to replay every transition to get there.
type ReservationBuilder struct {
	ID             uuid.UUID
	AdID           uuid.UUID
	ApplicationID  uuid.UUID
	ParentID       uuid.UUID
	SitterID       uuid.UUID
	ConversationID *uuid.UUID

	HourlyRateCents    int64
	ServiceFeeCents    int64
	PlatformFeePercent float64

	Status reservation.Status
	Funds  reservation.FundsStatus

	ReservedAt      time.Time
	ServiceStartAt  time.Time
	ServiceEndAt    *time.Time
	PaidAt          *time.Time
	CancelledAt     *time.Time
	FundsHoldUntil  *time.Time
	FundsReleasedAt *time.Time

	ParentReviewed bool
	SitterReviewed bool

	StripeIntentID   string
	StripeTransferID *string
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:                 uuid.New(),
		AdID:               uuid.New(),
		ApplicationID:      uuid.New(),
		ParentID:           uuid.New(),
		SitterID:           uuid.New(),
		HourlyRateCents:    2000,
		ServiceFeeCents:    200,
		PlatformFeePercent: 15,
		Status:             reservation.StatusPendingPayment,
		Funds:              reservation.FundsPendingService,
		ReservedAt:         now,
		ServiceStartAt:     now.Add(72 * time.Hour),
		StripeIntentID:     "pi_test_123",
	}
}

// Clone derives an independent copy, letting one base fixture fan out into
// several case variants without sharing pointer fields.
func (b *ReservationBuilder) Clone() *ReservationBuilder {
	var c ReservationBuilder
	if err := copier.CopyWithOption(&c, b, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return &c
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Paid moves the builder into a paid state consistent with the status.
func (b *ReservationBuilder) Paid() *ReservationBuilder {
	paidAt := b.ReservedAt.Add(time.Minute)
	b.Status = reservation.StatusPaid
	b.Funds = reservation.FundsPendingService
	b.PaidAt = &paidAt
	return b
}

func (b *ReservationBuilder) Active() *ReservationBuilder {
	b.Paid()
	b.Status = reservation.StatusActive
	return b
}

// ServiceCompleted puts the reservation after a finished service, with the
// funds held and the hold window ending 24h after the given end time.
func (b *ReservationBuilder) ServiceCompleted(endedAt time.Time) *ReservationBuilder {
	b.Active()
	holdUntil := endedAt.Add(24 * time.Hour)
	b.Status = reservation.StatusServiceCompleted
	b.Funds = reservation.FundsHeldForValidation
	b.ServiceEndAt = &endedAt
	b.FundsHoldUntil = &holdUntil
	return b
}

func (b *ReservationBuilder) Build() *reservation.Reservation {
	fees := reservation.NewFeeSchedule(b.ServiceFeeCents, b.PlatformFeePercent).
		Compute(reservation.NewMoney(b.HourlyRateCents))

	return reservation.Reconstruct(
		b.ID, b.AdID, b.ApplicationID, b.ParentID, b.SitterID,
		b.ConversationID,
		fees,
		b.Status,
		b.Funds,
		b.ReservedAt, b.ServiceStartAt,
		b.ServiceEndAt, b.PaidAt, b.CancelledAt, b.FundsHoldUntil, b.FundsReleasedAt,
		b.ParentReviewed, b.SitterReviewed,
		b.StripeIntentID,
		b.StripeTransferID, nil, nil,
		b.ReservedAt, b.ReservedAt,
	)
}
