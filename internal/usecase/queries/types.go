package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReservationView represents read-optimized reservation data, including the
// display names of both parties. Money fields are minor units; the DTO layer
// converts to decimal at the API boundary.
type ReservationView struct {
	ID             uuid.UUID  `json:"id"`
	AdID           uuid.UUID  `json:"ad_id"`
	ApplicationID  uuid.UUID  `json:"application_id"`
	ParentID       uuid.UUID  `json:"parent_id"`
	SitterID       uuid.UUID  `json:"babysitter_id"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`

	ParentName string `json:"parent_name"`
	SitterName string `json:"babysitter_name"`

	HourlyRateCents   int64 `json:"hourly_rate_cents"`
	DepositCents      int64 `json:"deposit_cents"`
	ServiceFeeCents   int64 `json:"service_fee_cents"`
	PlatformFeeCents  int64 `json:"platform_fee_cents"`
	SitterPayoutCents int64 `json:"babysitter_payout_cents"`
	TotalDepositCents int64 `json:"total_deposit_cents"`

	Status      string `json:"status"`
	FundsStatus string `json:"funds_status"`

	ReservedAt      time.Time  `json:"reserved_at"`
	ServiceStartAt  time.Time  `json:"service_start_at"`
	ServiceEndAt    *time.Time `json:"service_end_at,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	FundsHoldUntil  *time.Time `json:"funds_hold_until,omitempty"`
	FundsReleasedAt *time.Time `json:"funds_released_at,omitempty"`

	ParentReviewed bool `json:"parent_reviewed"`
	SitterReviewed bool `json:"babysitter_reviewed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransactionView represents one read-only audit line of the money ledger.
type TransactionView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Type          string    `json:"type"`
	AmountCents   int64     `json:"amount_cents"`
	GatewayRef    string    `json:"gateway_ref"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
}

// ReviewView represents read-optimized review data.
type ReviewView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	AuthorID      uuid.UUID `json:"author_id"`
	SubjectID     uuid.UUID `json:"subject_id"`
	Rating        int32     `json:"rating"`
	Comment       string    `json:"comment"`
	IsSystem      bool      `json:"is_system"`
	CreatedAt     time.Time `json:"created_at"`
}
