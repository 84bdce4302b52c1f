package sqlgen

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Reservation struct {
	ID             uuid.UUID
	AdID           uuid.UUID
	ApplicationID  uuid.UUID
	ParentID       uuid.UUID
	SitterID       uuid.UUID
	ConversationID pgtype.UUID

	HourlyRateCents  int64
	DepositCents     int64
	ServiceFeeCents  int64
	PlatformFeeCents int64
	SitterPayoutCents int64
	TotalDepositCents int64

	Status      string
	FundsStatus string

	ReservedAt      pgtype.Timestamptz
	ServiceStartAt  pgtype.Timestamptz
	ServiceEndAt    pgtype.Timestamptz
	PaidAt          pgtype.Timestamptz
	CancelledAt     pgtype.Timestamptz
	FundsHoldUntil  pgtype.Timestamptz
	FundsReleasedAt pgtype.Timestamptz

	ParentReviewed bool
	SitterReviewed bool

	StripeIntentID   string
	StripeTransferID pgtype.Text
	StripeRefundID   pgtype.Text
	GatewayError     pgtype.Text

	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

const reservationColumns = `id, ad_id, application_id, parent_id, sitter_id, conversation_id,
	hourly_rate_cents, deposit_cents, service_fee_cents, platform_fee_cents,
	sitter_payout_cents, total_deposit_cents,
	status, funds_status,
	reserved_at, service_start_at, service_end_at, paid_at, cancelled_at,
	funds_hold_until, funds_released_at,
	parent_reviewed, sitter_reviewed,
	stripe_intent_id, stripe_transfer_id, stripe_refund_id, gateway_error,
	created_at, updated_at`

func scanReservation(row interface{ Scan(dest ...any) error }) (Reservation, error) {
	var r Reservation
	err := row.Scan(
		&r.ID, &r.AdID, &r.ApplicationID, &r.ParentID, &r.SitterID, &r.ConversationID,
		&r.HourlyRateCents, &r.DepositCents, &r.ServiceFeeCents, &r.PlatformFeeCents,
		&r.SitterPayoutCents, &r.TotalDepositCents,
		&r.Status, &r.FundsStatus,
		&r.ReservedAt, &r.ServiceStartAt, &r.ServiceEndAt, &r.PaidAt, &r.CancelledAt,
		&r.FundsHoldUntil, &r.FundsReleasedAt,
		&r.ParentReviewed, &r.SitterReviewed,
		&r.StripeIntentID, &r.StripeTransferID, &r.StripeRefundID, &r.GatewayError,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

const createReservation = `
INSERT INTO reservations (` + reservationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg Reservation) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID, arg.AdID, arg.ApplicationID, arg.ParentID, arg.SitterID, arg.ConversationID,
		arg.HourlyRateCents, arg.DepositCents, arg.ServiceFeeCents, arg.PlatformFeeCents,
		arg.SitterPayoutCents, arg.TotalDepositCents,
		arg.Status, arg.FundsStatus,
		arg.ReservedAt, arg.ServiceStartAt, arg.ServiceEndAt, arg.PaidAt, arg.CancelledAt,
		arg.FundsHoldUntil, arg.FundsReleasedAt,
		arg.ParentReviewed, arg.SitterReviewed,
		arg.StripeIntentID, arg.StripeTransferID, arg.StripeRefundID, arg.GatewayError,
		arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getReservationForUpdate = `
SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getReservationForUpdate, id))
}

const getReservationByIntentForUpdate = `
SELECT ` + reservationColumns + ` FROM reservations WHERE stripe_intent_id = $1 FOR UPDATE
`

func (q *Queries) GetReservationByIntentForUpdate(ctx context.Context, db DBTX, intentID string) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByIntentForUpdate, intentID))
}

const getPendingReservationByApplication = `
SELECT ` + reservationColumns + ` FROM reservations
WHERE application_id = $1 AND status = 'pending_payment'
FOR UPDATE
`

func (q *Queries) GetPendingReservationByApplication(ctx context.Context, db DBTX, applicationID uuid.UUID) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getPendingReservationByApplication, applicationID))
}

const getActiveReservationByApplication = `
SELECT ` + reservationColumns + ` FROM reservations
WHERE application_id = $1
  AND status IN ('pending_payment', 'paid', 'active')
FOR UPDATE
`

func (q *Queries) GetActiveReservationByApplication(ctx context.Context, db DBTX, applicationID uuid.UUID) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getActiveReservationByApplication, applicationID))
}

const updateReservation = `
UPDATE reservations SET
	conversation_id = $2,
	status = $3,
	funds_status = $4,
	service_end_at = $5,
	paid_at = $6,
	cancelled_at = $7,
	funds_hold_until = $8,
	funds_released_at = $9,
	parent_reviewed = $10,
	sitter_reviewed = $11,
	stripe_transfer_id = $12,
	stripe_refund_id = $13,
	gateway_error = $14,
	service_start_at = $15,
	updated_at = $16
WHERE id = $1
`

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg Reservation) error {
	_, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.ConversationID,
		arg.Status,
		arg.FundsStatus,
		arg.ServiceEndAt,
		arg.PaidAt,
		arg.CancelledAt,
		arg.FundsHoldUntil,
		arg.FundsReleasedAt,
		arg.ParentReviewed,
		arg.SitterReviewed,
		arg.StripeTransferID,
		arg.StripeRefundID,
		arg.GatewayError,
		arg.ServiceStartAt,
		arg.UpdatedAt,
	)
	return err
}

type ReservationViewRow struct {
	Reservation
	ParentName string
	SitterName string
}

const getReservationView = `
SELECT r.id, r.ad_id, r.application_id, r.parent_id, r.sitter_id, r.conversation_id,
	r.hourly_rate_cents, r.deposit_cents, r.service_fee_cents, r.platform_fee_cents,
	r.sitter_payout_cents, r.total_deposit_cents,
	r.status, r.funds_status,
	r.reserved_at, r.service_start_at, r.service_end_at, r.paid_at, r.cancelled_at,
	r.funds_hold_until, r.funds_released_at,
	r.parent_reviewed, r.sitter_reviewed,
	r.stripe_intent_id, r.stripe_transfer_id, r.stripe_refund_id, r.gateway_error,
	r.created_at, r.updated_at,
	p.display_name AS parent_name,
	s.display_name AS sitter_name
FROM reservations r
JOIN users p ON p.id = r.parent_id
JOIN users s ON s.id = r.sitter_id
WHERE r.id = $1
`

func (q *Queries) GetReservationView(ctx context.Context, db DBTX, id uuid.UUID) (ReservationViewRow, error) {
	var r ReservationViewRow
	err := db.QueryRow(ctx, getReservationView, id).Scan(
		&r.ID, &r.AdID, &r.ApplicationID, &r.ParentID, &r.SitterID, &r.ConversationID,
		&r.HourlyRateCents, &r.DepositCents, &r.ServiceFeeCents, &r.PlatformFeeCents,
		&r.SitterPayoutCents, &r.TotalDepositCents,
		&r.Status, &r.FundsStatus,
		&r.ReservedAt, &r.ServiceStartAt, &r.ServiceEndAt, &r.PaidAt, &r.CancelledAt,
		&r.FundsHoldUntil, &r.FundsReleasedAt,
		&r.ParentReviewed, &r.SitterReviewed,
		&r.StripeIntentID, &r.StripeTransferID, &r.StripeRefundID, &r.GatewayError,
		&r.CreatedAt, &r.UpdatedAt,
		&r.ParentName, &r.SitterName,
	)
	return r, err
}

const listReservationsByUser = `
SELECT ` + reservationColumns + ` FROM reservations
WHERE parent_id = $1 OR sitter_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, userID uuid.UUID, limit int32) ([]Reservation, error) {
	rows, err := db.Query(ctx, listReservationsByUser, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
