package sqlgen

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Dispute struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	ReporterID    uuid.UUID
	ReportedID    uuid.UUID
	Reason        string
	Description   string
	Status        string
	Resolution    pgtype.Text
	CreatedAt     pgtype.Timestamptz
	ResolvedAt    pgtype.Timestamptz
}

const disputeColumns = `id, reservation_id, reporter_id, reported_id, reason,
	description, status, resolution, created_at, resolved_at`

func scanDispute(row interface{ Scan(dest ...any) error }) (Dispute, error) {
	var d Dispute
	err := row.Scan(
		&d.ID, &d.ReservationID, &d.ReporterID, &d.ReportedID, &d.Reason,
		&d.Description, &d.Status, &d.Resolution, &d.CreatedAt, &d.ResolvedAt,
	)
	return d, err
}

const createDispute = `
INSERT INTO disputes (` + disputeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

func (q *Queries) CreateDispute(ctx context.Context, db DBTX, arg Dispute) error {
	_, err := db.Exec(ctx, createDispute,
		arg.ID, arg.ReservationID, arg.ReporterID, arg.ReportedID, arg.Reason,
		arg.Description, arg.Status, arg.Resolution, arg.CreatedAt, arg.ResolvedAt,
	)
	return err
}

const findOpenDisputeByReservation = `
SELECT ` + disputeColumns + ` FROM disputes
WHERE reservation_id = $1 AND status IN ('pending', 'in_progress')
ORDER BY created_at
LIMIT 1
`

func (q *Queries) FindOpenDisputeByReservation(ctx context.Context, db DBTX, reservationID uuid.UUID) (Dispute, error) {
	return scanDispute(db.QueryRow(ctx, findOpenDisputeByReservation, reservationID))
}

const getDisputeForUpdate = `
SELECT ` + disputeColumns + ` FROM disputes WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetDisputeForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Dispute, error) {
	return scanDispute(db.QueryRow(ctx, getDisputeForUpdate, id))
}

const updateDispute = `
UPDATE disputes SET status = $2, resolution = $3, resolved_at = $4 WHERE id = $1
`

func (q *Queries) UpdateDispute(ctx context.Context, db DBTX, arg Dispute) error {
	_, err := db.Exec(ctx, updateDispute, arg.ID, arg.Status, arg.Resolution, arg.ResolvedAt)
	return err
}
