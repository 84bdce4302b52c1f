package sqlgen

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Transaction struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	ParentID      uuid.UUID
	SitterID      uuid.UUID
	Type          string
	AmountCents   int64
	GatewayRef    string
	Reason        string
	CreatedAt     pgtype.Timestamptz
}

const appendTransaction = `
INSERT INTO transactions (id, reservation_id, parent_id, sitter_id, type,
	amount_cents, gateway_ref, reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (q *Queries) AppendTransaction(ctx context.Context, db DBTX, arg Transaction) error {
	_, err := db.Exec(ctx, appendTransaction,
		arg.ID, arg.ReservationID, arg.ParentID, arg.SitterID, arg.Type,
		arg.AmountCents, arg.GatewayRef, arg.Reason, arg.CreatedAt,
	)
	return err
}

const listTransactionsByReservation = `
SELECT id, reservation_id, parent_id, sitter_id, type, amount_cents,
	gateway_ref, reason, created_at
FROM transactions
WHERE reservation_id = $1
ORDER BY created_at
`

func (q *Queries) ListTransactionsByReservation(ctx context.Context, db DBTX, reservationID uuid.UUID) ([]Transaction, error) {
	rows, err := db.Query(ctx, listTransactionsByReservation, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(
			&t.ID, &t.ReservationID, &t.ParentID, &t.SitterID, &t.Type,
			&t.AmountCents, &t.GatewayRef, &t.Reason, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
