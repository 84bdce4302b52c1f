package sqlgen

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Application struct {
	ID              uuid.UUID
	AdID            uuid.UUID
	ParentID        uuid.UUID
	SitterID        uuid.UUID
	ConversationID  pgtype.UUID
	HourlyRateCents int64
	ServiceStartAt  pgtype.Timestamptz
	ServiceEndAt    pgtype.Timestamptz
	Status          string
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

const getApplicationForUpdate = `
SELECT a.id, a.ad_id, ad.parent_id, a.sitter_id, a.conversation_id,
	a.hourly_rate_cents, a.service_start_at, a.service_end_at, a.status,
	a.created_at, a.updated_at
FROM applications a
JOIN ads ad ON ad.id = a.ad_id
WHERE a.id = $1
FOR UPDATE OF a
`

func (q *Queries) GetApplicationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Application, error) {
	var a Application
	err := db.QueryRow(ctx, getApplicationForUpdate, id).Scan(
		&a.ID, &a.AdID, &a.ParentID, &a.SitterID, &a.ConversationID,
		&a.HourlyRateCents, &a.ServiceStartAt, &a.ServiceEndAt, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

const markApplicationCancelled = `
UPDATE applications SET status = 'cancelled', updated_at = $2 WHERE id = $1
`

func (q *Queries) MarkApplicationCancelled(ctx context.Context, db DBTX, id uuid.UUID, now pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markApplicationCancelled, id, now)
	return err
}
