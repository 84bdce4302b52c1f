package sqlgen

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxJob struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	Event       string
	Payload     []byte
	RunAt       pgtype.Timestamptz
	SentAt      pgtype.Timestamptz
	Attempts    int32
}

const enqueueOutboxJob = `
INSERT INTO outbox_jobs (id, recipient_id, event, payload, run_at, sent_at, attempts)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (q *Queries) EnqueueOutboxJob(ctx context.Context, db DBTX, arg OutboxJob) error {
	_, err := db.Exec(ctx, enqueueOutboxJob,
		arg.ID, arg.RecipientID, arg.Event, arg.Payload, arg.RunAt, arg.SentAt, arg.Attempts,
	)
	return err
}

const getPendingOutboxJob = `
SELECT id, recipient_id, event, payload, run_at, sent_at, attempts
FROM outbox_jobs
WHERE id = $1 AND sent_at IS NULL
`

func (q *Queries) GetPendingOutboxJob(ctx context.Context, db DBTX, id uuid.UUID) (OutboxJob, error) {
	var j OutboxJob
	err := db.QueryRow(ctx, getPendingOutboxJob, id).Scan(
		&j.ID, &j.RecipientID, &j.Event, &j.Payload, &j.RunAt, &j.SentAt, &j.Attempts,
	)
	return j, err
}

const markOutboxJobSent = `
UPDATE outbox_jobs SET sent_at = $2 WHERE id = $1
`

func (q *Queries) MarkOutboxJobSent(ctx context.Context, db DBTX, id uuid.UUID, now pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markOutboxJobSent, id, now)
	return err
}

const incrementOutboxAttempts = `
UPDATE outbox_jobs SET attempts = attempts + 1 WHERE id = $1
`

func (q *Queries) IncrementOutboxAttempts(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, incrementOutboxAttempts, id)
	return err
}
