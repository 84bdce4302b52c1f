package writerepo

import (
	"context"
	"time"

	"sitlink/internal/infra"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/pkg/pgconv"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxRepository struct {
	queries *sqlgen.Queries
}

func NewOutboxRepository(queries *sqlgen.Queries) shared.OutboxRepository {
	return &OutboxRepository{queries: queries}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, db sqlgen.DBTX, job shared.OutboxJob) error {
	row := sqlgen.OutboxJob{
		ID:          job.ID,
		RecipientID: job.RecipientID,
		Event:       job.Event,
		Payload:     job.Payload,
		RunAt:       pgconv.TimeToPgtype(job.RunAt),
		SentAt:      pgconv.TimePtrToPgtype(job.SentAt),
		Attempts:    job.Attempts,
	}
	if err := r.queries.EnqueueOutboxJob(ctx, db, row); err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox job", err)
	}
	return nil
}

func (r *OutboxRepository) GetPending(ctx context.Context, db sqlgen.DBTX, id uuid.UUID) (*shared.OutboxJob, error) {
	row, err := r.queries.GetPendingOutboxJob(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("outbox job not found or already sent", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get outbox job", err)
	}
	return &shared.OutboxJob{
		ID:          row.ID,
		RecipientID: row.RecipientID,
		Event:       row.Event,
		Payload:     row.Payload,
		RunAt:       pgconv.TimeFromPgtype(row.RunAt),
		SentAt:      pgconv.TimePtrFromPgtype(row.SentAt),
		Attempts:    row.Attempts,
	}, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, db sqlgen.DBTX, id uuid.UUID, now time.Time) error {
	if err := r.queries.MarkOutboxJobSent(ctx, db, id, pgconv.TimeToPgtype(now)); err != nil {
		return infra.WrapRepoErr("failed to mark outbox job sent", err)
	}
	return nil
}

func (r *OutboxRepository) IncrementAttempts(ctx context.Context, db sqlgen.DBTX, id uuid.UUID) error {
	if err := r.queries.IncrementOutboxAttempts(ctx, db, id); err != nil {
		return infra.WrapRepoErr("failed to increment outbox attempts", err)
	}
	return nil
}
