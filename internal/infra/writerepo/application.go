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

type ApplicationRepository struct {
	queries *sqlgen.Queries
}

func NewApplicationRepository(queries *sqlgen.Queries) shared.ApplicationRepository {
	return &ApplicationRepository{queries: queries}
}

func (r *ApplicationRepository) GetForUpdate(ctx context.Context, db sqlgen.DBTX, id uuid.UUID) (*shared.ApplicationSnapshot, error) {
	row, err := r.queries.GetApplicationForUpdate(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock application", err)
	}

	return &shared.ApplicationSnapshot{
		ID:              row.ID,
		AdID:            row.AdID,
		ParentID:        row.ParentID,
		SitterID:        row.SitterID,
		ConversationID:  pgconv.UUIDPtrFromPgtype(row.ConversationID),
		HourlyRateCents: row.HourlyRateCents,
		ServiceStartAt:  pgconv.TimeFromPgtype(row.ServiceStartAt),
		ServiceEndAt:    pgconv.TimeFromPgtype(row.ServiceEndAt),
		Status:          row.Status,
	}, nil
}

func (r *ApplicationRepository) MarkCancelled(ctx context.Context, db sqlgen.DBTX, id uuid.UUID, now time.Time) error {
	if err := r.queries.MarkApplicationCancelled(ctx, db, id, pgconv.TimeToPgtype(now)); err != nil {
		return infra.WrapRepoErr("failed to cancel application", err)
	}
	return nil
}
