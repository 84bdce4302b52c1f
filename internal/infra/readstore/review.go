package readstore

import (
	"context"

	"sitlink/internal/infra"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/pkg/pgconv"
	"sitlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	queries *sqlgen.Queries
	db      sqlgen.DBTX
}

func NewReviewReadStore(q *sqlgen.Queries, db sqlgen.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: q,
		db:      db,
	}
}

func (s *ReviewReadStore) ListBySubject(ctx context.Context, subjectID uuid.UUID, limit int32) ([]queries.ReviewView, error) {
	rows, err := s.queries.ListReviewsBySubject(ctx, s.db, subjectID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	out := make([]queries.ReviewView, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.ReviewView{
			ID:            row.ID,
			ReservationID: row.ReservationID,
			AuthorID:      row.AuthorID,
			SubjectID:     row.SubjectID,
			Rating:        row.Rating,
			Comment:       row.Comment,
			IsSystem:      row.IsSystem,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
