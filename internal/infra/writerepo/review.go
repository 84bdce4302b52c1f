package writerepo

import (
	"context"

	"sitlink/internal/domain/review"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/pkg/pgconv"
	"sitlink/internal/usecase/shared"
)

type ReviewRepository struct {
	queries *sqlgen.Queries
}

func NewReviewRepository(queries *sqlgen.Queries) shared.ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) Create(ctx context.Context, db sqlgen.DBTX, rev *review.Review) error {
	row := sqlgen.Review{
		ID:            rev.ID(),
		ReservationID: rev.ReservationID(),
		AuthorID:      rev.AuthorID(),
		SubjectID:     rev.SubjectID(),
		Rating:        int32(rev.Rating().Value()),
		Comment:       rev.Comment().String(),
		IsSystem:      rev.IsSystem(),
		CreatedAt:     pgconv.TimeToPgtype(rev.CreatedAt()),
	}
	if err := r.queries.CreateReview(ctx, db, row); err != nil {
		return wrapWriteErr("failed to create review", err)
	}
	return nil
}
