package sqlgen

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Review struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	AuthorID      uuid.UUID
	SubjectID     uuid.UUID
	Rating        int32
	Comment       string
	IsSystem      bool
	CreatedAt     pgtype.Timestamptz
}

const createReview = `
INSERT INTO reviews (id, reservation_id, author_id, subject_id, rating,
	comment, is_system, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (q *Queries) CreateReview(ctx context.Context, db DBTX, arg Review) error {
	_, err := db.Exec(ctx, createReview,
		arg.ID, arg.ReservationID, arg.AuthorID, arg.SubjectID, arg.Rating,
		arg.Comment, arg.IsSystem, arg.CreatedAt,
	)
	return err
}

const listReviewsBySubject = `
SELECT id, reservation_id, author_id, subject_id, rating, comment, is_system, created_at
FROM reviews
WHERE subject_id = $1
ORDER BY created_at DESC
LIMIT $2
`

func (q *Queries) ListReviewsBySubject(ctx context.Context, db DBTX, subjectID uuid.UUID, limit int32) ([]Review, error) {
	rows, err := db.Query(ctx, listReviewsBySubject, subjectID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var r Review
		if err := rows.Scan(
			&r.ID, &r.ReservationID, &r.AuthorID, &r.SubjectID, &r.Rating,
			&r.Comment, &r.IsSystem, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
