package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	ListBySubject(ctx context.Context, subjectID uuid.UUID, limit int32) ([]ReviewView, error)
}

type ReviewQueries interface {
	ListReviewsForUser(ctx context.Context, subjectID uuid.UUID) ([]ReviewView, error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
}

func NewReviewQueries(readStore ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{
		readStore: readStore,
	}
}

func (q *reviewQueriesImpl) ListReviewsForUser(ctx context.Context, subjectID uuid.UUID) ([]ReviewView, error) {
	return q.readStore.ListBySubject(ctx, subjectID, defaultListLimit)
}
