package queries

import (
	"context"

	"github.com/google/uuid"

	"sitlink/internal/domain/user"
	"sitlink/internal/infra"
	"sitlink/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationAccess   = errs.New("reservation access denied")
)

const defaultListLimit = 50

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]ReservationView, error)
	ListTransactions(ctx context.Context, reservationID uuid.UUID) ([]TransactionView, error)
}

type ReservationQueries interface {
	GetReservation(ctx context.Context, id, viewerID uuid.UUID, viewerRole string) (*ReservationView, error)
	ListMyReservations(ctx context.Context, viewerID uuid.UUID) ([]ReservationView, error)
	ListTransactions(ctx context.Context, reservationID, viewerID uuid.UUID, viewerRole string) ([]TransactionView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		readStore: readStore,
	}
}

func (q *reservationQueriesImpl) GetReservation(ctx context.Context, id, viewerID uuid.UUID, viewerRole string) (*ReservationView, error) {
	view, err := q.findVisible(ctx, id, viewerID, viewerRole)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListMyReservations(ctx context.Context, viewerID uuid.UUID) ([]ReservationView, error) {
	return q.readStore.ListByUser(ctx, viewerID, defaultListLimit)
}

func (q *reservationQueriesImpl) ListTransactions(ctx context.Context, reservationID, viewerID uuid.UUID, viewerRole string) ([]TransactionView, error) {
	if _, err := q.findVisible(ctx, reservationID, viewerID, viewerRole); err != nil {
		return nil, err
	}
	return q.readStore.ListTransactions(ctx, reservationID)
}

// findVisible enforces that only the two parties (or an admin) can read a
// reservation and its ledger.
func (q *reservationQueriesImpl) findVisible(ctx context.Context, id, viewerID uuid.UUID, viewerRole string) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if viewerRole != user.RoleAdmin.String() && view.ParentID != viewerID && view.SitterID != viewerID {
		return nil, ErrReservationAccess
	}
	return view, nil
}
