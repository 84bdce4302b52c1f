package readstore

import (
	"context"

	"sitlink/internal/infra"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/pkg/pgconv"
	"sitlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	queries *sqlgen.Queries
	db      sqlgen.DBTX
}

func NewReservationReadStore(q *sqlgen.Queries, db sqlgen.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: q,
		db:      db,
	}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := s.queries.GetReservationView(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view", err)
	}
	view := toReservationView(row.Reservation)
	view.ParentName = row.ParentName
	view.SitterName = row.SitterName
	return view, nil
}

func (s *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]queries.ReservationView, error) {
	rows, err := s.queries.ListReservationsByUser(ctx, s.db, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	out := make([]queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toReservationView(row))
	}
	return out, nil
}

func (s *ReservationReadStore) ListTransactions(ctx context.Context, reservationID uuid.UUID) ([]queries.TransactionView, error) {
	rows, err := s.queries.ListTransactionsByReservation(ctx, s.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	out := make([]queries.TransactionView, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.TransactionView{
			ID:            row.ID,
			ReservationID: row.ReservationID,
			Type:          row.Type,
			AmountCents:   row.AmountCents,
			GatewayRef:    row.GatewayRef,
			Reason:        row.Reason,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

func toReservationView(row sqlgen.Reservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:             row.ID,
		AdID:           row.AdID,
		ApplicationID:  row.ApplicationID,
		ParentID:       row.ParentID,
		SitterID:       row.SitterID,
		ConversationID: pgconv.UUIDPtrFromPgtype(row.ConversationID),

		HourlyRateCents:   row.HourlyRateCents,
		DepositCents:      row.DepositCents,
		ServiceFeeCents:   row.ServiceFeeCents,
		PlatformFeeCents:  row.PlatformFeeCents,
		SitterPayoutCents: row.SitterPayoutCents,
		TotalDepositCents: row.TotalDepositCents,

		Status:      row.Status,
		FundsStatus: row.FundsStatus,

		ReservedAt:      pgconv.TimeFromPgtype(row.ReservedAt),
		ServiceStartAt:  pgconv.TimeFromPgtype(row.ServiceStartAt),
		ServiceEndAt:    pgconv.TimePtrFromPgtype(row.ServiceEndAt),
		PaidAt:          pgconv.TimePtrFromPgtype(row.PaidAt),
		CancelledAt:     pgconv.TimePtrFromPgtype(row.CancelledAt),
		FundsHoldUntil:  pgconv.TimePtrFromPgtype(row.FundsHoldUntil),
		FundsReleasedAt: pgconv.TimePtrFromPgtype(row.FundsReleasedAt),

		ParentReviewed: row.ParentReviewed,
		SitterReviewed: row.SitterReviewed,

		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
