package writerepo

import (
	"context"
	"errors"

	"sitlink/internal/domain/reservation"
	"sitlink/internal/infra"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/pkg/pgconv"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type ReservationRepository struct {
	queries *sqlgen.Queries
}

func NewReservationRepository(queries *sqlgen.Queries) shared.ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, db sqlgen.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, db, reservationToRow(res)); err != nil {
		return wrapWriteErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, db sqlgen.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return rowToReservation(row), nil
}

func (r *ReservationRepository) GetByIntentForUpdate(ctx context.Context, db sqlgen.DBTX, intentID string) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIntentForUpdate(ctx, db, intentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found for payment intent", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation by intent", err)
	}
	return rowToReservation(row), nil
}

func (r *ReservationRepository) FindPendingByApplication(ctx context.Context, db sqlgen.DBTX, applicationID uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetPendingReservationByApplication(ctx, db, applicationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no pending reservation for application", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pending reservation", err)
	}
	return rowToReservation(row), nil
}

func (r *ReservationRepository) FindActiveByApplication(ctx context.Context, db sqlgen.DBTX, applicationID uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetActiveReservationByApplication(ctx, db, applicationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active reservation for application", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active reservation", err)
	}
	return rowToReservation(row), nil
}

func (r *ReservationRepository) Update(ctx context.Context, db sqlgen.DBTX, res *reservation.Reservation) error {
	if err := r.queries.UpdateReservation(ctx, db, reservationToRow(res)); err != nil {
		return wrapWriteErr("failed to update reservation", err)
	}
	return nil
}

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
