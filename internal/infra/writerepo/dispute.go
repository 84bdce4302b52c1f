package writerepo

import (
	"context"

	"sitlink/internal/domain/dispute"
	"sitlink/internal/infra"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/pkg/pgconv"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type DisputeRepository struct {
	queries *sqlgen.Queries
}

func NewDisputeRepository(queries *sqlgen.Queries) shared.DisputeRepository {
	return &DisputeRepository{queries: queries}
}

func (r *DisputeRepository) Create(ctx context.Context, db sqlgen.DBTX, d *dispute.Dispute) error {
	if err := r.queries.CreateDispute(ctx, db, disputeToRow(d)); err != nil {
		return wrapWriteErr("failed to create dispute", err)
	}
	return nil
}

func (r *DisputeRepository) FindOpenByReservation(ctx context.Context, db sqlgen.DBTX, reservationID uuid.UUID) (*dispute.Dispute, error) {
	row, err := r.queries.FindOpenDisputeByReservation(ctx, db, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no open dispute for reservation", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find open dispute", err)
	}
	return rowToDispute(row), nil
}

func (r *DisputeRepository) GetForUpdate(ctx context.Context, db sqlgen.DBTX, id uuid.UUID) (*dispute.Dispute, error) {
	row, err := r.queries.GetDisputeForUpdate(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dispute not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock dispute", err)
	}
	return rowToDispute(row), nil
}

func (r *DisputeRepository) Update(ctx context.Context, db sqlgen.DBTX, d *dispute.Dispute) error {
	if err := r.queries.UpdateDispute(ctx, db, disputeToRow(d)); err != nil {
		return infra.WrapRepoErr("failed to update dispute", err)
	}
	return nil
}
