package writerepo

import (
	"context"

	"sitlink/internal/domain/ledger"
	"sitlink/internal/infra"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/pkg/pgconv"
	"sitlink/internal/usecase/shared"
)

type LedgerRepository struct {
	queries *sqlgen.Queries
}

func NewLedgerRepository(queries *sqlgen.Queries) shared.LedgerRepository {
	return &LedgerRepository{queries: queries}
}

func (r *LedgerRepository) Append(ctx context.Context, db sqlgen.DBTX, entry *ledger.Entry) error {
	row := sqlgen.Transaction{
		ID:            entry.ID(),
		ReservationID: entry.ReservationID(),
		ParentID:      entry.ParentID(),
		SitterID:      entry.SitterID(),
		Type:          string(entry.Type()),
		AmountCents:   entry.Amount().Cents(),
		GatewayRef:    entry.GatewayRef(),
		Reason:        entry.Reason(),
		CreatedAt:     pgconv.TimeToPgtype(entry.CreatedAt()),
	}
	if err := r.queries.AppendTransaction(ctx, db, row); err != nil {
		return infra.WrapRepoErr("failed to append transaction", err)
	}
	return nil
}
