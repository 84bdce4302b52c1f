package writerepo

import (
	"context"

	"sitlink/internal/infra"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/pkg/pgconv"
	"sitlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct {
	queries *sqlgen.Queries
}

func NewUserRepository(queries *sqlgen.Queries) shared.UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) GetSnapshot(ctx context.Context, db sqlgen.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	return &shared.UserSnapshot{
		ID:               row.ID,
		Email:            row.Email,
		Role:             row.Role,
		DisplayName:      row.DisplayName,
		StripeCustomerID: pgconv.StringPtrFromPgtype(row.StripeCustomerID),
		StripeAccountID:  pgconv.StringPtrFromPgtype(row.StripeAccountID),
		PushToken:        pgconv.StringPtrFromPgtype(row.PushToken),
	}, nil
}
