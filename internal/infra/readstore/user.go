package readstore

import (
	"context"

	"sitlink/internal/infra"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/pkg/pgconv"
	"sitlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	queries *sqlgen.Queries
	db      sqlgen.DBTX
}

func NewUserReadStore(q *sqlgen.Queries, db sqlgen.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: q,
		db:      db,
	}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := s.queries.GetUserByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	return toAuthorizedUserView(row), nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := s.queries.GetUserByEmail(ctx, s.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to get user by email", err)
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func toAuthorizedUserView(row sqlgen.User) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          row.ID,
		Email:       row.Email,
		Role:        row.Role,
		DisplayName: row.DisplayName,
	}
}
