package components

import (
	"sitlink/internal/infra/readstore"
	"sitlink/internal/infra/sqlgen"
	"sitlink/internal/infra/uow"
	"sitlink/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlgen.Queries {
	return sqlgen.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlgen.DBTX {
	return pool
}
