package components

import (
	"stadium-scheduler/internal/infra/readstore"
	sqlc "stadium-scheduler/internal/infra/sqlc/generated"
	"stadium-scheduler/internal/infra/uow"
	"stadium-scheduler/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Club and stadium
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ClubReadQueries)),
		),
		fx.Annotate(
			readstore.NewClubReadStore,
			fx.As(new(queries.StadiumReadStore)),
		),
	),
)

// Repositories are created per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
