package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"parkspot/internal/infra/cache"
	"parkspot/internal/infra/query"
	"parkspot/internal/infra/readstore"
	"parkspot/internal/infra/uow"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Spot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SpotViewQueries)),
		),
		fx.Annotate(
			readstore.NewSpotReadStore,
			fx.As(new(queries.SpotReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		// Spot list cache
		fx.Annotate(
			func(c *cache.SpotCache) *cache.SpotCache { return c },
			fx.As(new(queries.SpotListCache)),
			fx.As(new(commands.SpotCacheInvalidator)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var writeModule = fx.Module("persistence/write",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries() *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
