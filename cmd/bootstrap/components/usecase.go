package components

import (
	"go.uber.org/fx"

	"parkspot/internal/domain/reservation"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/jwt"
	"parkspot/internal/pkg/password"
	"parkspot/internal/usecase"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	password.NewBcryptHasher,
	fx.Annotate(
		reservation.NewHourlyPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewSpotQueries,
		queries.NewReservationQueries,
		func(u shared.UnitOfWork) queries.ReadOnlyRunner { return u },
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
