package components

import (
	"stayhub/internal/domain/booking"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		booking.NewFactory,

		commands.NewAuthCommands,
		commands.NewPromoCodeCommands,
		commands.NewAvailabilityCommands,
		commands.NewBookingCommands,
		commands.NewCatalogCommands,

		queries.NewPromoCodeQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewCatalogQueries,

		usecase.NewTokenValidator,
	),
)
