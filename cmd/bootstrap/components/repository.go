package components

import (
	infraqueries "stayhub/internal/infra/queries"
	"stayhub/internal/infra/readstore"
	"stayhub/internal/infra/repository"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQueries,
		NewDBTX,
		fx.Annotate(
			repository.NewPromoCodeRepository,
			fx.As(new(commands.PromoCodeRepository)),
		),
		fx.Annotate(
			repository.NewAvailabilityRepository,
			fx.As(new(commands.AvailabilityRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		fx.Annotate(
			repository.NewStaffRepository,
			fx.As(new(commands.StaffRepository)),
		),

		fx.Annotate(
			readstore.NewPromoCodeReadStore,
			fx.As(new(queries.PromoCodeReadStore)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
	),
)

func NewQueries(_ *pgxpool.Pool) *infraqueries.Queries {
	return infraqueries.New()
}

func NewDBTX(pool *pgxpool.Pool) infraqueries.DBTX {
	return pool
}
