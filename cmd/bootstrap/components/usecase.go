package components

import (
	"engros-ordering/internal/pkg/clock"
	"engros-ordering/internal/usecase/commands"
	"engros-ordering/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
		queries.NewCustomerQueries,
		queries.NewGroupPriceQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		commands.NewOrderCommands,
		commands.NewGroupPriceCommands,
		commands.NewUniqueOfferCommands,
		commands.NewFlashSaleCommands,
	),
)
