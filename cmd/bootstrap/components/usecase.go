package components

import (
	"pos-register/internal/pkg/clock"
	"pos-register/internal/pkg/config"
	"pos-register/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewCatalogUseCase,
		fx.Annotate(
			func(u usecase.CatalogUseCase) usecase.CatalogUseCase { return u },
			fx.As(new(usecase.StockChecker)),
		),
		usecase.NewCheckoutUseCase,
		usecase.NewTokenValidator,
	),
)

func NewCatalogUseCase(gateway usecase.CatalogGateway, cfg config.Config) usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(gateway, cfg.Catalog)
}
