package components

import (
	"log/slog"

	"pos-register/internal/infra/notify"
	"pos-register/internal/infra/salesgw"
	"pos-register/internal/pkg/config"
	"pos-register/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewSalesClient,
		fx.Annotate(
			func(c *salesgw.Client) *salesgw.Client { return c },
			fx.As(new(usecase.SalesGateway)),
		),
		fx.Annotate(
			func(c *salesgw.Client) *salesgw.Client { return c },
			fx.As(new(usecase.CatalogGateway)),
		),
		fx.Annotate(
			notify.NewDeepLinkNotifier,
			fx.As(new(usecase.ReceiptNotifier)),
		),
	),
)

func NewSalesClient(cfg config.Config, logger *slog.Logger) *salesgw.Client {
	return salesgw.NewClient(cfg.SalesAPI, logger)
}
