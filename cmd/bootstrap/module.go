package bootstrap

import (
	"pos-register/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
