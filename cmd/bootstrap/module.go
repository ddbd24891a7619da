package bootstrap

import (
	"go.uber.org/fx"

	"parkspot/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	RateLimitModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
