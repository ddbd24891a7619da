package bootstrap

import (
	"fmt"
	"time"

	"go.uber.org/fx"

	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/jwt"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	if tokenDuration <= 0 {
		return nil, fmt.Errorf("invalid JWT_DURATION: must be positive, got %s", tokenDuration)
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration), nil
}
