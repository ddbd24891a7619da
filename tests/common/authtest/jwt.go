//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"parkspot/internal/domain/user"
	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/jwt"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID int64, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, _, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64, role user.Role) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
