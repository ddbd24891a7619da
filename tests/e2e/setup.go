//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"

	"parkspot/cmd/bootstrap"
	"parkspot/cmd/bootstrap/components"
	"parkspot/internal/infra/db"
	"parkspot/internal/pkg/config"
	"parkspot/tests/common/dbtest"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

// One postgres container per test binary; each suite gets its own database.
var (
	pgOnce     sync.Once
	pgEndpoint string
	pgErr      error
)

func adminDSN(hostPort string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, hostPort)
}

func postgresEndpoint(t *testing.T) string {
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw"},
				Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "max_connections=200"},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return adminDSN(host + ":" + port.Port())
				}).WithStartupTimeout(time.Minute),
			},
			Started: true,
		})
		if err != nil {
			pgErr = err
			return
		}
		pgEndpoint, pgErr = c.PortEndpoint(ctx, "5432/tcp", "")
	})
	require.NoError(t, pgErr, "start postgres container")
	return pgEndpoint
}

// createDatabase makes a throwaway database on the shared container and
// drops it when the suite finishes.
func createDatabase(t *testing.T, endpoint string) config.DBConfig {
	name := "parkspot_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx := context.Background()

	admin, err := pgxpool.New(ctx, adminDSN(endpoint))
	require.NoError(t, err)
	defer admin.Close()

	// the server can refuse CREATE DATABASE briefly right after startup
	require.Eventually(t, func() bool {
		_, err := admin.Exec(ctx, "CREATE DATABASE "+name)
		return err == nil
	}, 10*time.Second, 500*time.Millisecond, "create database %s", name)

	t.Cleanup(func() {
		p, err := pgxpool.New(context.Background(), adminDSN(endpoint))
		if err != nil {
			return
		}
		defer p.Close()
		_, _ = p.Exec(context.Background(), "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
	})

	host, port, _ := strings.Cut(endpoint, ":")
	return config.DBConfig{
		Host:     host,
		Port:     port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Europe/Zurich",
		MaxConns: 40,
	}
}

// startApp wires the production modules against the test pool.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CacheModule,
		bootstrap.RateLimitModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	})
	return router
}

// SharedSuite is embedded by every e2e suite.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	s.Config = config.NewTestConfig()
	s.Config.DB = createDatabase(t, postgresEndpoint(t))
	require.NoError(t, db.Migrate(s.Config.DB), "apply migrations")

	pool, closePool, err := db.Connect(s.Config.DB)
	require.NoError(t, err, "connect")
	t.Cleanup(closePool)
	s.DB = pool

	s.Router = startApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
