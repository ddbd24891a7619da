package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host          string        `envconfig:"DB_HOST" default:"localhost"`
	Port          string        `envconfig:"DB_PORT" default:"5432"`
	User          string        `envconfig:"DB_USER" required:"true"`
	Password      string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName        string        `envconfig:"DB_NAME" required:"true"`
	SSLMode       string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone      string        `envconfig:"DB_TIMEZONE" default:"Europe/Zurich"`
	MaxConns      int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns      int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	ConnLifetime  time.Duration `envconfig:"DB_CONN_LIFETIME" default:"30m"`
	RunMigrations bool          `envconfig:"DB_RUN_MIGRATIONS" default:"true"`
	SeedDemo      bool          `envconfig:"DB_SEED_DEMO" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Zurich"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"60m"`
}

type RateLimitConfig struct {
	Enabled bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS     float64       `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst   int           `envconfig:"RATE_LIMIT_BURST" default:"10"`
	TTL     time.Duration `envconfig:"RATE_LIMIT_TTL" default:"3m"`
}

// Redis is optional; an empty address disables the spot list cache.
type CacheConfig struct {
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:""`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	SpotListTTL   time.Duration `envconfig:"CACHE_SPOT_LIST_TTL" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// BuildMigrateURL returns the DSN in the scheme understood by the migrate pgx/v5 driver.
func (c *DBConfig) BuildMigrateURL() string {
	return fmt.Sprintf(
		"pgx5://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func (c *CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already present in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:          "localhost",
			Port:          "15433", // Test DB port
			User:          "test",
			Password:      "test",
			DBName:        "test_db",
			SSLMode:       "disable",
			TimeZone:      "Europe/Zurich",
			MaxConns:      20,
			MinConns:      1,
			ConnLifetime:  30 * time.Minute,
			RunMigrations: false,
			SeedDemo:      false,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Zurich",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-parkspot",
			Duration: "60m",
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			RPS:     1000,
			Burst:   1000,
			TTL:     time.Minute,
		},
		Cache: CacheConfig{
			SpotListTTL: 30 * time.Second,
		},
	}
}
