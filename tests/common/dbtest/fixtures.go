//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"parkspot/internal/infra/query"
)

// DBLike is satisfied by a pool, a single connection or an open transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of DefaultPassword
const (
	DefaultPassword     = "password123"
	defaultPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name, role, is_active)
		 VALUES ($1, $2, $3, $4, true)
		 ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		 RETURNING id`,
		strings.ToLower(email), defaultPasswordHash, "Test "+role, role).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, email string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", strings.ToLower(email))
	require.NoError(t, err)
}

type SpotFixture struct {
	Name              string
	TotalSpots        int
	OccupiedSpots     int
	PricePerHourCents int64
	IsActive          bool
}

func CreateTestSpot(t *testing.T, db DBLike, f SpotFixture) int64 {
	t.Helper()

	if f.Name == "" {
		f.Name = "Test Spot"
	}
	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO parking_spots (name, address, latitude, longitude, total_spots, occupied_spots, price_per_hour_cents, is_active)
		 VALUES ($1, $2, 47.37, 8.54, $3, $4, $5, $6)
		 RETURNING id`,
		f.Name, f.Name+" Street 1", f.TotalSpots, f.OccupiedSpots, f.PricePerHourCents, f.IsActive).Scan(&id)
	require.NoError(t, err)

	return id
}

func SpotOccupancy(t *testing.T, db DBLike, spotID int64) int {
	t.Helper()

	var occupied int
	err := db.QueryRow(context.Background(), "SELECT occupied_spots FROM parking_spots WHERE id = $1", spotID).Scan(&occupied)
	require.NoError(t, err)
	return occupied
}

func CountReservations(t *testing.T, db DBLike, spotID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations WHERE parking_spot_id = $1", spotID).Scan(&n)
	require.NoError(t, err)
	return n
}

// CountActiveReservations goes through the application's own query so the
// occupancy invariant is checked against the same definition of "active".
func CountActiveReservations(t *testing.T, db query.DBTX, spotID int64) int {
	t.Helper()

	n, err := query.New().CountActiveReservationsBySpot(context.Background(), db, spotID)
	require.NoError(t, err)
	return int(n)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
