package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"parkspot/internal/infra/query"
	"parkspot/internal/infra/readstore"
	"parkspot/internal/infra/repository"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/metrics"
	"parkspot/internal/usecase/shared"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	backoffBase = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough here: every capacity write goes through a row lock
// and a conditional update.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, backoffBase)
		metrics.RecordTxRetry()

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db query.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	spotRepo        shared.SpotRepository
	reservationRepo shared.ReservationRepository
	userRepo        shared.UserRepository
}

func (t *pgTx) DB() query.DBTX {
	return t.dbtx
}

func (t *pgTx) Spots() shared.SpotRepository {
	if t.spotRepo == nil {
		t.spotRepo = repository.NewSpotRepository(t.uow.q, t.dbtx)
	}
	return t.spotRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx query.DBTX

	// Lazy-initialized readstores
	spotStore *readstore.SpotReadStore
	userStore *readstore.UserReadStore
}

func (r *commandReads) SpotByID(ctx context.Context, id int64) (*shared.SpotSnapshot, error) {
	if r.spotStore == nil {
		r.spotStore = readstore.NewSpotReadStore(r.uow.q, r.dbtx)
	}

	spot, err := r.spotStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.SpotSnapshot{
		ID:                spot.ID,
		TotalSpots:        spot.TotalSpots,
		OccupiedSpots:     spot.OccupiedSpots,
		PricePerHourCents: spot.PricePerHourCents,
		IsActive:          spot.IsActive,
	}, nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserCredentialSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}

	user, hash, err := r.userStore.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &shared.UserCredentialSnapshot{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
		PasswordHash: hash,
		IsActive:     user.IsActive,
	}, nil
}
