package infra

import (
	"context"
	"errors"
	"log/slog"

	"parkspot/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr wraps a driver error. Without an explicit kind the error is classified
// from its Postgres SQLSTATE.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := ClassifyError(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	level := slog.LevelError
	if k == KindNotFound || k == KindConflict {
		level = slog.LevelDebug
	}
	attrs := []slog.Attr{slog.String("kind", string(k))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	slog.Default().LogAttrs(context.Background(), level, "Repository error: "+msg, attrs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	pgCodeUniqueViolation      = "23505"
	pgCodeForeignKeyViolation  = "23503"
	pgCodeCheckViolation       = "23514"
	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"
)

func ClassifyError(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}

	switch pgErr.Code {
	case pgCodeUniqueViolation:
		return KindDuplicateKey
	case pgCodeForeignKeyViolation:
		return KindForeignKeyViolated
	case pgCodeCheckViolation:
		return KindCheckViolated
	case pgCodeSerializationFailure, pgCodeDeadlockDetected:
		return KindConflict
	default:
		return KindDBFailure
	}
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)
