//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"parkspot/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: infra.KindConflict},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: infra.KindConflict},
		{name: "other pg error", err: &pgconn.PgError{Code: "08006"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, infra.ClassifyError(tt.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	t.Run("classifies and keeps the cause", func(t *testing.T) {
		cause := &pgconn.PgError{Code: "40001"}
		err := infra.WrapRepoErr("failed to lock spot", cause)

		assert.True(t, infra.IsKind(err, infra.KindConflict))
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr), "pg error must stay reachable for retry detection")
		assert.Contains(t, err.Error(), "failed to lock spot")
	})

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("spot not found", errors.New("x"), infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("nil cause", func(t *testing.T) {
		err := infra.WrapRepoErr("no capacity left", nil, infra.KindConflict)
		assert.Equal(t, "CONFLICT: no capacity left", err.Error())
	})
}
