package queries

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/infra/query"
	"parkspot/internal/pkg/errs"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationQueries interface {
	GetByID(ctx context.Context, actor int64, id int64) (*ReservationView, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*ReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, db query.DBTX, id int64) (*ReservationView, error)
	FindByUserID(ctx context.Context, db query.DBTX, userID int64, limit, offset int32) ([]*ReservationView, error)
}

// ReadOnlyRunner opens a read-only transaction; the unit of work satisfies it.
type ReadOnlyRunner interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
	tx   ReadOnlyRunner
}

func NewReservationQueries(repo ReservationViewRepo, tx ReadOnlyRunner) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, tx: tx}
}

// GetByID reports another user's reservation as not found.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor int64, id int64) (*ReservationView, error) {
	var view *ReservationView
	err := q.tx.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		view, err = q.repo.FindByID(ctx, db, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if view.UserID != actor {
		return nil, ErrReservationNotFound
	}
	return view, nil
}

// ListByUser returns the user's reservations newest first.
func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*ReservationView, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var views []*ReservationView
	err := q.tx.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		// #nosec G115 -- limit is clamped above; offset comes from a bounded query param
		views, err = q.repo.FindByUserID(ctx, db, userID, int32(limit), int32(offset))
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
