package queries

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
)

var ErrSpotNotFound = errs.New("parking spot not found")

type SpotQueries interface {
	List(ctx context.Context) ([]*SpotView, error)
	GetByID(ctx context.Context, id int64) (*SpotView, error)
}

type SpotReadStore interface {
	FindActive(ctx context.Context) ([]*SpotView, error)
	FindByID(ctx context.Context, id int64) (*SpotView, error)
}

// SpotListCache holds the active catalog between writes. Implementations
// treat every failure as a miss. Get reports the cache generation even on a
// miss; Set must receive that generation so a list loaded before an
// Invalidate cannot be served after it.
type SpotListCache interface {
	Get(ctx context.Context) ([]*SpotView, int64, bool)
	Set(ctx context.Context, gen int64, spots []*SpotView)
	Invalidate(ctx context.Context)
}

type spotQueriesImpl struct {
	readStore SpotReadStore
	cache     SpotListCache
}

func NewSpotQueries(readStore SpotReadStore, cache SpotListCache) SpotQueries {
	return &spotQueriesImpl{
		readStore: readStore,
		cache:     cache,
	}
}

func (q *spotQueriesImpl) List(ctx context.Context) ([]*SpotView, error) {
	cached, gen, ok := q.cache.Get(ctx)
	if ok {
		return cached, nil
	}

	spots, err := q.readStore.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	q.cache.Set(ctx, gen, spots)
	return spots, nil
}

// GetByID hides inactive spots the same way as missing ones.
func (q *spotQueriesImpl) GetByID(ctx context.Context, id int64) (*SpotView, error) {
	spot, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}

	if !spot.IsActive {
		return nil, ErrSpotNotFound
	}
	return spot, nil
}
