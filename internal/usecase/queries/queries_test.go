//go:build unit

package queries

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parkspot/internal/infra"
	"parkspot/internal/infra/query"
	"parkspot/internal/pkg/errs"
)

type mockSpotReadStore struct{ mock.Mock }

func (m *mockSpotReadStore) FindActive(ctx context.Context) ([]*SpotView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*SpotView), args.Error(1)
}

func (m *mockSpotReadStore) FindByID(ctx context.Context, id int64) (*SpotView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SpotView), args.Error(1)
}

type mockSpotListCache struct{ mock.Mock }

func (m *mockSpotListCache) Get(ctx context.Context) ([]*SpotView, int64, bool) {
	args := m.Called(ctx)
	gen, _ := args.Get(1).(int64)
	if args.Get(0) == nil {
		return nil, gen, args.Bool(2)
	}
	return args.Get(0).([]*SpotView), gen, args.Bool(2)
}

func (m *mockSpotListCache) Set(ctx context.Context, gen int64, spots []*SpotView) {
	m.Called(ctx, gen, spots)
}
func (m *mockSpotListCache) Invalidate(ctx context.Context) { m.Called(ctx) }

type mockReservationViewRepo struct{ mock.Mock }

func (m *mockReservationViewRepo) FindByID(ctx context.Context, _ query.DBTX, id int64) (*ReservationView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ReservationView), args.Error(1)
}

func (m *mockReservationViewRepo) FindByUserID(ctx context.Context, _ query.DBTX, userID int64, limit, offset int32) ([]*ReservationView, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ReservationView), args.Error(1)
}

// countingRunner runs fn directly and counts read-only transactions.
type countingRunner struct {
	calls int
	err   error
}

func (r *countingRunner) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	return fn(ctx, nil)
}

type mockUserReadStore struct{ mock.Mock }

func (m *mockUserReadStore) FindByID(ctx context.Context, id int64) (*AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AuthorizedUserView), args.Error(1)
}

func notFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)
}

func TestSpotQueries_List(t *testing.T) {
	spots := []*SpotView{{ID: 1, Name: "Zurich HB", TotalSpots: 10, OccupiedSpots: 3, AvailableSpots: 7, IsActive: true}}

	t.Run("cache hit skips the database", func(t *testing.T) {
		store, cache := new(mockSpotReadStore), new(mockSpotListCache)
		cache.On("Get", mock.Anything).Return(spots, int64(0), true)

		got, err := NewSpotQueries(store, cache).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, spots, got)
		store.AssertNotCalled(t, "FindActive", mock.Anything)
	})

	t.Run("cache miss fills the cache under the generation it read", func(t *testing.T) {
		store, cache := new(mockSpotReadStore), new(mockSpotListCache)
		cache.On("Get", mock.Anything).Return(nil, int64(7), false)
		store.On("FindActive", mock.Anything).Return(spots, nil)
		cache.On("Set", mock.Anything, int64(7), spots).Return()

		got, err := NewSpotQueries(store, cache).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, spots, got)
		cache.AssertExpectations(t)
	})

	t.Run("database error is not cached", func(t *testing.T) {
		store, cache := new(mockSpotReadStore), new(mockSpotListCache)
		cache.On("Get", mock.Anything).Return(nil, int64(0), false)
		store.On("FindActive", mock.Anything).Return(nil, assert.AnError)

		_, err := NewSpotQueries(store, cache).List(context.Background())
		assert.Error(t, err)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSpotQueries_GetByID(t *testing.T) {
	tests := []struct {
		name      string
		view      *SpotView
		storeErr  error
		wantError error
	}{
		{name: "active spot", view: &SpotView{ID: 1, IsActive: true, AvailableSpots: 2}},
		{name: "inactive spot is hidden", view: &SpotView{ID: 1, IsActive: false}, wantError: ErrSpotNotFound},
		{name: "missing spot", storeErr: notFound(), wantError: ErrSpotNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockSpotReadStore)
			if tt.view != nil {
				store.On("FindByID", mock.Anything, int64(1)).Return(tt.view, nil)
			} else {
				store.On("FindByID", mock.Anything, int64(1)).Return(nil, tt.storeErr)
			}

			got, err := NewSpotQueries(store, new(mockSpotListCache)).GetByID(context.Background(), 1)
			if tt.wantError != nil {
				assert.True(t, errs.Is(err, tt.wantError))
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.view, got)
			}
		})
	}
}

func TestSpotQueries_GetByID_Repeatable(t *testing.T) {
	tests := []struct {
		name string
		view *SpotView
	}{
		{name: "free spot", view: &SpotView{ID: 1, TotalSpots: 3, OccupiedSpots: 1, AvailableSpots: 2, IsActive: true}},
		{name: "full spot", view: &SpotView{ID: 1, TotalSpots: 2, OccupiedSpots: 2, AvailableSpots: 0, IsActive: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cache := new(mockSpotReadStore), new(mockSpotListCache)
			store.On("FindByID", mock.Anything, int64(1)).Return(tt.view, nil)
			snapshot := *tt.view
			q := NewSpotQueries(store, cache)

			first, err := q.GetByID(context.Background(), 1)
			require.NoError(t, err)
			second, err := q.GetByID(context.Background(), 1)
			require.NoError(t, err)

			assert.Equal(t, first, second)
			assert.Equal(t, snapshot, *tt.view, "reads must not mutate the view")
			store.AssertNumberOfCalls(t, "FindByID", 2)
			cache.AssertNotCalled(t, "Invalidate", mock.Anything)
		})
	}
}

func TestReservationQueries_GetByID(t *testing.T) {
	repo := new(mockReservationViewRepo)
	repo.On("FindByID", mock.Anything, int64(5)).Return(&ReservationView{ID: 5, UserID: 3}, nil)
	repo.On("FindByID", mock.Anything, int64(6)).Return(nil, notFound())
	runner := &countingRunner{}
	q := NewReservationQueries(repo, runner)

	view, err := q.GetByID(context.Background(), 3, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), view.ID)

	_, err = q.GetByID(context.Background(), 4, 5)
	assert.True(t, errs.Is(err, ErrReservationNotFound))

	_, err = q.GetByID(context.Background(), 3, 6)
	assert.True(t, errs.Is(err, ErrReservationNotFound))
	assert.Equal(t, 3, runner.calls, "every read runs in a read-only transaction")
}

func TestReservationQueries_ReadOnlyTxFailure(t *testing.T) {
	repo := new(mockReservationViewRepo)
	q := NewReservationQueries(repo, &countingRunner{err: assert.AnError})

	_, err := q.GetByID(context.Background(), 3, 5)
	assert.ErrorIs(t, err, assert.AnError)

	_, err = q.ListByUser(context.Background(), 3, 10, 0)
	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationQueries_ListByUser_ClampsPaging(t *testing.T) {
	tests := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int32
	}{
		{"defaults", 0, 0, DefaultListLimit, 0},
		{"upper bound", 1000, 10, MaxListLimit, 10},
		{"negative offset", 20, -5, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockReservationViewRepo)
			repo.On("FindByUserID", mock.Anything, int64(3), tt.wantLimit, tt.wantOffset).Return([]*ReservationView{}, nil)

			_, err := NewReservationQueries(repo, &countingRunner{}).ListByUser(context.Background(), 3, tt.limit, tt.offset)
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestUserQueries_GetCurrentUser(t *testing.T) {
	store := new(mockUserReadStore)
	store.On("FindByID", mock.Anything, int64(1)).Return(&AuthorizedUserView{ID: 1, IsActive: true}, nil)
	store.On("FindByID", mock.Anything, int64(2)).Return(&AuthorizedUserView{ID: 2, IsActive: false}, nil)
	store.On("FindByID", mock.Anything, int64(3)).Return(nil, notFound())
	q := NewUserQueries(store)

	u, err := q.GetCurrentUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = q.GetCurrentUser(context.Background(), 2)
	assert.True(t, errs.Is(err, ErrUserInactive))

	_, err = q.GetCurrentUser(context.Background(), 3)
	assert.True(t, errs.Is(err, ErrUserNotFound))
}
