//go:build unit

package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkspot/internal/usecase/queries"
)

func sampleSpots() []*queries.SpotView {
	return []*queries.SpotView{
		{ID: 1, Name: "Zurich HB Parking", TotalSpots: 50, OccupiedSpots: 12, AvailableSpots: 38, PricePerHourCents: 350, IsActive: true},
	}
}

func entryPayload(t *testing.T, gen int64, spots []*queries.SpotView) []byte {
	t.Helper()
	payload, err := json.Marshal(spotListEntry{Generation: gen, Spots: spots})
	require.NoError(t, err)
	return payload
}

func TestSpotCache_GetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewSpotCache(db, 30*time.Second)

	mock.ExpectMGet(spotListKey, spotGenKey).SetVal([]any{string(entryPayload(t, 3, sampleSpots())), "3"})

	spots, gen, ok := c.Get(context.Background())
	assert.True(t, ok)
	assert.Equal(t, int64(3), gen)
	require.Len(t, spots, 1)
	assert.Equal(t, 38, spots[0].AvailableSpots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpotCache_GetMiss(t *testing.T) {
	t.Run("empty cache starts at generation zero", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewSpotCache(db, 30*time.Second)

		mock.ExpectMGet(spotListKey, spotGenKey).SetVal([]any{nil, nil})

		spots, gen, ok := c.Get(context.Background())
		assert.False(t, ok)
		assert.Zero(t, gen)
		assert.Nil(t, spots)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("entry from an older generation is ignored", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewSpotCache(db, 30*time.Second)

		mock.ExpectMGet(spotListKey, spotGenKey).SetVal([]any{string(entryPayload(t, 4, sampleSpots())), "5"})

		spots, gen, ok := c.Get(context.Background())
		assert.False(t, ok)
		assert.Equal(t, int64(5), gen)
		assert.Nil(t, spots)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSpotCache_GetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewSpotCache(db, 30*time.Second)

	mock.ExpectMGet(spotListKey, spotGenKey).SetErr(assert.AnError)

	_, gen, ok := c.Get(context.Background())
	assert.False(t, ok)
	assert.Negative(t, gen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpotCache_GetCorruptPayload(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewSpotCache(db, 30*time.Second)

	mock.ExpectMGet(spotListKey, spotGenKey).SetVal([]any{"{not json", "1"})

	_, _, ok := c.Get(context.Background())
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpotCache_Set(t *testing.T) {
	t.Run("writes the entry tagged with its generation", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		ttl := 30 * time.Second
		c := NewSpotCache(db, ttl)

		mock.ExpectSet(spotListKey, entryPayload(t, 2, sampleSpots()), ttl).SetVal("OK")

		c.Set(context.Background(), 2, sampleSpots())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown generation is not written", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewSpotCache(db, 30*time.Second)

		c.Set(context.Background(), -1, sampleSpots())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSpotCache_Invalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewSpotCache(db, 30*time.Second)

	mock.ExpectIncr(spotGenKey).SetVal(1)
	mock.ExpectDel(spotListKey).SetVal(1)

	c.Invalidate(context.Background())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A list loaded before a commit but written after the commit's invalidation
// must not be served afterwards.
func TestSpotCache_StaleWriteAfterInvalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ttl := 30 * time.Second
	c := NewSpotCache(db, ttl)
	ctx := context.Background()

	stale := []*queries.SpotView{{ID: 1, TotalSpots: 1, OccupiedSpots: 0, AvailableSpots: 1, IsActive: true}}

	// reader misses at generation 0 and loads rows from the database
	mock.ExpectMGet(spotListKey, spotGenKey).SetVal([]any{nil, nil})
	_, gen, ok := c.Get(ctx)
	require.False(t, ok)

	// a booking commits meanwhile
	mock.ExpectIncr(spotGenKey).SetVal(1)
	mock.ExpectDel(spotListKey).SetVal(0)
	c.Invalidate(ctx)

	// the reader stores its now stale rows
	mock.ExpectSet(spotListKey, entryPayload(t, gen, stale), ttl).SetVal("OK")
	c.Set(ctx, gen, stale)

	mock.ExpectMGet(spotListKey, spotGenKey).SetVal([]any{string(entryPayload(t, gen, stale)), "1"})
	spots, _, ok := c.Get(ctx)
	assert.False(t, ok, "stale entry must read as a miss")
	assert.Nil(t, spots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpotCache_Disabled(t *testing.T) {
	c := NewSpotCache(nil, 30*time.Second)

	spots, _, ok := c.Get(context.Background())
	assert.False(t, ok)
	assert.Nil(t, spots)

	assert.NotPanics(t, func() {
		c.Set(context.Background(), 0, sampleSpots())
		c.Invalidate(context.Background())
	})

	var nilCache *SpotCache
	_, _, ok = nilCache.Get(context.Background())
	assert.False(t, ok)
}
