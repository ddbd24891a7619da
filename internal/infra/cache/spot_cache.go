package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"parkspot/internal/pkg/metrics"
	"parkspot/internal/usecase/queries"
)

const (
	spotListKey = "parkspot:spots:active"
	spotGenKey  = "parkspot:spots:generation"
)

// SpotCache keeps the active spot catalog in Redis. A nil client disables it;
// Redis errors degrade to cache misses.
//
// Every Invalidate bumps a generation counter. Entries carry the generation they
// were loaded under, so a list read before a commit but written after its
// invalidation is never served.
type SpotCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

type spotListEntry struct {
	Generation int64               `json:"generation"`
	Spots      []*queries.SpotView `json:"spots"`
}

func NewSpotCache(rdb *redis.Client, ttl time.Duration) *SpotCache {
	c := &SpotCache{ttl: ttl}
	if rdb != nil {
		c.rdb = rdb
	}
	return c
}

func (c *SpotCache) enabled() bool {
	return c != nil && c.rdb != nil && c.ttl > 0
}

// Get returns the cached list and the current generation. The generation is
// returned on a miss too and must be handed back to Set; it is negative when
// Redis could not be read.
func (c *SpotCache) Get(ctx context.Context) ([]*queries.SpotView, int64, bool) {
	if !c.enabled() {
		return nil, -1, false
	}

	vals, err := c.rdb.MGet(ctx, spotListKey, spotGenKey).Result()
	if err != nil || len(vals) != 2 {
		if err != nil {
			slog.Warn("spot cache read failed", "error", err.Error())
		}
		metrics.RecordCacheLookup(false)
		return nil, -1, false
	}

	gen, err := parseGeneration(vals[1])
	if err != nil {
		slog.Warn("spot cache generation corrupt", "error", err.Error())
		metrics.RecordCacheLookup(false)
		return nil, -1, false
	}

	raw, ok := vals[0].(string)
	if !ok {
		metrics.RecordCacheLookup(false)
		return nil, gen, false
	}

	var entry spotListEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		slog.Warn("spot cache payload corrupt", "error", err.Error())
		metrics.RecordCacheLookup(false)
		return nil, gen, false
	}
	if entry.Generation != gen {
		metrics.RecordCacheLookup(false)
		return nil, gen, false
	}

	metrics.RecordCacheLookup(true)
	return entry.Spots, gen, true
}

// Set stores spots loaded under gen, as returned by the preceding Get.
func (c *SpotCache) Set(ctx context.Context, gen int64, spots []*queries.SpotView) {
	if !c.enabled() || gen < 0 {
		return
	}

	payload, err := json.Marshal(spotListEntry{Generation: gen, Spots: spots})
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, spotListKey, payload, c.ttl).Err(); err != nil {
		slog.Warn("spot cache write failed", "error", err.Error())
	}
}

// Invalidate runs after every committed occupancy change.
func (c *SpotCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}

	if err := c.rdb.Incr(ctx, spotGenKey).Err(); err != nil {
		slog.Warn("spot cache generation bump failed", "error", err.Error())
	}
	if err := c.rdb.Del(ctx, spotListKey).Err(); err != nil {
		slog.Warn("spot cache invalidation failed", "error", err.Error())
	}
}

func parseGeneration(v any) (int64, error) {
	switch g := v.(type) {
	case nil:
		return 0, nil
	case string:
		return strconv.ParseInt(g, 10, 64)
	default:
		return 0, errors.New("unexpected generation type")
	}
}
