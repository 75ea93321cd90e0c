package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mohammad-safakhou/concierge/config"
	"github.com/mohammad-safakhou/concierge/internal/helpers"
)

// PageCache stores fetched page text keyed by URL, so repeated research on
// the same sources within the TTL skips the network.
type PageCache interface {
	Get(ctx context.Context, url string) (string, bool)
	Set(ctx context.Context, url, text string)
}

// New returns a Redis-backed cache when enabled, otherwise a no-op.
func New(cfg config.CacheConfig) (PageCache, error) {
	if !cfg.Enabled {
		return Noop{}, nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Redis{rdb: rdb, ttl: ttl}, nil
}

// Noop caches nothing; every lookup is a miss.
type Noop struct{}

func (Noop) Get(ctx context.Context, url string) (string, bool) { return "", false }
func (Noop) Set(ctx context.Context, url, text string)          {}

// Redis stores page text under a canonical-URL fingerprint with a TTL.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

func (c *Redis) Get(ctx context.Context, url string) (string, bool) {
	key, err := cacheKey(url)
	if err != nil {
		return "", false
	}
	text, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return text, true
}

func (c *Redis) Set(ctx context.Context, url, text string) {
	key, err := cacheKey(url)
	if err != nil {
		return
	}
	// Best effort; a cache write failure never disturbs the turn.
	_ = c.rdb.Set(ctx, key, text, c.ttl).Err()
}

func cacheKey(url string) (string, error) {
	fp, err := helpers.URLFingerprint(url)
	if err != nil {
		return "", err
	}
	return "concierge:page:" + fp, nil
}
