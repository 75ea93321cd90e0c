package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mohammad-safakhou/concierge/config"
)

func TestNoopAlwaysMisses(t *testing.T) {
	c := Noop{}
	c.Set(context.Background(), "https://example.com/a", "text")
	if _, ok := c.Get(context.Background(), "https://example.com/a"); ok {
		t.Fatal("noop cache returned a hit")
	}
}

func TestNewDisabledReturnsNoop(t *testing.T) {
	c, err := New(config.CacheConfig{Enabled: false})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(Noop); !ok {
		t.Fatalf("got %T, want Noop", c)
	}
}

func TestRedisRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedis(rdb, time.Hour)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "https://example.com/a"); ok {
		t.Fatal("hit before Set")
	}
	c.Set(ctx, "https://example.com/a", "page text")
	got, ok := c.Get(ctx, "https://example.com/a")
	if !ok || got != "page text" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
}

func TestRedisKeysAreCanonical(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedis(rdb, time.Hour)
	ctx := context.Background()

	c.Set(ctx, "https://Example.com:443/a?utm_source=x", "page text")
	got, ok := c.Get(ctx, "https://example.com/a")
	if !ok || got != "page text" {
		t.Fatalf("equivalent URL missed the cache: %q, %v", got, ok)
	}
}

func TestRedisEntriesExpire(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedis(rdb, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "https://example.com/a", "page text")
	mr.FastForward(2 * time.Minute)
	if _, ok := c.Get(ctx, "https://example.com/a"); ok {
		t.Fatal("entry survived past its TTL")
	}
}

func TestRedisIgnoresBadURLs(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedis(rdb, time.Hour)
	ctx := context.Background()

	c.Set(ctx, "", "text")
	if _, ok := c.Get(ctx, ""); ok {
		t.Fatal("bad URL produced a hit")
	}
	if got := len(mr.Keys()); got != 0 {
		t.Fatalf("redis holds %d keys, want 0", got)
	}
}
