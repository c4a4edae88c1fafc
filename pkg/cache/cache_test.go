package cache

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if _, ok, err := c.Get(ctx, "a"); ok || err != nil {
		t.Fatalf("Get on empty cache = ok %v, err %v", ok, err)
	}

	data := []byte("<p>hi</p>")
	if err := c.Set(ctx, "a", data, time.Minute); err != nil {
		t.Fatal(err)
	}
	data[0] = 'X'

	got, ok, err := c.Get(ctx, "a")
	if err != nil || !ok || string(got) != "<p>hi</p>" {
		t.Fatalf("Get = %q, %v, %v", got, ok, err)
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("expected expired entry to miss")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d after expired read, want 0", c.Len())
	}
}

func TestMemoryCacheNoExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Now()
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "k", []byte("v"), 0)
	now = now.Add(24 * 365 * time.Hour)
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Error("entry without ttl expired")
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("deleted entry still present")
	}
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestMemoryCacheSweep(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Now()
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "short", []byte("1"), time.Second)
	_ = c.Set(ctx, "long", []byte("2"), time.Hour)
	_ = c.Set(ctx, "forever", []byte("3"), 0)

	now = now.Add(time.Minute)
	if n := c.Sweep(); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	_ = c.Close()
	if c.Len() != 0 {
		t.Errorf("Len after Close = %d", c.Len())
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "a", []byte("x"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(ctx, "a"); ok || err != nil {
		t.Errorf("NullCache.Get = ok %v, err %v", ok, err)
	}
	if err := c.Delete(ctx, "a"); err != nil {
		t.Error(err)
	}
	if err := c.Close(); err != nil {
		t.Error(err)
	}
}

type fakeRedis struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failGet error
	closed  bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, exp time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = exp
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	c := NewRedisCache(client, "site:")

	if _, ok, err := c.Get(ctx, "a"); ok || err != nil {
		t.Fatalf("miss = ok %v, err %v", ok, err)
	}

	if err := c.Set(ctx, "a", []byte("<p>hi</p>"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if client.data["site:a"] != "<p>hi</p>" {
		t.Errorf("stored under wrong key: %v", client.data)
	}
	if client.ttls["site:a"] != time.Minute {
		t.Errorf("ttl = %v", client.ttls["site:a"])
	}

	got, ok, err := c.Get(ctx, "a")
	if err != nil || !ok || string(got) != "<p>hi</p>" {
		t.Fatalf("Get = %q, %v, %v", got, ok, err)
	}

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("deleted key still present")
	}

	if err := c.Close(); err != nil || !client.closed {
		t.Errorf("Close: err %v, closed %v", err, client.closed)
	}
}

func TestRedisCacheError(t *testing.T) {
	client := newFakeRedis()
	boom := errors.New("connection refused")
	client.failGet = boom

	_, ok, err := NewRedisCache(client, "").Get(context.Background(), "a")
	if ok || !errors.Is(err, boom) {
		t.Errorf("Get = ok %v, err %v; want wrapped backend error", ok, err)
	}
}

func TestOpenRedisBadURL(t *testing.T) {
	if _, err := OpenRedis(context.Background(), "http://nope", ""); err == nil {
		t.Error("expected error for non-redis URL")
	}
}

func TestPageKey(t *testing.T) {
	a := PageKey("/docs", url.Values{"b": {"2"}, "a": {"1"}})
	b := PageKey("/docs", url.Values{"a": {"1"}, "b": {"2"}})
	if a != b {
		t.Error("query order changed the key")
	}
	if PageKey("", nil) != PageKey("/", nil) {
		t.Error("empty path should equal root")
	}
	if PageKey("/docs", nil) == PageKey("/blog", nil) {
		t.Error("different paths share a key")
	}
	if len(a) != len("page:")+64 {
		t.Errorf("unexpected key length %d", len(a))
	}
}
