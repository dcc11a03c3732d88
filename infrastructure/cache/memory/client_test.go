package memory

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	err := cache.Set(ctx, "key1", []byte("value1"), time.Minute)
	if err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	data, err := cache.Get(ctx, "key1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(data) != "value1" {
		t.Errorf("Get = %q, want %q", data, "value1")
	}
}

func TestMemoryCache_GetMissingKey(t *testing.T) {
	cache := NewMemoryCache()

	_, err := cache.Get(context.Background(), "missing")

	if err == nil {
		t.Error("Get should return error for missing key")
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "short", []byte("value"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); err == nil {
		t.Error("Get should return error after TTL expiry")
	}
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "forever", []byte("value"), 0)
	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, "forever"); err != nil {
		t.Errorf("Get returned error for non-expiring key: %v", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("value"), time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should fail after Delete")
	}
}

func TestMemoryCache_DeleteMissingKey(t *testing.T) {
	cache := NewMemoryCache()

	if err := cache.Delete(context.Background(), "missing"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", []byte("abc"), time.Minute)

	first, _ := cache.Get(ctx, "key")
	first[0] = 'z'

	second, _ := cache.Get(ctx, "key")
	if string(second) != "abc" {
		t.Errorf("cached value mutated through returned slice: %q", second)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should return error for cancelled context")
	}
	if err := cache.Set(ctx, "key", []byte("v"), time.Minute); err == nil {
		t.Error("Set should return error for cancelled context")
	}
}
