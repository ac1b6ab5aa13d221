package dedup_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tailwatch/tailwatch/internal/dedup"
)

// mockCache implements cache.Cache with function fields.
type mockCache struct {
	getFunc func(ctx context.Context, key string) ([]byte, bool, error)
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error

	setCalls []setCall
}

type setCall struct {
	key string
	ttl time.Duration
}

func (c *mockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.getFunc != nil {
		return c.getFunc(ctx, key)
	}
	return nil, false, nil
}

func (c *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.setCalls = append(c.setCalls, setCall{key: key, ttl: ttl})
	if c.setFunc != nil {
		return c.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (c *mockCache) Delete(_ context.Context, _ string) error { return nil }
func (c *mockCache) Ping(_ context.Context) error             { return nil }
func (c *mockCache) IncrWithExpiry(_ context.Context, _ string, _ time.Duration) (int64, error) {
	return 0, nil
}

const testFingerprint = "ab12cd34"

func TestIsDuplicate_Found(t *testing.T) {
	mc := &mockCache{
		getFunc: func(_ context.Context, _ string) ([]byte, bool, error) {
			return []byte("1"), true, nil
		},
	}
	store := dedup.New(mc, time.Hour)

	assert.True(t, store.IsDuplicate(context.Background(), testFingerprint))
}

func TestIsDuplicate_NotFound(t *testing.T) {
	store := dedup.New(&mockCache{}, time.Hour)

	assert.False(t, store.IsDuplicate(context.Background(), testFingerprint))
}

func TestIsDuplicate_StoreErrorFailsOpen(t *testing.T) {
	mc := &mockCache{
		getFunc: func(_ context.Context, _ string) ([]byte, bool, error) {
			return nil, false, errors.New("connection refused")
		},
	}
	store := dedup.New(mc, time.Hour)

	// Store outage must never suppress a real notification.
	assert.False(t, store.IsDuplicate(context.Background(), testFingerprint))
}

func TestRecord_SetsWindowTTL(t *testing.T) {
	mc := &mockCache{}
	store := dedup.New(mc, 3600*time.Second)

	store.Record(context.Background(), testFingerprint)

	assert.Len(t, mc.setCalls, 1)
	assert.Equal(t, "dedup:fp:"+testFingerprint, mc.setCalls[0].key)
	assert.Equal(t, 3600*time.Second, mc.setCalls[0].ttl)
}

func TestRecord_StoreErrorTolerated(t *testing.T) {
	mc := &mockCache{
		setFunc: func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
			return errors.New("connection refused")
		},
	}
	store := dedup.New(mc, time.Hour)

	// Must not panic or propagate; the next occurrence simply re-notifies.
	store.Record(context.Background(), testFingerprint)
}
