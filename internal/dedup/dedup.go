// Package dedup suppresses repeated error fingerprints over a sliding
// TTL window backed by an external key-value store.
package dedup

import (
	"context"
	"log/slog"
	"time"

	"github.com/tailwatch/tailwatch/internal/cache"
)

// seenSentinel is the presence marker stored under a fingerprint key.
const seenSentinel = "1"

// Store checks and records fingerprints against the suppression window.
type Store interface {
	// IsDuplicate reports whether the fingerprint was seen within the window.
	// On store-access failure it returns false: missing an error is worse
	// than a duplicate notification, so the check fails open.
	IsDuplicate(ctx context.Context, fingerprint string) bool
	// Record marks the fingerprint as seen for the length of the window.
	// On failure it logs and continues; the next occurrence simply won't be
	// deduplicated, which is acceptable degraded behavior.
	Record(ctx context.Context, fingerprint string)
}

// Adapter implements Store on top of the TTL cache.
type Adapter struct {
	cache  cache.Cache
	window time.Duration
}

// New creates an Adapter with the given suppression window.
func New(c cache.Cache, window time.Duration) *Adapter {
	return &Adapter{cache: c, window: window}
}

func (a *Adapter) IsDuplicate(ctx context.Context, fingerprint string) bool {
	_, found, err := a.cache.Get(ctx, cache.DedupKey(fingerprint))
	if err != nil {
		slog.Warn("dedup lookup failed, treating as new", "fingerprint", fingerprint, "error", err)
		return false
	}
	return found
}

func (a *Adapter) Record(ctx context.Context, fingerprint string) {
	if err := a.cache.Set(ctx, cache.DedupKey(fingerprint), []byte(seenSentinel), a.window); err != nil {
		slog.Warn("failed to record fingerprint", "fingerprint", fingerprint, "error", err)
	}
}

// Compile-time check that Adapter implements Store.
var _ Store = (*Adapter)(nil)
