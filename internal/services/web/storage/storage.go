package storage

import (
	"context"
	"time"
)

// CacheEntry stores one cached payload and its freshness metadata.
//
// Entries are derived data and can be dropped at any time.
type CacheEntry struct {
	CacheKey     string
	Scope        string
	PayloadBytes []byte
	Stale        bool
	CheckedAt    time.Time
	RefreshedAt  time.Time
	ExpiresAt    time.Time
}

// Usable reports whether the entry can be served at now without a refetch.
func (e CacheEntry) Usable(now time.Time) bool {
	if e.Stale || len(e.PayloadBytes) == 0 {
		return false
	}
	return e.ExpiresAt.IsZero() || now.Before(e.ExpiresAt)
}

// Store is the web cache persistence contract.
type Store interface {
	Close() error
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
	// MarkScopeStale flags every entry in scope so the next read refetches.
	MarkScopeStale(ctx context.Context, scope string, checkedAt time.Time) error
	// PurgeExpired deletes stale entries and entries expired at now and
	// returns how many rows were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
