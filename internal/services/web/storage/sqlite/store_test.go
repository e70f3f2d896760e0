package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	webstorage "github.com/louisbranch/postboard/internal/services/web/storage"
	_ "modernc.org/sqlite"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "web-cache.db")
	store := openStore(t, path)
	_ = store

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()
	assertTableExists(t, sqlDB, "cache_entries")
	assertTableExists(t, sqlDB, "schema_migrations")
}

func TestOpenReappliesMigrationsIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web-cache.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	openStore(t, path)
}

func TestCacheEntryRoundTrip(t *testing.T) {
	store := openStore(t, MemoryPath)
	ctx := context.Background()
	checkedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	if _, found, err := store.GetCacheEntry(ctx, "posts:all"); err != nil || found {
		t.Fatalf("get missing entry = found %v err %v", found, err)
	}

	entry := webstorage.CacheEntry{
		CacheKey:     "posts:all",
		Scope:        "posts",
		PayloadBytes: []byte(`[{"id":1}]`),
		CheckedAt:    checkedAt,
		ExpiresAt:    checkedAt.Add(5 * time.Minute),
	}
	if err := store.PutCacheEntry(ctx, entry); err != nil {
		t.Fatalf("put entry: %v", err)
	}

	got, found, err := store.GetCacheEntry(ctx, "posts:all")
	if err != nil || !found {
		t.Fatalf("get entry = found %v err %v", found, err)
	}
	if got.Scope != "posts" || !bytes.Equal(got.PayloadBytes, entry.PayloadBytes) {
		t.Fatalf("entry = %+v", got)
	}
	if !got.CheckedAt.Equal(checkedAt) || !got.RefreshedAt.Equal(checkedAt) {
		t.Fatalf("checked/refreshed = %v/%v, want %v", got.CheckedAt, got.RefreshedAt, checkedAt)
	}
	if !got.ExpiresAt.Equal(checkedAt.Add(5 * time.Minute)) {
		t.Fatalf("expires_at = %v", got.ExpiresAt)
	}

	entry.PayloadBytes = []byte(`[]`)
	if err := store.PutCacheEntry(ctx, entry); err != nil {
		t.Fatalf("upsert entry: %v", err)
	}
	got, _, _ = store.GetCacheEntry(ctx, "posts:all")
	if string(got.PayloadBytes) != "[]" {
		t.Fatalf("payload after upsert = %q", got.PayloadBytes)
	}

	if err := store.DeleteCacheEntry(ctx, "posts:all"); err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if _, found, _ := store.GetCacheEntry(ctx, "posts:all"); found {
		t.Fatal("expected entry to be deleted")
	}
}

func TestPutCacheEntryValidatesInput(t *testing.T) {
	store := openStore(t, MemoryPath)
	ctx := context.Background()

	for _, entry := range []webstorage.CacheEntry{
		{Scope: "posts", PayloadBytes: []byte("x")},
		{CacheKey: "k", PayloadBytes: []byte("x")},
		{CacheKey: "k", Scope: "posts"},
	} {
		if err := store.PutCacheEntry(ctx, entry); err == nil {
			t.Fatalf("PutCacheEntry(%+v) expected error", entry)
		}
	}
}

func TestMarkScopeStaleAndPurge(t *testing.T) {
	store := openStore(t, MemoryPath)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for _, entry := range []webstorage.CacheEntry{
		{CacheKey: "posts:all", Scope: "posts", PayloadBytes: []byte("[]"), CheckedAt: now, ExpiresAt: now.Add(time.Hour)},
		{CacheKey: "posts:id:1", Scope: "posts", PayloadBytes: []byte("{}"), CheckedAt: now, ExpiresAt: now.Add(time.Hour)},
		{CacheKey: "other:1", Scope: "other", PayloadBytes: []byte("{}"), CheckedAt: now, ExpiresAt: now.Add(time.Hour)},
		{CacheKey: "other:old", Scope: "other", PayloadBytes: []byte("{}"), CheckedAt: now, ExpiresAt: now.Add(-time.Second)},
	} {
		if err := store.PutCacheEntry(ctx, entry); err != nil {
			t.Fatalf("put %s: %v", entry.CacheKey, err)
		}
	}

	if err := store.MarkScopeStale(ctx, "posts", now.Add(time.Minute)); err != nil {
		t.Fatalf("mark stale: %v", err)
	}
	got, _, _ := store.GetCacheEntry(ctx, "posts:id:1")
	if !got.Stale {
		t.Fatal("expected posts entry to be stale")
	}
	if !got.CheckedAt.Equal(now.Add(time.Minute)) {
		t.Fatalf("checked_at = %v, want %v", got.CheckedAt, now.Add(time.Minute))
	}
	other, _, _ := store.GetCacheEntry(ctx, "other:1")
	if other.Stale {
		t.Fatal("expected other scope to stay fresh")
	}

	removed, err := store.PurgeExpired(ctx, now)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 3 {
		t.Fatalf("removed = %d, want 3", removed)
	}
	if _, found, _ := store.GetCacheEntry(ctx, "other:1"); !found {
		t.Fatal("expected fresh entry to survive purge")
	}
}

func TestMarkScopeStaleRequiresScope(t *testing.T) {
	store := openStore(t, MemoryPath)
	if err := store.MarkScopeStale(context.Background(), " ", time.Time{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestNilStoreReturnsErrors(t *testing.T) {
	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if _, _, err := store.GetCacheEntry(context.Background(), "k"); err == nil {
		t.Fatal("expected get error")
	}
	if _, err := store.PurgeExpired(context.Background(), time.Now()); err == nil {
		t.Fatal("expected purge error")
	}
}

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store
}

func assertTableExists(t *testing.T, sqlDB *sql.DB, name string) {
	t.Helper()
	var found string
	if err := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&found); err != nil {
		t.Fatalf("table %s missing: %v", name, err)
	}
}
