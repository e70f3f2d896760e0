package postcache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/postboard/internal/posts"
	webstorage "github.com/louisbranch/postboard/internal/services/web/storage"
)

type fakeSource struct {
	mu        sync.Mutex
	items     []posts.Post
	listErr   error
	getErr    error
	writeErr  error
	listCalls int
	getCalls  int
	writes    []string
}

func (f *fakeSource) ListPosts(context.Context) ([]posts.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]posts.Post(nil), f.items...), nil
}

func (f *fakeSource) GetPost(_ context.Context, id int) (posts.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return posts.Post{}, f.getErr
	}
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return posts.Post{}, posts.ErrNotFound
}

func (f *fakeSource) CreatePost(_ context.Context, in posts.CreateInput) (posts.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, "create")
	if f.writeErr != nil {
		return posts.Post{}, f.writeErr
	}
	return posts.Post{ID: 101, Title: in.Title, Body: in.Body, UserID: in.UserID}, nil
}

func (f *fakeSource) UpdatePost(_ context.Context, in posts.UpdateInput) (posts.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, "update")
	if f.writeErr != nil {
		return posts.Post{}, f.writeErr
	}
	return posts.Post(in), nil
}

func (f *fakeSource) DeletePost(context.Context, int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, "delete")
	return f.writeErr
}

// gatedSource holds every ListPosts call until release is closed. The items
// returned are read before blocking.
type gatedSource struct {
	*fakeSource
	started chan struct{}
	release chan struct{}

	ctxMu   sync.Mutex
	ctxErrs []error
}

func newGatedSource(items []posts.Post) *gatedSource {
	return &gatedSource{
		fakeSource: &fakeSource{items: items},
		started:    make(chan struct{}, 16),
		release:    make(chan struct{}),
	}
}

func (g *gatedSource) ListPosts(ctx context.Context) ([]posts.Post, error) {
	items, err := g.fakeSource.ListPosts(ctx)
	g.started <- struct{}{}
	<-g.release
	g.ctxMu.Lock()
	g.ctxErrs = append(g.ctxErrs, ctx.Err())
	g.ctxMu.Unlock()
	return items, err
}

func (g *gatedSource) setItems(items []posts.Post) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.items = items
}

func (g *gatedSource) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.listCalls
}

func (g *gatedSource) contextErrors() []error {
	g.ctxMu.Lock()
	defer g.ctxMu.Unlock()
	return append([]error(nil), g.ctxErrs...)
}

type fakeStore struct {
	mu         sync.Mutex
	entries    map[string]webstorage.CacheEntry
	gets       int
	getErr     error
	staleCalls int
	purgeCalls int
	purgeErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: map[string]webstorage.CacheEntry{}}
}

func (s *fakeStore) Close() error { return nil }

func (s *fakeStore) GetCacheEntry(_ context.Context, key string) (webstorage.CacheEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.getErr != nil {
		return webstorage.CacheEntry{}, false, s.getErr
	}
	entry, ok := s.entries[key]
	return entry, ok, nil
}

func (s *fakeStore) PutCacheEntry(_ context.Context, entry webstorage.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.CacheKey] = entry
	return nil
}

func (s *fakeStore) DeleteCacheEntry(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *fakeStore) MarkScopeStale(_ context.Context, scope string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staleCalls++
	for key, entry := range s.entries {
		if entry.Scope == scope {
			entry.Stale = true
			s.entries[key] = entry
		}
	}
	return nil
}

func (s *fakeStore) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeCalls++
	if s.purgeErr != nil {
		return 0, s.purgeErr
	}
	var removed int64
	for key, entry := range s.entries {
		if !entry.Usable(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed, nil
}

func (s *fakeStore) entry(key string) (webstorage.CacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	return entry, ok
}

func (s *fakeStore) getCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets
}

func (s *fakeStore) purges() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.purgeCalls
}

var errUpstream = errors.New("upstream down")

func waitUntil(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}
