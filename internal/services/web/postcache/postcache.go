// Package postcache keeps recently fetched posts in the web cache store and
// invalidates them after writes.
//
// Reads are fresh for TTL. Any successful create, update, or delete marks the
// whole posts scope stale so list and detail pages refetch on next view.
package postcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/louisbranch/postboard/internal/platform/timeouts"
	"github.com/louisbranch/postboard/internal/posts"
	webstorage "github.com/louisbranch/postboard/internal/services/web/storage"
	"golang.org/x/sync/singleflight"
)

const (
	// Scope groups every cached posts payload.
	Scope = "posts"
	// DefaultTTL is how long a fetched payload stays fresh.
	DefaultTTL = 5 * time.Minute

	listKey = "posts:all"
)

// Source is the upstream posts API.
type Source interface {
	ListPosts(ctx context.Context) ([]posts.Post, error)
	GetPost(ctx context.Context, id int) (posts.Post, error)
	CreatePost(ctx context.Context, in posts.CreateInput) (posts.Post, error)
	UpdatePost(ctx context.Context, in posts.UpdateInput) (posts.Post, error)
	DeletePost(ctx context.Context, id int) error
}

// Gateway serves posts from the cache store and falls back to Source.
type Gateway struct {
	source Source
	store  webstorage.Store
	ttl    time.Duration
	now    func() time.Time
	group  singleflight.Group

	// mu orders payload writes against invalidation; generation counts
	// invalidations so fetches that started earlier never repopulate.
	mu         sync.Mutex
	generation uint64
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTTL overrides DefaultTTL. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(g *Gateway) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) {
		if now != nil {
			g.now = now
		}
	}
}

// New builds a caching gateway. A nil store disables caching.
func New(source Source, store webstorage.Store, opts ...Option) *Gateway {
	g := &Gateway{
		source: source,
		store:  store,
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// PostKey returns the cache key for one post.
func PostKey(id int) string {
	return "posts:id:" + strconv.Itoa(id)
}

// ListPosts returns every post.
func (g *Gateway) ListPosts(ctx context.Context) ([]posts.Post, error) {
	if g == nil || g.source == nil {
		return nil, fmt.Errorf("posts source is not configured")
	}
	ctx = normalizeContext(ctx)
	var cached []posts.Post
	if g.cachedPayload(ctx, listKey, &cached) {
		return cached, nil
	}
	value, err := g.shared(ctx, listKey, func(fetchCtx context.Context) (any, error) {
		return g.source.ListPosts(fetchCtx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]posts.Post), nil
}

// GetPost returns one post.
func (g *Gateway) GetPost(ctx context.Context, id int) (posts.Post, error) {
	if g == nil || g.source == nil {
		return posts.Post{}, fmt.Errorf("posts source is not configured")
	}
	if !posts.ValidID(id) {
		return posts.Post{}, posts.ErrInvalidID
	}
	ctx = normalizeContext(ctx)
	key := PostKey(id)
	var cached posts.Post
	if g.cachedPayload(ctx, key, &cached) {
		return cached, nil
	}
	value, err := g.shared(ctx, key, func(fetchCtx context.Context) (any, error) {
		return g.source.GetPost(fetchCtx, id)
	})
	if err != nil {
		return posts.Post{}, err
	}
	return value.(posts.Post), nil
}

// CreatePost creates a post and invalidates cached posts.
func (g *Gateway) CreatePost(ctx context.Context, in posts.CreateInput) (posts.Post, error) {
	if g == nil || g.source == nil {
		return posts.Post{}, fmt.Errorf("posts source is not configured")
	}
	ctx = normalizeContext(ctx)
	created, err := g.source.CreatePost(ctx, in)
	if err != nil {
		return posts.Post{}, err
	}
	g.Invalidate(ctx)
	return created, nil
}

// UpdatePost updates a post and invalidates cached posts.
func (g *Gateway) UpdatePost(ctx context.Context, in posts.UpdateInput) (posts.Post, error) {
	if g == nil || g.source == nil {
		return posts.Post{}, fmt.Errorf("posts source is not configured")
	}
	ctx = normalizeContext(ctx)
	updated, err := g.source.UpdatePost(ctx, in)
	if err != nil {
		return posts.Post{}, err
	}
	g.Invalidate(ctx, PostKey(in.ID))
	g.deleteKey(ctx, PostKey(in.ID))
	return updated, nil
}

// DeletePost deletes a post and invalidates cached posts.
func (g *Gateway) DeletePost(ctx context.Context, id int) error {
	if g == nil || g.source == nil {
		return fmt.Errorf("posts source is not configured")
	}
	ctx = normalizeContext(ctx)
	if err := g.source.DeletePost(ctx, id); err != nil {
		return err
	}
	g.Invalidate(ctx, PostKey(id))
	return nil
}

// Invalidate marks every cached posts payload stale. Reads already in flight
// still answer their callers but no longer write to the cache, and later reads
// of the list or of keys start a new upstream call.
func (g *Gateway) Invalidate(ctx context.Context, keys ...string) {
	if g == nil {
		return
	}
	g.mu.Lock()
	g.generation++
	g.mu.Unlock()
	g.group.Forget(listKey)
	for _, key := range keys {
		g.group.Forget(key)
	}
	if g.store == nil {
		return
	}
	if err := g.store.MarkScopeStale(normalizeContext(ctx), Scope, g.now().UTC()); err != nil {
		log.Printf("post cache invalidate scope=%s failed: %v", Scope, err)
	}
}

// shared runs fetch once per key for concurrent callers. The fetch is detached
// from any single caller's cancellation; each caller still stops waiting when
// its own context ends.
func (g *Gateway) shared(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	results := g.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.UpstreamRetryWindow)
		defer cancel()
		generation := g.currentGeneration()
		value, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		g.putPayloadAt(fetchCtx, generation, key, value)
		return value, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		return result.Val, result.Err
	}
}

func (g *Gateway) currentGeneration() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generation
}

func (g *Gateway) cachedPayload(ctx context.Context, key string, target any) bool {
	if g.store == nil {
		return false
	}
	entry, ok, err := g.store.GetCacheEntry(ctx, key)
	if err != nil {
		log.Printf("post cache read key=%s failed: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if !entry.Usable(g.now()) {
		g.deleteKey(ctx, key)
		return false
	}
	if err := json.Unmarshal(entry.PayloadBytes, target); err != nil {
		g.deleteKey(ctx, key)
		return false
	}
	return true
}

func (g *Gateway) putPayload(ctx context.Context, key string, value any) {
	g.putPayloadAt(ctx, g.currentGeneration(), key, value)
}

// putPayloadAt stores value unless the scope was invalidated after generation
// was read.
func (g *Gateway) putPayloadAt(ctx context.Context, generation uint64, key string, value any) {
	if g.store == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.generation != generation {
		return
	}
	now := g.now().UTC()
	if err := g.store.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey:     key,
		Scope:        Scope,
		PayloadBytes: payload,
		CheckedAt:    now,
		RefreshedAt:  now,
		ExpiresAt:    now.Add(g.ttl),
	}); err != nil {
		log.Printf("post cache write key=%s failed: %v", key, err)
	}
}

func (g *Gateway) deleteKey(ctx context.Context, key string) {
	if g.store == nil {
		return
	}
	if err := g.store.DeleteCacheEntry(ctx, key); err != nil {
		log.Printf("post cache delete key=%s failed: %v", key, err)
	}
}

func normalizeContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
