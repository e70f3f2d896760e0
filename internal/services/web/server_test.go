package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/louisbranch/postboard/internal/posts"
	"github.com/louisbranch/postboard/internal/services/web/postcache"
	"github.com/louisbranch/postboard/internal/services/web/storage/sqlite"
	"github.com/louisbranch/postboard/internal/upstream/jsonplaceholder"
)

type memoryStore struct {
	mu    sync.Mutex
	items []posts.Post
}

func newMemoryStore(n int) *memoryStore {
	store := &memoryStore{}
	for i := 1; i <= n; i++ {
		store.items = append(store.items, posts.Post{ID: i, Title: fmt.Sprintf("Post %d", i), Body: fmt.Sprintf("Body %d", i), UserID: 1})
	}
	return store
}

func (s *memoryStore) ListPosts(context.Context) ([]posts.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]posts.Post(nil), s.items...), nil
}

func (s *memoryStore) GetPost(_ context.Context, id int) (posts.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return posts.Post{}, posts.ErrNotFound
}

func (s *memoryStore) CreatePost(_ context.Context, in posts.CreateInput) (posts.Post, error) {
	return posts.Post{ID: 101, Title: in.Title, Body: in.Body, UserID: in.UserID}, nil
}

func (s *memoryStore) UpdatePost(_ context.Context, in posts.UpdateInput) (posts.Post, error) {
	return posts.Post(in), nil
}

func (s *memoryStore) DeletePost(context.Context, int) error { return nil }

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestNewHandlerServesHomeWithMiddleware(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{Posts: newMemoryStore(3)})
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "Post 3") {
		t.Fatalf("home body missing post title")
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}
	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options = %q, want %q", got, "nosniff")
	}
}

func TestNewHandlerEchoesRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/up", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rr := serve(newTestHandler(t, Config{Posts: newMemoryStore(1)}), req)
	if got := rr.Header().Get("X-Request-ID"); got != "req-1" {
		t.Fatalf("X-Request-ID = %q, want %q", got, "req-1")
	}
	if strings.TrimSpace(rr.Body.String()) != "ok" {
		t.Fatalf("health body = %q, want ok", rr.Body.String())
	}
}

func TestNewHandlerServesStaticAssets(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	tests := []struct {
		path        string
		contentType string
	}{
		{path: "/static/app.css", contentType: "text/css"},
		{path: "/static/app.js", contentType: "javascript"},
	}
	for _, tc := range tests {
		rr := serve(h, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want %d", tc.path, rr.Code, http.StatusOK)
		}
		if got := rr.Header().Get("Content-Type"); !strings.Contains(got, tc.contentType) {
			t.Fatalf("%s Content-Type = %q, want %q", tc.path, got, tc.contentType)
		}
	}
}

func TestNewHandlerRoutesEverySurface(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{Posts: newMemoryStore(3)})
	tests := []struct {
		target     string
		wantStatus int
	}{
		{target: "/", wantStatus: http.StatusOK},
		{target: "/posts/2", wantStatus: http.StatusOK},
		{target: "/posts/abc", wantStatus: http.StatusNotFound},
		{target: "/search?q=post", wantStatus: http.StatusOK},
		{target: "/admin", wantStatus: http.StatusOK},
		{target: "/admin/posts/new", wantStatus: http.StatusOK},
		{target: "/missing", wantStatus: http.StatusNotFound},
		{target: "/static/missing.css", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := serve(h, httptest.NewRequest(http.MethodGet, tc.target, nil))
		if rr.Code != tc.wantStatus {
			t.Fatalf("%s status = %d, want %d", tc.target, rr.Code, tc.wantStatus)
		}
	}
}

func TestNewHandlerWithoutStoreRendersFailure(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t, Config{}), httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rr.Body.String(), "Failed to load posts") {
		t.Fatalf("body missing failure copy")
	}
}

func TestNewHandlerRecoversPanickingStore(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{Posts: panicStore{newMemoryStore(0)}})
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

type panicStore struct{ *memoryStore }

func (panicStore) ListPosts(context.Context) ([]posts.Post, error) {
	panic("boom")
}

// upstreamAPI is a minimal posts API counting list reads.
type upstreamAPI struct {
	lists atomic.Int32
	items []posts.Post
}

func (u *upstreamAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/posts":
		u.lists.Add(1)
		_ = json.NewEncoder(w).Encode(u.items)
	case r.Method == http.MethodPost && r.URL.Path == "/posts":
		var in posts.CreateInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(posts.Post{ID: 101, Title: in.Title, Body: in.Body, UserID: in.UserID})
	default:
		http.NotFound(w, r)
	}
}

func TestCreateInvalidatesCachedListing(t *testing.T) {
	t.Parallel()

	api := &upstreamAPI{items: newMemoryStore(4).items}
	upstream := httptest.NewServer(api)
	t.Cleanup(upstream.Close)

	transport := &http.Transport{}
	t.Cleanup(transport.CloseIdleConnections)
	client, err := jsonplaceholder.New(upstream.URL, jsonplaceholder.WithHTTPClient(&http.Client{Transport: transport, Timeout: 5 * time.Second}))
	if err != nil {
		t.Fatalf("jsonplaceholder.New() error = %v", err)
	}
	store, err := sqlite.Open(sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("sqlite.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	h := newTestHandler(t, Config{Posts: postcache.New(client, store)})

	for range 2 {
		if rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil)); rr.Code != http.StatusOK {
			t.Fatalf("home status = %d, want %d", rr.Code, http.StatusOK)
		}
	}
	if got := api.lists.Load(); got != 1 {
		t.Fatalf("upstream list calls = %d, want 1 while cached", got)
	}

	form := url.Values{"title": {"Fresh"}, "body": {"Hello"}, "format": {"plain"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/posts/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "http://example.com")
	if rr := serve(h, req); rr.Code != http.StatusSeeOther {
		t.Fatalf("create status = %d, want %d", rr.Code, http.StatusSeeOther)
	}

	if rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil)); rr.Code != http.StatusOK {
		t.Fatalf("home status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := api.lists.Load(); got != 2 {
		t.Fatalf("upstream list calls = %d, want 2 after invalidation", got)
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{HTTPAddr: "  "}); err == nil {
		t.Fatalf("expected address error")
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if server.Addr() != "127.0.0.1:0" {
		t.Fatalf("Addr() = %q", server.Addr())
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ListenAndServe(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("ListenAndServe did not stop")
	}
}

func TestListenAndServeRejectsNilReceiver(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatalf("expected nil server error")
	}
	server.Close()
}
