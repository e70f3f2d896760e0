package admin

import (
	"context"
	"fmt"
	"sync"

	"github.com/louisbranch/postboard/internal/posts"
	apperrors "github.com/louisbranch/postboard/internal/services/web/platform/errors"
)

// fakeGateway is an in-memory post store that records writes.
type fakeGateway struct {
	mu       sync.Mutex
	items    []posts.Post
	listErr  error
	writeErr error
	created  []posts.CreateInput
	updated  []posts.UpdateInput
	deleted  []int
}

var _ PostGateway = (*fakeGateway)(nil)

func newFakeGateway(n int) *fakeGateway {
	items := make([]posts.Post, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, posts.Post{ID: i, Title: fmt.Sprintf("Post %d", i), Body: fmt.Sprintf("Body %d", i), UserID: 1 + i%3})
	}
	return &fakeGateway{items: items}
}

func (f *fakeGateway) ListPosts(context.Context) ([]posts.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]posts.Post(nil), f.items...), nil
}

func (f *fakeGateway) GetPost(_ context.Context, id int) (posts.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return posts.Post{}, apperrors.Wrap(apperrors.KindNotFound, "error.post_not_found", "post not found", posts.ErrNotFound)
}

func (f *fakeGateway) CreatePost(_ context.Context, in posts.CreateInput) (posts.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return posts.Post{}, f.writeErr
	}
	f.created = append(f.created, in)
	return posts.Post{ID: 101, Title: in.Title, Body: in.Body, UserID: in.UserID}, nil
}

func (f *fakeGateway) UpdatePost(_ context.Context, in posts.UpdateInput) (posts.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return posts.Post{}, f.writeErr
	}
	f.updated = append(f.updated, in)
	return posts.Post(in), nil
}

func (f *fakeGateway) DeletePost(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}
