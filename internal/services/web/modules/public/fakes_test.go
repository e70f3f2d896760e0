package public

import (
	"context"
	"fmt"

	"github.com/louisbranch/postboard/internal/posts"
)

type fakeGateway struct {
	items []posts.Post
	err   error
}

var _ PostGateway = fakeGateway{}

func (f fakeGateway) ListPosts(context.Context) ([]posts.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeSource struct {
	items []posts.Post
	err   error
}

func (f fakeSource) ListPosts(context.Context) ([]posts.Post, error) {
	return f.items, f.err
}

func samplePosts(n int) []posts.Post {
	items := make([]posts.Post, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, posts.Post{
			ID:     i,
			Title:  fmt.Sprintf("Post %d", i),
			Body:   fmt.Sprintf("Body of post %d", i),
			UserID: 1,
		})
	}
	return items
}
