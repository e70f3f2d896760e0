package search

import (
	"context"
	"sync/atomic"

	"github.com/louisbranch/postboard/internal/posts"
)

type fakeGateway struct {
	items []posts.Post
	err   error
	calls *atomic.Int32
}

var _ PostGateway = fakeGateway{}

func (f fakeGateway) ListPosts(context.Context) ([]posts.Post, error) {
	if f.calls != nil {
		f.calls.Add(1)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func corpus() []posts.Post {
	return []posts.Post{
		{ID: 1, Title: "Go concurrency", Body: "Channels and goroutines", UserID: 1},
		{ID: 2, Title: "Gardening", Body: "<p>Grow <b>tomatoes</b> in summer</p>", UserID: 1},
		{ID: 3, Title: "Cooking", Body: "Tomato soup for the win", UserID: 2},
		{ID: 4, Title: "Travel <notes>", Body: "Lisbon and Porto", UserID: 2},
	}
}
