package postdetail

import (
	"context"
	"sync/atomic"

	"github.com/louisbranch/postboard/internal/posts"
)

type fakeGateway struct {
	post  posts.Post
	err   error
	calls *atomic.Int32
}

var _ PostGateway = fakeGateway{}

func (f fakeGateway) GetPost(_ context.Context, id int) (posts.Post, error) {
	if f.calls != nil {
		f.calls.Add(1)
	}
	if f.err != nil {
		return posts.Post{}, f.err
	}
	post := f.post
	post.ID = id
	return post, nil
}

type fakeSource struct {
	err error
}

func (f fakeSource) GetPost(_ context.Context, id int) (posts.Post, error) {
	if f.err != nil {
		return posts.Post{}, f.err
	}
	return posts.Post{ID: id, Title: "t", Body: "b", UserID: 1}, nil
}
