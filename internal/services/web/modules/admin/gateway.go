package admin

import (
	"context"

	"github.com/louisbranch/postboard/internal/posts"
	"github.com/louisbranch/postboard/internal/services/web/platform/posterrors"
	"github.com/louisbranch/postboard/internal/upstream/jsonplaceholder"
)

// PostSource is the cached upstream used by the admin pages. Writes through
// it invalidate the cached listing.
type PostSource interface {
	ListPosts(context.Context) ([]posts.Post, error)
	GetPost(context.Context, int) (posts.Post, error)
	CreatePost(context.Context, posts.CreateInput) (posts.Post, error)
	UpdatePost(context.Context, posts.UpdateInput) (posts.Post, error)
	DeletePost(context.Context, int) error
}

// NewPostGateway builds the production gateway over source.
func NewPostGateway(source PostSource) PostGateway {
	if source == nil {
		return unavailableGateway{}
	}
	return sourceGateway{source: source}
}

type sourceGateway struct {
	source PostSource
}

func (g sourceGateway) ListPosts(ctx context.Context) ([]posts.Post, error) {
	items, err := g.source.ListPosts(ctx)
	if err != nil {
		return nil, posterrors.Map(jsonplaceholder.OpListPosts, err)
	}
	return items, nil
}

func (g sourceGateway) GetPost(ctx context.Context, id int) (posts.Post, error) {
	post, err := g.source.GetPost(ctx, id)
	if err != nil {
		return posts.Post{}, posterrors.Map(jsonplaceholder.OpGetPost, err)
	}
	return post, nil
}

func (g sourceGateway) CreatePost(ctx context.Context, in posts.CreateInput) (posts.Post, error) {
	post, err := g.source.CreatePost(ctx, in)
	if err != nil {
		return posts.Post{}, posterrors.Map(jsonplaceholder.OpCreatePost, err)
	}
	return post, nil
}

func (g sourceGateway) UpdatePost(ctx context.Context, in posts.UpdateInput) (posts.Post, error) {
	post, err := g.source.UpdatePost(ctx, in)
	if err != nil {
		return posts.Post{}, posterrors.Map(jsonplaceholder.OpUpdatePost, err)
	}
	return post, nil
}

func (g sourceGateway) DeletePost(ctx context.Context, id int) error {
	if err := g.source.DeletePost(ctx, id); err != nil {
		return posterrors.Map(jsonplaceholder.OpDeletePost, err)
	}
	return nil
}
