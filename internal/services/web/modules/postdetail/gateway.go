package postdetail

import (
	"context"

	"github.com/louisbranch/postboard/internal/posts"
	"github.com/louisbranch/postboard/internal/services/web/platform/posterrors"
	"github.com/louisbranch/postboard/internal/upstream/jsonplaceholder"
)

// PostSource is the cached upstream read used by the detail page.
type PostSource interface {
	GetPost(context.Context, int) (posts.Post, error)
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

func (g sourceGateway) GetPost(ctx context.Context, id int) (posts.Post, error) {
	post, err := g.source.GetPost(ctx, id)
	if err != nil {
		return posts.Post{}, posterrors.Map(jsonplaceholder.OpGetPost, err)
	}
	return post, nil
}
