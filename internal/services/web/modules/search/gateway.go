package search

import (
	"context"

	"github.com/louisbranch/postboard/internal/posts"
	"github.com/louisbranch/postboard/internal/services/web/platform/posterrors"
	"github.com/louisbranch/postboard/internal/upstream/jsonplaceholder"
)

// PostSource is the cached upstream read searched by this module.
type PostSource interface {
	ListPosts(context.Context) ([]posts.Post, error)
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
