package public

import (
	"context"

	"github.com/louisbranch/postboard/internal/posts"
	apperrors "github.com/louisbranch/postboard/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListPosts(context.Context) ([]posts.Post, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "error.fetch_posts", "post source is not configured")
}
