package postdetail

import (
	"context"

	"github.com/louisbranch/postboard/internal/posts"
	apperrors "github.com/louisbranch/postboard/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) GetPost(context.Context, int) (posts.Post, error) {
	return posts.Post{}, apperrors.EK(apperrors.KindUnavailable, "error.fetch_post", "post source is not configured")
}
