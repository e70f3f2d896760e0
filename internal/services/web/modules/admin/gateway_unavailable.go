package admin

import (
	"context"

	"github.com/louisbranch/postboard/internal/posts"
	apperrors "github.com/louisbranch/postboard/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListPosts(context.Context) ([]posts.Post, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "error.fetch_posts", "post source is not configured")
}

func (unavailableGateway) GetPost(context.Context, int) (posts.Post, error) {
	return posts.Post{}, apperrors.EK(apperrors.KindUnavailable, "error.fetch_post", "post source is not configured")
}

func (unavailableGateway) CreatePost(context.Context, posts.CreateInput) (posts.Post, error) {
	return posts.Post{}, apperrors.EK(apperrors.KindUnavailable, "error.create_post", "post source is not configured")
}

func (unavailableGateway) UpdatePost(context.Context, posts.UpdateInput) (posts.Post, error) {
	return posts.Post{}, apperrors.EK(apperrors.KindUnavailable, "error.update_post", "post source is not configured")
}

func (unavailableGateway) DeletePost(context.Context, int) error {
	return apperrors.EK(apperrors.KindUnavailable, "error.delete_post", "post source is not configured")
}
