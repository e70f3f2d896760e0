package postdetail

import (
	"context"

	"github.com/louisbranch/postboard/internal/posts"
	apperrors "github.com/louisbranch/postboard/internal/services/web/platform/errors"
)

// PostGateway loads one post. Errors are typed web errors.
type PostGateway interface {
	GetPost(context.Context, int) (posts.Post, error)
}

type service struct {
	gateway PostGateway
}

func newService(gateway PostGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// post parses the route id and loads the post. An unparseable id never
// reaches the gateway.
func (s service) post(ctx context.Context, rawID string) (posts.Post, error) {
	id, err := posts.ParseID(rawID)
	if err != nil {
		return posts.Post{}, apperrors.Wrap(apperrors.KindNotFound, "error.invalid_post_id", "invalid post id", err)
	}
	return s.gateway.GetPost(ctx, id)
}
