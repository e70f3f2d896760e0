package public

import (
	"context"

	"github.com/louisbranch/postboard/internal/posts"
	"github.com/louisbranch/postboard/internal/posts/pagination"
)

const (
	homePageSize     = 12
	homeExcerptRunes = 150
)

// PostGateway loads posts for the home listing. Errors are typed web errors.
type PostGateway interface {
	ListPosts(context.Context) ([]posts.Post, error)
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

// homePage fetches every post and returns the requested page of the listing.
func (s service) homePage(ctx context.Context, page int) (pagination.Page[posts.Post], error) {
	items, err := s.gateway.ListPosts(ctx)
	if err != nil {
		return pagination.Page[posts.Post]{}, err
	}
	return pagination.Paginate(items, page, homePageSize), nil
}
