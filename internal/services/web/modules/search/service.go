package search

import (
	"context"
	"strings"

	"github.com/louisbranch/postboard/internal/posts"
	"github.com/louisbranch/postboard/internal/posts/body"
	postsearch "github.com/louisbranch/postboard/internal/posts/search"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/postboard/internal/services/web/templates"
)

const excerptRunes = 120

// PostGateway loads the posts to search. Errors are typed web errors.
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

// search runs query over every post and returns at most limit highlighted
// results; limit <= 0 returns every match. A blank query never reaches the
// gateway.
func (s service) search(ctx context.Context, query string, limit int) (webtemplates.SearchResultsView, error) {
	query = strings.TrimSpace(query)
	view := webtemplates.SearchResultsView{Query: query, Limit: limit}
	if query == "" {
		return view, nil
	}
	items, err := s.gateway.ListPosts(ctx)
	if err != nil {
		view.Failed = true
		return view, err
	}
	matches := postsearch.Search(items, query, limit)
	view.Results = make([]webtemplates.SearchResultView, 0, len(matches))
	for _, post := range matches {
		view.Results = append(view.Results, webtemplates.SearchResultView{
			ID:          post.ID,
			URL:         routepath.Post(post.ID),
			TitleHTML:   postsearch.Highlight(post.Title, query),
			ExcerptHTML: postsearch.Highlight(body.Truncate(post.Body, excerptRunes), query),
		})
	}
	return view, nil
}
