package templates

import (
	"context"

	"github.com/a-h/templ"
)

// PostCardView is one card of the public grid.
type PostCardView struct {
	ID      int
	Title   string
	Excerpt string
	URL     string
}

// HomeView is the public listing page body.
type HomeView struct {
	Posts      []PostCardView
	Pagination PaginationView
}

// PostGrid renders the public post cards followed by the pagination control.
func PostGrid(view HomeView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="post-grid">`)
		for _, post := range view.Posts {
			m.raw(`<article class="card post-card"><h2 class="card-title">`)
			m.text(post.Title)
			m.raw(`</h2><p class="card-excerpt">`)
			m.text(post.Excerpt)
			m.raw(`</p><a class="button small"`)
			m.href(post.URL)
			m.raw(`>`)
			m.text(T(loc, "posts.card.read_more"))
			m.raw(`</a></article>`)
		}
		m.raw(`</section>`)
		m.render(ctx, Pagination(view.Pagination, loc))
	})
}

// PostDetailView is a single post. BodyHTML must already be sanitized.
type PostDetailView struct {
	Title    string
	BodyHTML string
}

// PostDetail renders the post title and body.
func PostDetail(view PostDetailView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<article class="card post-detail"><h2 class="post-title">`)
		m.text(view.Title)
		m.raw(`</h2><div class="prose">`, view.BodyHTML, `</div></article>`)
	})
}
