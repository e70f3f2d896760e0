package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
)

// SearchResultView is one dropdown entry. TitleHTML and ExcerptHTML are
// escaped text with <mark> highlights.
type SearchResultView struct {
	ID          int
	URL         string
	TitleHTML   string
	ExcerptHTML string
}

// SearchResultsView is the dropdown state for one query.
type SearchResultsView struct {
	Query   string
	Results []SearchResultView
	Limit   int
	Failed  bool
}

// Limited reports whether the result list was cut at the dropdown limit.
func (v SearchResultsView) Limited() bool {
	return v.Limit > 0 && len(v.Results) >= v.Limit
}

// SearchBox renders the debounced live-search input. Without JavaScript it
// submits to the search page.
func SearchBox(query string, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<form class="search" role="search" method="get" data-search`)
		m.attr("action", routepath.Search)
		m.raw(`><input type="search" name="q" autocomplete="off" data-search-input`)
		m.attr("value", query)
		m.attr("placeholder", T(loc, "posts.search.placeholder"))
		m.attr("aria-label", T(loc, "posts.search.label"))
		m.attr("hx-get", routepath.Search)
		m.raw(` hx-trigger="input changed delay:300ms, search" hx-target="#search-results" hx-swap="innerHTML" hx-sync="this:replace">`)
		m.raw(`<button type="button" class="search-clear" data-search-clear`)
		m.attr("aria-label", T(loc, "posts.search.clear"))
		m.raw(`>×</button><div id="search-results" class="search-results" aria-live="polite"></div></form>`)
	})
}

// SearchResults renders the dropdown fragment. A blank query renders nothing.
func SearchResults(view SearchResultsView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if view.Query == "" {
			return
		}
		m.raw(`<div class="search-panel">`)
		switch {
		case view.Failed:
			m.raw(`<p class="search-status error">`)
			m.text(T(loc, "posts.search.failed"))
			m.raw(`</p>`)
		case len(view.Results) == 0:
			m.raw(`<p class="search-status">`)
			m.text(T(loc, "posts.search.empty", view.Query))
			m.raw(`</p>`)
		default:
			m.raw(`<p class="search-status">`)
			m.text(T(loc, "posts.search.found", len(view.Results)))
			m.raw(`</p><ul class="search-list">`)
			for _, result := range view.Results {
				m.raw(`<li><a class="search-item"`)
				m.href(result.URL)
				m.raw(`><span class="search-item-title">`, result.TitleHTML, `</span>`)
				m.raw(`<span class="search-item-excerpt">`, result.ExcerptHTML, `</span>`)
				m.raw(`<span class="search-item-meta"><span>#`, itoa(result.ID), `</span><span>`)
				m.text(T(loc, "posts.search.read_more"))
				m.raw(`</span></span></a></li>`)
			}
			m.raw(`</ul>`)
			if view.Limited() {
				m.raw(`<p class="search-hint">`)
				m.text(T(loc, "posts.search.limit_hint", view.Limit))
				m.raw(`</p>`)
			}
		}
		m.raw(`</div>`)
	})
}

// SearchPage is the full-page search used without JavaScript.
func SearchPage(view SearchResultsView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="search-page"><h2>`)
		m.text(T(loc, "posts.search.page_title"))
		m.raw(`</h2><form method="get" class="search-page-form"`)
		m.attr("action", routepath.Search)
		m.raw(`><input type="search" name="q"`)
		m.attr("value", view.Query)
		m.attr("placeholder", T(loc, "posts.search.placeholder"))
		m.attr("aria-label", T(loc, "posts.search.label"))
		m.raw(`><button type="submit" class="button">`)
		m.text(T(loc, "posts.search.submit"))
		m.raw(`</button></form><p class="muted small">`)
		m.text(T(loc, "posts.search.help"))
		m.raw(`</p>`)
		m.render(ctx, SearchResults(view, loc))
		m.raw(`</section>`)
	})
}
