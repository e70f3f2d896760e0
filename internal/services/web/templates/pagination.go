package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/postboard/internal/posts/pagination"
)

// PaginationItem is one rendered slot of the pagination control.
type PaginationItem struct {
	Label    string
	URL      string
	Current  bool
	Ellipsis bool
}

// PaginationView is the pagination control. Empty PrevURL or NextURL render
// disabled buttons.
type PaginationView struct {
	Items   []PaginationItem
	PrevURL string
	NextURL string
}

// Visible reports whether the control has anything to show.
func (v PaginationView) Visible() bool {
	return len(v.Items) > 0
}

// NewPaginationView builds the control for page of totalPages, using urlFor
// to link each page.
func NewPaginationView(page int, totalPages int, urlFor func(int) string) PaginationView {
	links := pagination.VisiblePages(page, totalPages)
	if len(links) == 0 || urlFor == nil {
		return PaginationView{}
	}
	view := PaginationView{Items: make([]PaginationItem, 0, len(links))}
	for _, link := range links {
		if link.Ellipsis {
			view.Items = append(view.Items, PaginationItem{Label: "…", Ellipsis: true})
			continue
		}
		view.Items = append(view.Items, PaginationItem{
			Label:   itoa(link.Number),
			URL:     urlFor(link.Number),
			Current: link.Current,
		})
	}
	if page > 1 {
		view.PrevURL = urlFor(page - 1)
	}
	if page < totalPages {
		view.NextURL = urlFor(page + 1)
	}
	return view
}

// Pagination renders the previous/next buttons around the page links.
func Pagination(view PaginationView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if !view.Visible() {
			return
		}
		m.raw(`<nav class="pagination"`)
		m.attr("aria-label", T(loc, "core.pagination.label"))
		m.raw(`>`)
		pageButton(m, view.PrevURL, "‹ "+T(loc, "core.pagination.previous"), "prev")
		for _, item := range view.Items {
			switch {
			case item.Ellipsis:
				m.raw(`<span class="page-ellipsis" aria-hidden="true">…</span>`)
			case item.Current:
				m.raw(`<span class="page-link current" aria-current="page">`)
				m.text(item.Label)
				m.raw(`</span>`)
			default:
				m.raw(`<a class="page-link"`)
				m.href(item.URL)
				m.raw(`>`)
				m.text(item.Label)
				m.raw(`</a>`)
			}
		}
		pageButton(m, view.NextURL, T(loc, "core.pagination.next")+" ›", "next")
		m.raw(`</nav>`)
	})
}

func pageButton(m *markup, url string, label string, rel string) {
	if url == "" {
		m.raw(`<span class="page-link disabled" aria-disabled="true">`)
		m.text(label)
		m.raw(`</span>`)
		return
	}
	m.raw(`<a class="page-link"`)
	m.href(url)
	m.attr("rel", rel)
	m.raw(`>`)
	m.text(label)
	m.raw(`</a>`)
}
