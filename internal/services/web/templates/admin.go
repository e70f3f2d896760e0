package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/postboard/internal/posts/pagination"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
)

// AdminPostCardView is one card of the admin grid.
type AdminPostCardView struct {
	ID        int
	Title     string
	Excerpt   string
	EditURL   string
	DeleteURL string
}

// AdminListView is the admin "Manage Posts" page body.
type AdminListView struct {
	Total          int
	Posts          []AdminPostCardView
	Query          string
	PerPage        int
	PerPageOptions []int
	Page           int
	// PageCount is how many posts the unfiltered page holds; the delete
	// handler uses it to step back when the last one goes.
	PageCount  int
	Pagination PaginationView
	Range      pagination.Range
}

// Filtering reports whether the in-page filter is active.
func (v AdminListView) Filtering() bool {
	return v.Query != ""
}

// AdminListHeader renders the title row with the total and the New Post
// button.
func AdminListHeader(total int, showTotal bool, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<div class="page-header"><div class="header-title"><h2>`)
		m.text(T(loc, "admin.list.title"))
		m.raw(`</h2>`)
		if showTotal {
			m.raw(`<span class="muted total">`)
			m.text(TotalLabel(loc, total))
			m.raw(`</span>`)
		}
		m.raw(`</div><a class="button"`)
		m.href(routepath.AdminPostNew)
		m.raw(`>+ `)
		m.text(T(loc, "admin.nav.new_post"))
		m.raw(`</a></div>`)
	})
}

// AdminPostList renders the filter controls, the post cards and pagination.
func AdminPostList(view AdminListView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.render(ctx, AdminListHeader(view.Total, true, loc))
		adminFilters(m, view, loc)
		if view.Filtering() {
			m.raw(`<p class="filter-status">`)
			if len(view.Posts) > 0 {
				m.text(T(loc, "admin.list.found", len(view.Posts), view.Query))
			} else {
				m.text(T(loc, "admin.list.no_match", view.Query))
			}
			m.raw(`</p>`)
		}
		m.raw(`<section class="post-grid admin-grid">`)
		for _, post := range view.Posts {
			adminCard(m, post, view, loc)
		}
		m.raw(`</section>`)
		if !view.Filtering() && view.Pagination.Visible() {
			m.render(ctx, Pagination(view.Pagination, loc))
		}
		if !view.Filtering() && view.Pagination.Visible() && view.Range.From > 0 {
			m.raw(`<p class="muted small range">`)
			m.text(T(loc, "admin.list.showing", view.Range.From, view.Range.To, view.Range.Total))
			m.raw(`</p>`)
		}
	})
}

func adminFilters(m *markup, view AdminListView, loc Localizer) {
	m.raw(`<form class="admin-filters" method="get" data-admin-filters`)
	m.attr("action", routepath.Admin)
	m.raw(`><input type="search" name="q"`)
	m.attr("value", view.Query)
	m.attr("placeholder", T(loc, "admin.list.filter_placeholder"))
	m.attr("aria-label", T(loc, "admin.list.filter_label"))
	m.raw(`><input type="hidden" name="page"`)
	m.attr("value", itoa(view.Page))
	m.raw(`><label class="per-page">`)
	m.text(T(loc, "admin.list.per_page"))
	m.raw(` <select name="per_page" data-autosubmit>`)
	for _, option := range view.PerPageOptions {
		m.raw(`<option`)
		m.attr("value", itoa(option))
		if option == view.PerPage {
			m.raw(` selected`)
		}
		m.raw(`>`, itoa(option), `</option>`)
	}
	m.raw(`</select></label><button type="submit" class="button outline small">`)
	m.text(T(loc, "admin.list.apply"))
	m.raw(`</button></form>`)
}

func adminCard(m *markup, post AdminPostCardView, view AdminListView, loc Localizer) {
	m.raw(`<article class="card admin-card"><div class="card-head"><h3 class="card-title">`)
	m.text(post.Title)
	m.raw(`</h3><span class="badge">`)
	m.text(T(loc, "admin.card.id", post.ID))
	m.raw(`</span></div><p class="card-excerpt">`)
	m.text(post.Excerpt)
	m.raw(`</p><div class="card-actions"><a class="button outline small"`)
	m.href(post.EditURL)
	m.raw(`>`)
	m.text(T(loc, "admin.card.edit"))
	m.raw(`</a><form method="post" class="inline"`)
	m.attr("action", post.DeleteURL)
	m.attr("hx-post", post.DeleteURL)
	m.attr("hx-confirm", T(loc, "admin.delete.confirm", post.Title))
	m.raw(`><input type="hidden" name="return_page"`)
	m.attr("value", itoa(view.Page))
	m.raw(`><input type="hidden" name="page_count"`)
	m.attr("value", itoa(view.PageCount))
	m.raw(`><input type="hidden" name="per_page"`)
	m.attr("value", itoa(view.PerPage))
	m.raw(`><button type="submit" class="button danger small">`)
	m.text(T(loc, "admin.card.delete"))
	m.raw(`</button></form></div></article>`)
}

// FormatOption is one entry of the editor format selector.
type FormatOption struct {
	Value    string
	Label    string
	Selected bool
}

// PostFormView is the create/edit form state.
type PostFormView struct {
	Heading     string
	Action      string
	SubmitLabel string
	Title       string
	Body        string
	Formats     []FormatOption
	Error       string
}

// PostForm renders the post editor. The rich-text toolbar is attached by
// app.js when the HTML format is selected.
func PostForm(view PostFormView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		formHeader(m, view.Heading, loc)
		m.raw(`<section class="card form-card"><h3 class="card-title">`)
		m.text(T(loc, "admin.form.details"))
		m.raw(`</h3>`)
		if view.Error != "" {
			m.raw(`<p class="form-error" role="alert">`)
			m.text(view.Error)
			m.raw(`</p>`)
		}
		m.raw(`<form method="post" class="post-form" data-post-form`)
		m.attr("action", view.Action)
		m.raw(`><div class="field"><label for="title">`)
		m.text(T(loc, "admin.form.title_label"))
		m.raw(`</label><input id="title" name="title" type="text" required`)
		m.attr("value", view.Title)
		m.attr("placeholder", T(loc, "admin.form.title_placeholder"))
		m.raw(`></div><div class="field"><label for="format">`)
		m.text(T(loc, "admin.form.format_label"))
		m.raw(`</label><select id="format" name="format" data-editor-format>`)
		for _, option := range view.Formats {
			m.raw(`<option`)
			m.attr("value", option.Value)
			if option.Selected {
				m.raw(` selected`)
			}
			m.raw(`>`)
			m.text(option.Label)
			m.raw(`</option>`)
		}
		m.raw(`</select></div><div class="field"><label for="body">`)
		m.text(T(loc, "admin.form.body_label"))
		m.raw(`</label><textarea id="body" name="body" rows="12" required data-editor-source`)
		m.attr("placeholder", T(loc, "admin.form.body_placeholder"))
		m.raw(`>`)
		m.text(view.Body)
		m.raw(`</textarea></div><div class="form-actions"><button type="submit" class="button">`)
		m.text(view.SubmitLabel)
		m.raw(`</button><a class="button outline"`)
		m.href(routepath.Admin)
		m.raw(`>`)
		m.text(T(loc, "admin.form.cancel"))
		m.raw(`</a></div></form></section>`)
	})
}

// FormUnavailable renders the edit page heading over a status block, used
// when the post id is invalid or the post cannot be loaded.
func FormUnavailable(heading string, state StateView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		formHeader(m, heading, loc)
		m.render(ctx, StatusState(state))
	})
}

func formHeader(m *markup, heading string, loc Localizer) {
	m.raw(`<div class="page-header"><a class="button ghost small"`)
	m.href(routepath.Admin)
	m.raw(`><span aria-hidden="true">←</span> `)
	m.text(T(loc, "admin.form.back"))
	m.raw(`</a><h2>`)
	m.text(heading)
	m.raw(`</h2></div>`)
}
