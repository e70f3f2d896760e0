package admin

import (
	"slices"

	"github.com/louisbranch/postboard/internal/posts/body"
	"github.com/louisbranch/postboard/internal/posts/pagination"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/postboard/internal/services/web/templates"
)

func listView(result listing) webtemplates.AdminListView {
	page := result.page
	perPage := result.params.PerPage
	cards := make([]webtemplates.AdminPostCardView, 0, len(result.visible))
	for _, post := range result.visible {
		cards = append(cards, webtemplates.AdminPostCardView{
			ID:        post.ID,
			Title:     post.Title,
			Excerpt:   body.Truncate(post.Body, excerptRunes),
			EditURL:   routepath.AdminPostEdit(post.ID),
			DeleteURL: routepath.AdminPostDelete(post.ID),
		})
	}
	linkPerPage := perPageParam(perPage)
	return webtemplates.AdminListView{
		Total:          page.Total,
		Posts:          cards,
		Query:          result.params.Query,
		PerPage:        perPage,
		PerPageOptions: slices.Clone(perPageOptions),
		Page:           page.Page,
		PageCount:      len(page.Data),
		Pagination: webtemplates.NewPaginationView(page.Page, page.TotalPages, func(n int) string {
			return routepath.AdminList(n, linkPerPage, "")
		}),
		Range: pagination.Window(page.Page, perPage, page.Total),
	}
}

// formView builds the create/edit form with form.Format preselected.
func formView(loc webtemplates.Localizer, heading, action, submit string, form postForm, message string) webtemplates.PostFormView {
	labels := map[body.Format]string{
		body.FormatPlain:    "admin.form.format_plain",
		body.FormatMarkdown: "admin.form.format_markdown",
		body.FormatHTML:     "admin.form.format_html",
	}
	formats := make([]webtemplates.FormatOption, 0, len(labels))
	for _, format := range body.Formats() {
		formats = append(formats, webtemplates.FormatOption{
			Value:    string(format),
			Label:    webtemplates.T(loc, labels[format]),
			Selected: format == form.Format,
		})
	}
	return webtemplates.PostFormView{
		Heading:     heading,
		Action:      action,
		SubmitLabel: submit,
		Title:       form.Title,
		Body:        form.Body,
		Formats:     formats,
		Error:       message,
	}
}
