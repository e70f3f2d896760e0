package admin

import (
	"context"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/louisbranch/postboard/internal/posts"
	"github.com/louisbranch/postboard/internal/posts/body"
	"github.com/louisbranch/postboard/internal/posts/pagination"
	postsearch "github.com/louisbranch/postboard/internal/posts/search"
	apperrors "github.com/louisbranch/postboard/internal/services/web/platform/errors"
	"github.com/louisbranch/postboard/internal/services/web/platform/posterrors"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
	"github.com/louisbranch/postboard/internal/upstream/jsonplaceholder"
)

const (
	defaultPerPage = 9
	excerptRunes   = 100
)

var perPageOptions = []int{6, 9, 12, 18, 24}

// PostGateway reads and writes posts for the admin pages. Errors are typed
// web errors.
type PostGateway interface {
	ListPosts(context.Context) ([]posts.Post, error)
	GetPost(context.Context, int) (posts.Post, error)
	CreatePost(context.Context, posts.CreateInput) (posts.Post, error)
	UpdatePost(context.Context, posts.UpdateInput) (posts.Post, error)
	DeletePost(context.Context, int) error
}

// listParams is the normalized admin list query.
type listParams struct {
	Page    int
	PerPage int
	Query   string
}

// parseListParams reads page, per_page and q. An unsupported page size falls
// back to the default and restarts at page 1.
func parseListParams(values url.Values) listParams {
	params := listParams{
		Page:    positiveInt(values.Get(routepath.QueryPage), 1),
		PerPage: defaultPerPage,
		Query:   strings.TrimSpace(values.Get(routepath.QuerySearch)),
	}
	if raw := strings.TrimSpace(values.Get(routepath.QueryPerPage)); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err == nil && slices.Contains(perPageOptions, perPage) {
			params.PerPage = perPage
		} else {
			params.Page = 1
		}
	}
	return params
}

// perPageParam returns the per_page value to carry in links; the default is
// omitted.
func perPageParam(perPage int) int {
	if perPage == defaultPerPage || !slices.Contains(perPageOptions, perPage) {
		return 0
	}
	return perPage
}

func positiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// listing is one admin list page plus the posts left after the in-page filter.
type listing struct {
	params  listParams
	page    pagination.Page[posts.Post]
	visible []posts.Post
}

// postForm is the submitted create/edit form.
type postForm struct {
	Title  string
	Body   string
	Format body.Format
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

func (s service) list(ctx context.Context, params listParams) (listing, error) {
	items, err := s.gateway.ListPosts(ctx)
	if err != nil {
		return listing{params: params}, err
	}
	page := pagination.Paginate(items, params.Page, params.PerPage)
	return listing{
		params:  params,
		page:    page,
		visible: postsearch.Filter(page.Data, params.Query),
	}, nil
}

func (s service) post(ctx context.Context, rawID string) (posts.Post, error) {
	id, err := parseID(rawID)
	if err != nil {
		return posts.Post{}, err
	}
	return s.gateway.GetPost(ctx, id)
}

func (s service) create(ctx context.Context, form postForm) (posts.Post, error) {
	rendered, err := renderBody(form)
	if err != nil {
		return posts.Post{}, err
	}
	in, err := posts.NormalizeCreate(posts.CreateInput{Title: form.Title, Body: rendered})
	if err != nil {
		return posts.Post{}, posterrors.Map(jsonplaceholder.OpCreatePost, err)
	}
	return s.gateway.CreatePost(ctx, in)
}

// update replaces the post, keeping its author when the current copy can be
// read.
func (s service) update(ctx context.Context, id int, form postForm) (posts.Post, error) {
	rendered, err := renderBody(form)
	if err != nil {
		return posts.Post{}, err
	}
	in, err := posts.NormalizeUpdate(posts.UpdateInput{ID: id, Title: form.Title, Body: rendered})
	if err != nil {
		return posts.Post{}, posterrors.Map(jsonplaceholder.OpUpdatePost, err)
	}
	if current, err := s.gateway.GetPost(ctx, id); err == nil && current.UserID > 0 {
		in.UserID = current.UserID
	}
	return s.gateway.UpdatePost(ctx, in)
}

func (s service) delete(ctx context.Context, id int) error {
	return s.gateway.DeletePost(ctx, id)
}

// deleteReturnPage is the list page to land on after a delete. Removing the
// only post of a later page steps back one page.
func deleteReturnPage(returnPage, pageCount int) int {
	if returnPage < 1 {
		return 1
	}
	// Zero means the form did not report how many posts the page held.
	if pageCount == 1 && returnPage > 1 {
		return returnPage - 1
	}
	return returnPage
}

func parseID(raw string) (int, error) {
	id, err := posts.ParseID(raw)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindNotFound, "error.invalid_post_id", "invalid post id", err)
	}
	return id, nil
}

func renderBody(form postForm) (string, error) {
	rendered, err := body.Render(form.Format, form.Body)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInvalidInput, "error.invalid_format", "render body", err)
	}
	return rendered, nil
}
