package admin

import (
	"errors"
	"net/http"

	"github.com/louisbranch/postboard/internal/posts"
	"github.com/louisbranch/postboard/internal/posts/body"
	apperrors "github.com/louisbranch/postboard/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/postboard/internal/services/web/platform/flash"
	"github.com/louisbranch/postboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/postboard/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/postboard/internal/services/web/platform/weberror"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/postboard/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r.URL.Query())
	loc, _ := h.PageLocalizer(w, r)
	title := webtemplates.T(loc, "admin.list.title")

	result, err := h.service.list(r.Context(), params)
	if err != nil {
		h.WritePage(w, r, title, apperrors.HTTPStatus(err), webtemplates.Stack(
			webtemplates.AdminListHeader(0, false, loc),
			webtemplates.StatusState(webtemplates.StateView{
				Tone:        webtemplates.ToneError,
				Title:       webtemplates.T(loc, "admin.list.failed_title"),
				Message:     webtemplates.T(loc, "admin.list.failed_message"),
				ActionLabel: webtemplates.T(loc, "posts.list.retry"),
				ActionURL:   routepath.AdminList(params.Page, perPageParam(params.PerPage), params.Query),
			}),
		))
		return
	}
	if len(result.page.Data) == 0 {
		h.WritePage(w, r, title, http.StatusOK, webtemplates.Stack(
			webtemplates.AdminListHeader(result.page.Total, result.page.Total > 0, loc),
			webtemplates.StatusState(webtemplates.StateView{
				Tone:        webtemplates.ToneEmpty,
				Title:       webtemplates.T(loc, "admin.list.empty_title"),
				Message:     webtemplates.T(loc, "admin.list.empty_message"),
				ActionLabel: webtemplates.T(loc, "admin.list.create_first"),
				ActionURL:   routepath.AdminPostNew,
			}),
		))
		return
	}
	h.WritePage(w, r, title, http.StatusOK, webtemplates.AdminPostList(listView(result), loc))
}

func (h handlers) handleNew(w http.ResponseWriter, r *http.Request) {
	h.writeCreateForm(w, r, http.StatusOK, postForm{Format: body.FormatPlain}, nil)
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	form, err := parsePostForm(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if _, err := h.service.create(r.Context(), form); err != nil {
		h.writeCreateForm(w, r, apperrors.HTTPStatus(err), form, err)
		return
	}
	flashnotice.Write(w, r, flashnotice.NoticeSuccess("admin.flash.created"))
	httpx.WriteRedirect(w, r, routepath.Admin)
}

func (h handlers) handleEdit(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.post(r.Context(), r.PathValue("postID"))
	if err != nil {
		h.writeEditUnavailable(w, r, err)
		return
	}
	format := body.FormatPlain
	if body.HasMarkup(post.Body) {
		format = body.FormatHTML
	}
	form := postForm{Title: post.Title, Body: body.EditorValue(format, post.Body), Format: format}
	h.writeEditForm(w, r, http.StatusOK, post.ID, form, nil)
}

func (h handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("postID"))
	if err != nil {
		h.writeEditUnavailable(w, r, err)
		return
	}
	form, err := parsePostForm(r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if _, err := h.service.update(r.Context(), id, form); err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			h.writeEditUnavailable(w, r, err)
			return
		}
		h.writeEditForm(w, r, apperrors.HTTPStatus(err), id, form, err)
		return
	}
	flashnotice.Write(w, r, flashnotice.NoticeSuccess("admin.flash.updated"))
	httpx.WriteRedirect(w, r, routepath.Admin)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("postID"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "error.invalid_form", "parse delete form", err))
		return
	}
	returnPage := positiveInt(r.PostForm.Get("return_page"), 1)
	perPage := perPageParam(positiveInt(r.PostForm.Get(routepath.QueryPerPage), defaultPerPage))

	if err := h.service.delete(r.Context(), id); err != nil {
		key := apperrors.LocalizationKey(err)
		if key == "" {
			key = "error.delete_post"
		}
		flashnotice.Write(w, r, flashnotice.NoticeError(key))
		httpx.WriteRedirect(w, r, routepath.AdminList(returnPage, perPage, ""))
		return
	}
	pageCount := positiveInt(r.PostForm.Get("page_count"), 0)
	target := deleteReturnPage(returnPage, pageCount)
	flashnotice.Write(w, r, flashnotice.NoticeSuccess("admin.flash.deleted"))
	httpx.WriteRedirect(w, r, routepath.AdminList(target, perPage, ""))
}

func (h handlers) writeCreateForm(w http.ResponseWriter, r *http.Request, status int, form postForm, err error) {
	loc, _ := h.PageLocalizer(w, r)
	heading := webtemplates.T(loc, "admin.form.new_title")
	view := formView(loc, heading, routepath.AdminPostNew, webtemplates.T(loc, "admin.form.create_submit"), form, weberror.PublicMessage(loc, err))
	h.WritePage(w, r, heading, status, webtemplates.PostForm(view, loc))
}

func (h handlers) writeEditForm(w http.ResponseWriter, r *http.Request, status int, id int, form postForm, err error) {
	loc, _ := h.PageLocalizer(w, r)
	heading := webtemplates.T(loc, "admin.form.edit_title")
	view := formView(loc, heading, routepath.AdminPostEdit(id), webtemplates.T(loc, "admin.form.update_submit"), form, weberror.PublicMessage(loc, err))
	h.WritePage(w, r, heading, status, webtemplates.PostForm(view, loc))
}

// writeEditUnavailable renders the edit page when the post cannot be edited.
// Lookup failures of any kind read as a missing post.
func (h handlers) writeEditUnavailable(w http.ResponseWriter, r *http.Request, err error) {
	loc, _ := h.PageLocalizer(w, r)
	heading := webtemplates.T(loc, "admin.form.edit_title")
	state := webtemplates.StateView{
		Tone:        webtemplates.ToneError,
		Title:       webtemplates.T(loc, "admin.form.not_found_title"),
		Message:     webtemplates.T(loc, "admin.form.not_found_message"),
		ActionLabel: webtemplates.T(loc, "admin.form.back_to_admin"),
		ActionURL:   routepath.Admin,
	}
	if errors.Is(err, posts.ErrInvalidID) {
		state.Title = webtemplates.T(loc, "admin.form.invalid_title")
		state.Message = webtemplates.T(loc, "admin.form.invalid_message")
	}
	h.WritePage(w, r, heading, http.StatusNotFound, webtemplates.FormUnavailable(heading, state, loc))
}

func parsePostForm(r *http.Request) (postForm, error) {
	if err := r.ParseForm(); err != nil {
		return postForm{}, apperrors.Wrap(apperrors.KindInvalidInput, "error.invalid_form", "parse post form", err)
	}
	return postForm{
		Title:  r.PostForm.Get("title"),
		Body:   r.PostForm.Get("body"),
		Format: body.ParseFormat(r.PostForm.Get("format")),
	}, nil
}
