package postdetail

import (
	"errors"
	"net/http"

	"github.com/louisbranch/postboard/internal/posts"
	"github.com/louisbranch/postboard/internal/posts/body"
	"github.com/louisbranch/postboard/internal/services/web/platform/publichandler"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/postboard/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	header := webtemplates.PublicHeader{BackURL: routepath.Root}

	post, err := h.service.post(r.Context(), r.PathValue("postID"))
	if err != nil {
		// Every lookup failure reads as a missing post; only the id check
		// gets its own copy.
		state := webtemplates.StateView{
			Tone:        webtemplates.ToneError,
			Title:       webtemplates.T(loc, "posts.detail.not_found_title"),
			Message:     webtemplates.T(loc, "posts.detail.not_found_message"),
			ActionLabel: webtemplates.T(loc, "posts.detail.back_to_posts"),
			ActionURL:   routepath.Root,
		}
		if errors.Is(err, posts.ErrInvalidID) {
			state.Title = webtemplates.T(loc, "posts.detail.invalid_title")
			state.Message = webtemplates.T(loc, "posts.detail.invalid_message")
		}
		h.WritePublicPage(w, r, state.Title, http.StatusNotFound, header, webtemplates.StatusState(state))
		return
	}

	h.WritePublicPage(w, r, post.Title, http.StatusOK, header, webtemplates.PostDetail(webtemplates.PostDetailView{
		Title:    post.Title,
		BodyHTML: body.Display(post.Body),
	}))
}
