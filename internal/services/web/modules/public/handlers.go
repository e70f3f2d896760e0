package public

import (
	"net/http"

	"github.com/louisbranch/postboard/internal/posts"
	"github.com/louisbranch/postboard/internal/posts/body"
	"github.com/louisbranch/postboard/internal/posts/pagination"
	"github.com/louisbranch/postboard/internal/services/web/platform/httpx"
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

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	requested := httpx.QueryInt(r, routepath.QueryPage, 1)
	loc, _ := h.PageLocalizer(w, r)
	title := webtemplates.T(loc, "posts.home.title")

	page, err := h.service.homePage(r.Context(), requested)
	if err != nil {
		h.WritePublicPage(w, r, title, http.StatusServiceUnavailable, webtemplates.PublicHeader{}, webtemplates.StatusState(webtemplates.StateView{
			Tone:        webtemplates.ToneError,
			Title:       webtemplates.T(loc, "posts.list.failed_title"),
			Message:     webtemplates.T(loc, "posts.list.failed_message"),
			ActionLabel: webtemplates.T(loc, "posts.list.retry"),
			ActionURL:   routepath.Home(requested),
		}))
		return
	}

	header := webtemplates.PublicHeader{Total: page.Total, ShowTotal: page.Total > 0}
	if len(page.Data) == 0 {
		h.WritePublicPage(w, r, title, http.StatusOK, header, webtemplates.StatusState(webtemplates.StateView{
			Tone:    webtemplates.ToneEmpty,
			Title:   webtemplates.T(loc, "posts.list.empty_title"),
			Message: webtemplates.T(loc, "posts.list.empty_message"),
		}))
		return
	}
	h.WritePublicPage(w, r, title, http.StatusOK, header, webtemplates.PostGrid(homeView(page), loc))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func homeView(page pagination.Page[posts.Post]) webtemplates.HomeView {
	cards := make([]webtemplates.PostCardView, 0, len(page.Data))
	for _, post := range page.Data {
		cards = append(cards, webtemplates.PostCardView{
			ID:      post.ID,
			Title:   post.Title,
			Excerpt: body.Truncate(post.Body, homeExcerptRunes),
			URL:     routepath.Post(post.ID),
		})
	}
	return webtemplates.HomeView{
		Posts:      cards,
		Pagination: webtemplates.NewPaginationView(page.Page, page.TotalPages, routepath.Home),
	}
}
