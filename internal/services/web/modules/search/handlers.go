package search

import (
	"bytes"
	"net/http"

	postsearch "github.com/louisbranch/postboard/internal/posts/search"
	apperrors "github.com/louisbranch/postboard/internal/services/web/platform/errors"
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

func (h handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get(routepath.QuerySearch)
	loc, _ := h.PageLocalizer(w, r)

	if httpx.IsHTMXRequest(r) {
		// The dropdown always answers 200 so htmx swaps the failure copy in.
		view, _ := h.service.search(r.Context(), query, postsearch.DropdownLimit)
		var buf bytes.Buffer
		if err := webtemplates.SearchResults(view, loc).Render(r.Context(), &buf); err != nil {
			h.WriteError(w, r, err)
			return
		}
		_ = httpx.WriteHTML(w, http.StatusOK, buf.String())
		return
	}

	view, err := h.service.search(r.Context(), query, 0)
	status := http.StatusOK
	if err != nil {
		status = apperrors.HTTPStatus(err)
	}
	header := webtemplates.PublicHeader{BackURL: routepath.Root, SearchQuery: view.Query}
	h.WritePublicPage(w, r, webtemplates.T(loc, "posts.search.page_title"), status, header, webtemplates.SearchPage(view, loc))
}
