package search

import (
	"net/http"

	"github.com/louisbranch/postboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Search, h.handleSearch)
	mux.HandleFunc(routepath.Search, httpx.MethodNotAllowed(http.MethodGet))
}
