package postdetail

import (
	"net/http"

	"github.com/louisbranch/postboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.PostPattern, h.handleDetail)
	mux.HandleFunc(routepath.PostsPrefix, h.WriteNotFound)
}
