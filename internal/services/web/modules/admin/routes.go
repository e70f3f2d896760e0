package admin

import (
	"net/http"

	"github.com/louisbranch/postboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Admin, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPrefix+"{$}", h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPostNew, h.handleNew)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminPostNew, h.handleCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPostEditPattern, h.handleEdit)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminPostEditPattern, h.handleUpdate)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPostDeletePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminPostDeletePattern, h.handleDelete)
	mux.HandleFunc(routepath.AdminPrefix, h.WriteNotFound)
}
