// Package admin serves the post management dashboard: the paginated list,
// the create and edit forms and delete.
package admin

import (
	"net/http"

	"github.com/louisbranch/postboard/internal/services/web/module"
	"github.com/louisbranch/postboard/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
)

// Module provides admin routes.
type Module struct {
	gateway PostGateway
	base    modulehandler.Base
}

// New returns an admin module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns an admin module with explicit gateway and handler dependencies.
func NewWithGateway(gateway PostGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "admin" }

// Healthy reports whether the admin module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires admin route handlers behind the same-origin guard.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway)
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AdminPrefix, Handler: m.base.RequireSameOrigin(mux)}, nil
}
