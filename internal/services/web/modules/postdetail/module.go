// Package postdetail serves the public single-post page.
package postdetail

import (
	"net/http"

	"github.com/louisbranch/postboard/internal/services/web/module"
	"github.com/louisbranch/postboard/internal/services/web/platform/publichandler"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
)

// Module provides the post detail route.
type Module struct {
	gateway PostGateway
	base    publichandler.Base
}

// New returns a detail module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a detail module with explicit gateway and handler dependencies.
func NewWithGateway(gateway PostGateway, base publichandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "postdetail" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires the detail route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway)
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.PostsPrefix, Handler: mux}, nil
}
