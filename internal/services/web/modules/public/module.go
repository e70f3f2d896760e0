package public

import (
	"net/http"

	"github.com/louisbranch/postboard/internal/services/web/module"
	"github.com/louisbranch/postboard/internal/services/web/platform/publichandler"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
)

// Module provides the public home listing, the health check and the
// catch-all not-found page.
type Module struct {
	gateway PostGateway
	base    publichandler.Base
}

// New returns a public module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a public module with explicit gateway and handler dependencies.
func NewWithGateway(gateway PostGateway, base publichandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Healthy reports whether the public module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires public route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway)
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
