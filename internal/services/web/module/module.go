// Package module defines the feature contract used by web composition.
package module

import "net/http"

// ResolveLanguage returns an explicit language preference for a request, or
// an empty string to fall back to query, cookie and Accept-Language.
type ResolveLanguage func(*http.Request) string

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
