// Package publichandler provides a shared base for public site handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across public modules.
package publichandler

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/postboard/internal/services/web/module"
	webi18n "github.com/louisbranch/postboard/internal/services/web/platform/i18n"
	"github.com/louisbranch/postboard/internal/services/web/platform/pagerender"
	"github.com/louisbranch/postboard/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/postboard/internal/services/web/templates"
)

// Base provides shared error handling and page rendering for public modules.
// Embed this in handler structs to get WritePublicPage, WriteNotFound and
// WriteError in the public shell.
type Base struct {
	resolveLanguage module.ResolveLanguage
}

// Option configures a Base.
type Option func(*Base)

// WithResolveLanguage attaches an explicit language resolver.
func WithResolveLanguage(resolve module.ResolveLanguage) Option {
	return func(b *Base) { b.resolveLanguage = resolve }
}

// NewBase builds a public handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	return b
}

// ResolveRequestLanguage returns the explicit request language, if any.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.resolveLanguage == nil {
		return ""
	}
	return b.resolveLanguage(r)
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.resolveLanguage)
}

// WritePublicPage renders a page inside the public shell.
func (b Base) WritePublicPage(w http.ResponseWriter, r *http.Request, title string, statusCode int, header webtemplates.PublicHeader, body templ.Component) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Shell:      pagerender.ShellPublic,
		Header:     header,
		Fragment:   body,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteNotFound renders a localized 404 error page using the public layout.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b, pagerender.ShellPublic)
}

// WriteError renders a user-safe error response: app error pages for not-found
// and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b, pagerender.ShellPublic)
}
