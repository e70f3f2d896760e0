// Package modulehandler provides a composable base for admin web module handlers.
//
// Admin modules (those mounted under /admin) share common handler
// infrastructure for localization, page rendering, error handling and the
// same-origin guard on writes. This package extracts that shared scaffold so
// modules embed it rather than duplicating it.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/postboard/internal/services/web/module"
	webi18n "github.com/louisbranch/postboard/internal/services/web/platform/i18n"
	"github.com/louisbranch/postboard/internal/services/web/platform/pagerender"
	"github.com/louisbranch/postboard/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/postboard/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/postboard/internal/services/web/templates"

	"golang.org/x/text/language"
)

// Base carries the shared request-scoped resolvers used by admin handlers.
type Base struct {
	resolveLanguage module.ResolveLanguage
	schemePolicy    requestmeta.SchemePolicy
}

// NewBase builds a handler base from an explicit language resolver and the
// scheme policy used by the same-origin guard.
func NewBase(resolveLanguage module.ResolveLanguage, policy requestmeta.SchemePolicy) Base {
	return Base{
		resolveLanguage: resolveLanguage,
		schemePolicy:    policy,
	}
}

// NewTestBase builds a handler base with no-op resolvers suitable for tests.
func NewTestBase() Base {
	return Base{resolveLanguage: func(*http.Request) string { return "" }}
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

// RequestLocaleTag returns the resolved language tag for the request.
func (b Base) RequestLocaleTag(r *http.Request) language.Tag {
	return webi18n.ResolveTag(r, b.resolveLanguage)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b, pagerender.ShellAdmin)
}

// WriteNotFound renders a 404 error page within the admin shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b, pagerender.ShellAdmin)
}

// WritePage renders a full admin page (HTMX-aware) with the given title and
// content fragment.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Shell:      pagerender.ShellAdmin,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// RequireSameOrigin wraps next so unsafe methods need a same-origin Origin or
// Referer header. Rejections are plain-text 403 responses.
func (b Base) RequireSameOrigin(next http.Handler) http.Handler {
	reject := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc, _ := b.PageLocalizer(w, r)
		http.Error(w, webtemplates.T(loc, "error.same_origin"), http.StatusForbidden)
	})
	return requestmeta.RequireSameOrigin(b.schemePolicy, reject)(next)
}
