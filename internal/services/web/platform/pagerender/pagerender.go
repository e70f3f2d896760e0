// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/louisbranch/postboard/internal/services/web/module"
	flashnotice "github.com/louisbranch/postboard/internal/services/web/platform/flash"
	"github.com/louisbranch/postboard/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/postboard/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/postboard/internal/services/web/templates"
)

// RequestResolver resolves language state from a request.
// This decouples platform rendering from module handler bases.
type RequestResolver interface {
	ResolveRequestLanguage(r *http.Request) string
}

// Shell selects the document layout wrapped around a module fragment.
type Shell int

const (
	// ShellPublic is the public site layout with search and admin link.
	ShellPublic Shell = iota
	// ShellAdmin is the admin dashboard layout.
	ShellAdmin
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Shell      Shell
	// Header is only read by the public shell; a zero Title falls back to
	// the application name.
	Header   webtemplates.PublicHeader
	Fragment templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page using shared shell rendering contracts.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	var resolveLanguage module.ResolveLanguage
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
		return httpx.WriteHTML(w, statusCode, buf.String())
	}

	chrome := webtemplates.Chrome{
		Title: page.Title,
		Lang:  lang,
		Loc:   loc,
		Toast: resolveFlashToast(w, r, loc),
	}
	if r != nil && r.URL != nil {
		chrome.Path = r.URL.Path
		chrome.RawQuery = r.URL.RawQuery
	}
	var layout templ.Component
	switch page.Shell {
	case ShellAdmin:
		layout = webtemplates.AdminLayout(chrome)
	default:
		header := page.Header
		if strings.TrimSpace(header.Title) == "" {
			header.Title = webtemplates.T(loc, "core.app_name")
		}
		layout = webtemplates.PublicLayout(chrome, header)
	}
	if err := layout.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer) *webtemplates.AppToast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(loc.Sprintf(notice.Key, notice.FormatArgs()...))
	if message == "" {
		message = strings.TrimSpace(notice.Key)
	}
	if message == "" {
		return nil
	}
	return &webtemplates.AppToast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}
