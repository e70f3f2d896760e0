package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/postboard/internal/services/web/platform/i18n"
	"github.com/louisbranch/postboard/internal/services/web/routepath"
)

// htmxScriptURL pins the HTMX build loaded by every page.
const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// AppToast is a one-time notice shown at the top of a page.
type AppToast struct {
	Kind    string
	Message string
}

// Chrome carries the document-level data shared by every layout.
type Chrome struct {
	Title    string
	Lang     string
	Loc      Localizer
	Path     string
	RawQuery string
	Toast    *AppToast
}

// PublicHeader configures the public site header.
type PublicHeader struct {
	Title       string
	Total       int
	ShowTotal   bool
	BackURL     string
	SearchQuery string
}

// PublicLayout wraps children in the public site shell: title with total
// count, live search and the admin link.
func PublicLayout(chrome Chrome, header PublicHeader) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		loc := chrome.Loc
		documentStart(m, chrome, "public")
		m.raw(`<header class="site-header"><div class="container header-row"><div class="header-title">`)
		if header.BackURL != "" {
			m.raw(`<a class="button ghost small"`)
			m.href(header.BackURL)
			m.raw(`><span aria-hidden="true">←</span> `)
			m.text(T(loc, "core.nav.back"))
			m.raw(`</a>`)
		}
		m.raw(`<h1><a`)
		m.href(routepath.Root)
		m.raw(`>`)
		m.text(header.Title)
		m.raw(`</a></h1>`)
		if header.ShowTotal {
			m.raw(`<span class="muted total">`)
			m.text(TotalLabel(loc, header.Total))
			m.raw(`</span>`)
		}
		m.raw(`</div><div class="header-search">`)
		m.render(ctx, SearchBox(header.SearchQuery, loc))
		m.raw(`</div><nav class="header-nav"><a class="button outline small"`)
		m.href(routepath.Admin)
		m.raw(`>`)
		m.text(T(loc, "core.nav.admin"))
		m.raw(`</a></nav></div></header>`)
		toast(m, chrome)
		m.raw(`<main id="main" class="container">`)
		children(ctx, m)
		m.raw(`</main>`)
		documentEnd(m, chrome)
	})
}

// AdminLayout wraps children in the admin shell with its navigation and the
// delete confirmation dialog.
func AdminLayout(chrome Chrome) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		loc := chrome.Loc
		documentStart(m, chrome, "admin")
		m.raw(`<header class="site-header"><div class="container header-row"><div class="header-title"><h1><a`)
		m.href(routepath.Admin)
		m.raw(`>`)
		m.text(T(loc, "admin.title"))
		m.raw(`</a></h1></div><nav class="header-nav"><a class="button outline small"`)
		m.href(routepath.Root)
		m.raw(`>`)
		m.text(T(loc, "core.nav.public_site"))
		m.raw(`</a></nav></div><nav class="container admin-nav">`)
		adminNavLink(m, routepath.Admin, T(loc, "admin.nav.posts"), chrome.Path == routepath.Admin)
		adminNavLink(m, routepath.AdminPostNew, T(loc, "admin.nav.new_post"), chrome.Path == routepath.AdminPostNew)
		m.raw(`</nav></header>`)
		toast(m, chrome)
		m.raw(`<main id="main" class="container">`)
		children(ctx, m)
		m.raw(`</main>`)
		confirmDialog(m, loc)
		documentEnd(m, chrome)
	})
}

func adminNavLink(m *markup, url string, label string, active bool) {
	m.raw(`<a class="admin-nav-link`)
	if active {
		m.raw(` active" aria-current="page`)
	}
	m.raw(`"`)
	m.href(url)
	m.raw(`>`)
	m.text(label)
	m.raw(`</a>`)
}

func documentStart(m *markup, chrome Chrome, bodyClass string) {
	loc := chrome.Loc
	lang := chrome.Lang
	if lang == "" {
		lang = "en-US"
	}
	title := T(loc, "core.app_name")
	if chrome.Title != "" {
		title = chrome.Title + " · " + title
	}
	m.raw(`<!DOCTYPE html><html`)
	m.attr("lang", lang)
	m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	m.raw(`<title>`)
	m.text(title)
	m.raw(`</title><meta name="description"`)
	m.attr("content", T(loc, "core.meta_description"))
	m.raw(`><link rel="stylesheet" href="`, routepath.StaticPrefix, `app.css">`)
	m.raw(`<script src="`, htmxScriptURL, `" defer></script>`)
	m.raw(`<script src="`, routepath.StaticPrefix, `app.js" defer></script></head>`)
	m.raw(`<body`)
	m.attr("class", bodyClass)
	m.raw(`>`)
}

func documentEnd(m *markup, chrome Chrome) {
	m.raw(`<footer class="site-footer container"><nav class="language-switch"`)
	m.attr("aria-label", T(chrome.Loc, "core.nav.language"))
	m.raw(`>`)
	for _, option := range webi18n.LanguageOptions(chrome.Loc, chrome.Lang, chrome.Path, chrome.RawQuery) {
		m.raw(`<a`)
		m.href(option.URL)
		m.attr("hreflang", option.Tag)
		if option.Active {
			m.raw(` class="active" aria-current="true"`)
		}
		m.raw(`>`)
		m.text(option.Label)
		m.raw(`</a>`)
	}
	m.raw(`</nav></footer></body></html>`)
}

func toast(m *markup, chrome Chrome) {
	if chrome.Toast == nil || chrome.Toast.Message == "" {
		return
	}
	kind := chrome.Toast.Kind
	if kind == "" {
		kind = "info"
	}
	m.raw(`<div class="container"><div id="app-toast" class="toast toast-`, templ.EscapeString(kind), `" role="status" data-toast><span>`)
	m.text(chrome.Toast.Message)
	m.raw(`</span><button type="button" class="toast-close" data-toast-close`)
	m.attr("aria-label", T(chrome.Loc, "core.toast.dismiss"))
	m.raw(`>×</button></div></div>`)
}

// confirmDialog is opened by app.js for hx-confirm prompts.
func confirmDialog(m *markup, loc Localizer) {
	m.raw(`<dialog id="confirm-dialog" class="dialog"><form method="dialog"><h2>`)
	m.text(T(loc, "admin.delete.title"))
	m.raw(`</h2><p data-confirm-message></p><div class="dialog-actions">`)
	m.raw(`<button type="submit" value="cancel" class="button outline">`)
	m.text(T(loc, "admin.delete.cancel"))
	m.raw(`</button><button type="submit" value="confirm" class="button danger">`)
	m.text(T(loc, "admin.card.delete"))
	m.raw(`</button></div></form></dialog>`)
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
