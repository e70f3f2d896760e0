package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup writes HTML fragments and remembers the first write error.
type markup struct {
	w   io.Writer
	err error
}

func newMarkup(w io.Writer) *markup {
	return &markup{w: w}
}

// raw writes trusted markup.
func (m *markup) raw(parts ...string) {
	for _, part := range parts {
		if m.err != nil {
			return
		}
		_, m.err = io.WriteString(m.w, part)
	}
}

// text writes escaped text.
func (m *markup) text(value string) {
	m.raw(templ.EscapeString(value))
}

// attr writes name="value" with the value escaped.
func (m *markup) attr(name string, value string) {
	m.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// href writes an href attribute, dropping unsafe URL schemes.
func (m *markup) href(value string) {
	m.attr("href", string(templ.URL(value)))
}

func (m *markup) render(ctx context.Context, component templ.Component) {
	if m.err != nil || component == nil {
		return
	}
	m.err = component.Render(ctx, m.w)
}

// component adapts a markup writer function to templ.Component.
func component(fn func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		fn(ctx, m)
		return m.err
	})
}

// children renders the children passed with templ.WithChildren.
func children(ctx context.Context, m *markup) {
	m.render(templ.ClearChildren(ctx), templ.GetChildren(ctx))
}
