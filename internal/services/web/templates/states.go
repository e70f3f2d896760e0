package templates

import (
	"context"

	"github.com/a-h/templ"
)

// Tone selects the icon and colour of a status block.
type Tone string

const (
	ToneError Tone = "error"
	ToneEmpty Tone = "empty"
)

// StateView describes a centered status block such as an empty listing or a
// failed load.
type StateView struct {
	Tone        Tone
	Title       string
	Message     string
	ActionLabel string
	ActionURL   string
}

// StatusState renders a centered status block with an optional action link.
func StatusState(view StateView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		tone := view.Tone
		if tone == "" {
			tone = ToneEmpty
		}
		m.raw(`<div class="state state-`, string(tone), `" role="status">`)
		if tone == ToneError {
			m.raw(`<span class="state-icon" aria-hidden="true">!</span>`)
		}
		m.raw(`<h2 class="state-title">`)
		m.text(view.Title)
		m.raw(`</h2>`)
		if view.Message != "" {
			m.raw(`<p class="state-message">`)
			m.text(view.Message)
			m.raw(`</p>`)
		}
		if view.ActionLabel != "" && view.ActionURL != "" {
			m.raw(`<a class="button"`)
			m.href(view.ActionURL)
			m.raw(`>`)
			m.text(view.ActionLabel)
			m.raw(`</a>`)
		}
		m.raw(`</div>`)
	})
}

// Stack renders components one after another.
func Stack(components ...templ.Component) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		for _, c := range components {
			m.render(ctx, c)
		}
	})
}
