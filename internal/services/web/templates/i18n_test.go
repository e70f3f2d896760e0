package templates

import (
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	var nilPrinter *message.Printer
	tests := []struct {
		name string
		loc  Localizer
		key  message.Reference
		args []any
		want string
	}{
		{name: "nil localizer", key: "posts.list.title", want: "posts.list.title"},
		{name: "typed nil printer", loc: nilPrinter, key: "posts.list.title", want: "posts.list.title"},
		{name: "args without verbs", key: "admin.list.showing", args: []any{1, 9, 25}, want: "admin.list.showing"},
		{name: "args with verbs", key: "page %d", args: []any{2}, want: "page 2"},
		{name: "non-string key", key: 42, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := T(tc.loc, tc.key, tc.args...); got != tc.want {
				t.Fatalf("T() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTUsesLocalizer(t *testing.T) {
	t.Parallel()

	printer := message.NewPrinter(language.AmericanEnglish)
	if got := T(printer, "%d posts", 3); got != "3 posts" {
		t.Fatalf("T() = %q, want %q", got, "3 posts")
	}
}
