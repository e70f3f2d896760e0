// Package body converts post bodies between the editor formats and the HTML
// shown on post pages, and derives plain-text excerpts from stored bodies.
package body

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	nethtml "golang.org/x/net/html"
)

// Format names an editor input format.
type Format string

const (
	FormatPlain    Format = "plain"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the editor formats in display order.
func Formats() []Format {
	return []Format{FormatPlain, FormatMarkdown, FormatHTML}
}

// ParseFormat resolves a submitted format value, defaulting to plain text.
func ParseFormat(raw string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatMarkdown:
		return FormatMarkdown
	case FormatHTML:
		return FormatHTML
	default:
		return FormatPlain
	}
}

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy

	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

	paragraphBreak = regexp.MustCompile(`\n[ \t]*\n`)
	looksLikeHTML  = regexp.MustCompile(`<\s*/?\s*[a-zA-Z][^>]*>`)
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

// Render converts editor input into sanitized HTML ready to be stored.
func Render(format Format, input string) (string, error) {
	input = strings.ReplaceAll(strings.TrimSpace(input), "\r\n", "\n")
	if input == "" {
		return "", nil
	}
	switch format {
	case FormatMarkdown:
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(input), &buf); err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		return Sanitize(buf.String()), nil
	case FormatHTML:
		return Sanitize(input), nil
	default:
		return plainToHTML(input), nil
	}
}

// Sanitize strips markup that is unsafe to render from user content.
func Sanitize(raw string) string {
	return strings.TrimSpace(sanitizer().Sanitize(raw))
}

// Display returns the HTML used to show a stored body.
// Bodies without markup are treated as plain text so their line breaks survive.
func Display(stored string) string {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return ""
	}
	if looksLikeHTML.MatchString(stored) {
		return Sanitize(stored)
	}
	return plainToHTML(strings.ReplaceAll(stored, "\r\n", "\n"))
}

// HasMarkup reports whether a stored body carries HTML tags.
func HasMarkup(stored string) bool {
	return looksLikeHTML.MatchString(stored)
}

// EditorValue returns the text the editor should start with for a stored body
// in the given format.
func EditorValue(format Format, stored string) string {
	if format == FormatHTML {
		return stored
	}
	if !looksLikeHTML.MatchString(stored) {
		return stored
	}
	return StripHTML(stored)
}

func plainToHTML(input string) string {
	paragraphs := paragraphBreak.Split(input, -1)
	var b strings.Builder
	for _, paragraph := range paragraphs {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		lines := strings.Split(paragraph, "\n")
		for i := range lines {
			lines[i] = html.EscapeString(strings.TrimSpace(lines[i]))
		}
		b.WriteString("<p>")
		b.WriteString(strings.Join(lines, "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}

// StripHTML returns the text content of raw with all tags removed.
// Entities are decoded. Script and style contents are dropped.
func StripHTML(raw string) string {
	if !strings.ContainsAny(raw, "<&") {
		return raw
	}
	tokenizer := nethtml.NewTokenizer(strings.NewReader(raw))
	var b strings.Builder
	skip := 0
	for {
		switch tokenizer.Next() {
		case nethtml.ErrorToken:
			return b.String()
		case nethtml.TextToken:
			if skip == 0 {
				b.Write(tokenizer.Text())
			}
		case nethtml.StartTagToken:
			if isRawTextTag(tokenizer) {
				skip++
			}
		case nethtml.EndTagToken:
			if isRawTextTag(tokenizer) && skip > 0 {
				skip--
			}
		}
	}
}

func isRawTextTag(tokenizer *nethtml.Tokenizer) bool {
	name, _ := tokenizer.TagName()
	switch string(name) {
	case "script", "style":
		return true
	default:
		return false
	}
}

// Truncate returns the tag-free text of raw cut to maxRunes, with "..."
// appended when anything was cut.
func Truncate(raw string, maxRunes int) string {
	text := StripHTML(raw)
	if maxRunes <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + "..."
}
