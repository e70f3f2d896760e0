// Package search filters posts by a free-text query and marks the matches.
package search

import (
	"html"
	"regexp"
	"strings"

	"github.com/louisbranch/postboard/internal/posts"
	"github.com/louisbranch/postboard/internal/posts/body"
)

// DropdownLimit caps the results shown by the header search dropdown.
const DropdownLimit = 8

// Match reports whether post matches query by title or tag-free body,
// ignoring case. A blank query matches everything.
func Match(post posts.Post, query string) bool {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(post.Title), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(body.StripHTML(post.Body)), needle)
}

// Filter returns every post matching query, in input order.
func Filter(items []posts.Post, query string) []posts.Post {
	if strings.TrimSpace(query) == "" {
		return items
	}
	out := make([]posts.Post, 0, len(items))
	for _, item := range items {
		if Match(item, query) {
			out = append(out, item)
		}
	}
	return out
}

// Search returns the first limit posts matching query. A blank query returns
// nothing; limit <= 0 means no cap.
func Search(items []posts.Post, query string, limit int) []posts.Post {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	out := make([]posts.Post, 0, min(len(items), max(limit, 0)))
	for _, item := range items {
		if !Match(item, query) {
			continue
		}
		out = append(out, item)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Highlight HTML-escapes text and wraps each case-insensitive occurrence of
// query in a <mark> element. The query is matched literally.
func Highlight(text, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return html.EscapeString(text)
	}
	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return html.EscapeString(text)
	}
	matches := pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return html.EscapeString(text)
	}
	var b strings.Builder
	last := 0
	for _, loc := range matches {
		b.WriteString(html.EscapeString(text[last:loc[0]]))
		b.WriteString("<mark>")
		b.WriteString(html.EscapeString(text[loc[0]:loc[1]]))
		b.WriteString("</mark>")
		last = loc[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return b.String()
}
