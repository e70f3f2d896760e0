// Package pagination slices a fully fetched collection into pages and computes
// the page links shown by the pagination control.
package pagination

import "slices"

// Delta is how many neighbours of the current page get a direct link.
const Delta = 2

// Page is one slice of a collection plus the totals needed to navigate it.
type Page[T any] struct {
	Data       []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// HasPrevious reports whether a previous page exists.
func (p Page[T]) HasPrevious() bool {
	return p.Page > 1
}

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// Paginate returns the requested page of items.
//
// A page below 1 is clamped to 1. A page past the end yields empty data with
// the totals intact. limit must be positive; callers apply their own default.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if limit <= 0 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	out := Page[T]{
		Data:       []T{},
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(total, limit),
	}
	start := (page - 1) * limit
	if start >= total {
		return out
	}
	end := min(start+limit, total)
	out.Data = slices.Clone(items[start:end])
	return out
}

// TotalPages returns ceil(total/limit).
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Link is one slot in the pagination control: a page number or an ellipsis.
type Link struct {
	Number   int
	Ellipsis bool
	Current  bool
}

// VisiblePages returns the links for the pagination control.
//
// Page 1 and the last page are always present; the pages within Delta of
// current fill the middle and gaps collapse to an ellipsis. Nothing is
// returned when there is at most one page.
func VisiblePages(current, total int) []Link {
	if total <= 1 {
		return nil
	}
	links := []Link{{Number: 1, Current: current == 1}}
	if current-Delta > 2 {
		links = append(links, Link{Ellipsis: true})
	}
	for i := max(2, current-Delta); i <= min(total-1, current+Delta); i++ {
		links = append(links, Link{Number: i, Current: i == current})
	}
	if current+Delta < total-1 {
		links = append(links, Link{Ellipsis: true})
	}
	links = append(links, Link{Number: total, Current: total == current})
	return links
}

// Range is the "Showing From to To of Total" window for a page.
type Range struct {
	From  int
	To    int
	Total int
}

// Window computes the item range covered by page.
func Window(page, limit, total int) Range {
	if total <= 0 || limit <= 0 {
		return Range{}
	}
	if page < 1 {
		page = 1
	}
	from := (page-1)*limit + 1
	if from > total {
		return Range{Total: total}
	}
	return Range{From: from, To: min(page*limit, total), Total: total}
}
