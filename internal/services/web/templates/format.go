package templates

import (
	"github.com/dustin/go-humanize"
)

// TotalLabel renders the "(N total)" counter shown next to listing titles.
func TotalLabel(loc Localizer, total int) string {
	return T(loc, "core.count.total", humanize.Comma(int64(total)))
}
