package templates

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"
)

// Localizer translates catalog keys for the post pages.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key. Without a localizer the key itself is returned, formatted
// with args only when it carries verbs, so tests and fallbacks stay readable.
func T(loc Localizer, key message.Reference, args ...any) string {
	if printer, ok := loc.(*message.Printer); loc != nil && (!ok || printer != nil) {
		return loc.Sprintf(key, args...)
	}
	keyString, ok := key.(string)
	if !ok {
		return ""
	}
	if len(args) == 0 || !strings.Contains(keyString, "%") {
		return keyString
	}
	return fmt.Sprintf(keyString, args...)
}
