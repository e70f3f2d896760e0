package config

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Exitf reports a fatal startup error on stderr under the process log prefix
// and exits with code 1.
func Exitf(format string, args ...any) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(os.Stderr, log.Prefix()+message)
	os.Exit(1)
}
