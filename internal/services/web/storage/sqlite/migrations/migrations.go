// Package migrations embeds the web cache schema.
package migrations

import "embed"

// FS holds the ordered cache migrations.
//
//go:embed *.sql
var FS embed.FS
