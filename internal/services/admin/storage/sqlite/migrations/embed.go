// Package migrations embeds the SQLite schema for the console store.
package migrations

import "embed"

// FS holds the ordered SQLite migration files.
//
//go:embed *.sql
var FS embed.FS
