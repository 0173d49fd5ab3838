// Package migrations embeds the PostgreSQL schema for the console store.
package migrations

import "embed"

// FS holds the ordered PostgreSQL migration files.
//
//go:embed *.sql
var FS embed.FS
