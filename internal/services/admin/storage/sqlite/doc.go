// Package sqlite provides the default SQLite-backed console store.
//
// It holds the venue directory, operator accounts and console sessions in a
// single local database file.
package sqlite
