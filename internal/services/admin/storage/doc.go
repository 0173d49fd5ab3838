// Package storage defines persistence contracts for the venue directory and
// operator accounts.
//
// Console handlers and wizard steps depend on these interfaces so the same
// code runs against the local SQL store or the remote venue API.
package storage
