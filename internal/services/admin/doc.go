// Package admin implements the venue admin console.
//
// Operators browse clusters and venues, manage console accounts and create
// venues through a three-step wizard whose runs live in a per-session
// registry. Pages are server-rendered and progressively enhanced with htmx.
package admin
