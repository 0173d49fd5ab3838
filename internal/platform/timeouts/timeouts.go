// Package timeouts defines shared timeout constants used across the console.
package timeouts

import "time"

// VenueAPIRequest caps the time allowed for a single call from the console to
// the venue directory collaborator.
const VenueAPIRequest = 5 * time.Second

// VenueAPIHealth caps a single health check of the venue directory API.
const VenueAPIHealth = 2 * time.Second

// AuthIntrospect caps one token introspection against the login service.
const AuthIntrospect = 5 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// EventBusReady caps how long the embedded event bus may take to accept
// connections.
const EventBusReady = 4 * time.Second

// EventBusFlush bounds a flush whose caller set no deadline.
const EventBusFlush = 2 * time.Second

// EventBusDrain caps how long pending session events may flush on close.
const EventBusDrain = 2 * time.Second
