// Package geofence tracks how a venue's boundary is captured: a radius around
// a center point or a polygon of points.
package geofence

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the geometry captured by the venue form.
type Mode int

const (
	// Radius captures a center point plus a radius in meters.
	Radius Mode = iota
	// Polygon captures an ordered ring of points.
	Polygon
)

// Type codes shared with the venue directory.
const (
	TypeCodeRadius  = 1
	TypeCodePolygon = 2
)

// String returns the form value for the mode.
func (m Mode) String() string {
	switch m {
	case Polygon:
		return "polygon"
	default:
		return "radius"
	}
}

// TypeCode returns the directory geofencing type for the mode.
func (m Mode) TypeCode() int {
	if m == Polygon {
		return TypeCodePolygon
	}
	return TypeCodeRadius
}

// ModeFromTypeCode maps a directory geofencing type back to a mode.
func ModeFromTypeCode(code int) (Mode, error) {
	switch code {
	case TypeCodeRadius:
		return Radius, nil
	case TypeCodePolygon:
		return Polygon, nil
	default:
		return Radius, fmt.Errorf("unknown geofencing type %d", code)
	}
}

// ParseMode accepts "radius", "polygon" or their type codes.
func ParseMode(raw string) (Mode, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "radius":
		return Radius, nil
	case "polygon":
		return Polygon, nil
	}
	if code, err := strconv.Atoi(value); err == nil {
		return ModeFromTypeCode(code)
	}
	return Radius, fmt.Errorf("unknown geofence mode %q", raw)
}

// Selector holds the current mode. The zero value selects Radius.
type Selector struct {
	mode Mode
}

// Mode returns the selected mode.
func (s *Selector) Mode() Mode {
	return s.mode
}

// Set changes the selected mode.
func (s *Selector) Set(mode Mode) {
	s.mode = mode
}

// Reset returns the selector to Radius.
func (s *Selector) Reset() {
	s.mode = Radius
}
