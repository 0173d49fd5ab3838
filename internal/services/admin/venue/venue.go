package venue

import (
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/geofence"
)

// Cluster groups venues.
type Cluster struct {
	ID        int64
	Name      string
	Region    string
	CreatedAt time.Time
}

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Venue is a physical location with a geofence.
type Venue struct {
	ID           ID
	ClusterID    *int64
	Name         string
	Address      string
	City         string
	Description  string
	Geofence     geofence.Mode
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Polygon      []Point
	CreatedAt    time.Time
}

// Ref returns the wizard reference for the venue.
func (v Venue) Ref() Ref {
	return Ref{ID: v.ID, Name: v.Name}
}

// CreateRequest carries the attributes submitted by the venue step.
type CreateRequest struct {
	ClusterID    *int64
	Name         string
	Address      string
	City         string
	Description  string
	Geofence     geofence.Mode
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Polygon      []Point
}

// Created is the normalized acknowledgement of a venue creation.
type Created struct {
	ID   ID
	Name string
}

// Zone is a sub-area within a venue.
type Zone struct {
	ID          string
	VenueID     ID
	Name        string
	Slug        string
	Description string
	Capacity    int
	CreatedAt   time.Time
}

// Amenity is a named feature offered by a venue.
type Amenity struct {
	ID        string
	VenueID   ID
	Name      string
	CreatedAt time.Time
}

// FacilityKind classifies a facility.
type FacilityKind string

const (
	FacilityCourt FacilityKind = "court"
	FacilityField FacilityKind = "field"
	FacilityPool  FacilityKind = "pool"
	FacilityRoom  FacilityKind = "room"
	FacilityStage FacilityKind = "stage"
	FacilityOther FacilityKind = "other"
)

// FacilityKinds lists the accepted kinds in display order.
func FacilityKinds() []FacilityKind {
	return []FacilityKind{FacilityCourt, FacilityField, FacilityPool, FacilityRoom, FacilityStage, FacilityOther}
}

// ParseFacilityKind validates a submitted kind.
func ParseFacilityKind(raw string) (FacilityKind, error) {
	value := FacilityKind(strings.ToLower(strings.TrimSpace(raw)))
	for _, kind := range FacilityKinds() {
		if kind == value {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown facility kind %q", raw)
}

// Facility is a bookable asset within a venue.
type Facility struct {
	ID         string
	VenueID    ID
	Name       string
	Slug       string
	Kind       FacilityKind
	Capacity   int
	ZoneIDs    []string
	AmenityIDs []string
	CreatedAt  time.Time
}

// ListFilter narrows venue listings.
type ListFilter struct {
	ClusterID *int64
	PageSize  int
	PageToken string
}

// Page is one page of venues.
type Page struct {
	Venues        []Venue
	NextPageToken string
}

// Counts aggregates directory totals for the dashboard.
type Counts struct {
	Clusters   int64 `json:"clusters"`
	Venues     int64 `json:"venues"`
	Zones      int64 `json:"zones"`
	Facilities int64 `json:"facilities"`
	Admins     int64 `json:"admins"`
}
