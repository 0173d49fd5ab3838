package venueapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/geofence"
)

type clusterJSON struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"created_at"`
}

func (c clusterJSON) toDomain() venue.Cluster {
	return venue.Cluster{ID: c.ID, Name: c.Name, Region: c.Region, CreatedAt: c.CreatedAt}
}

type createVenueJSON struct {
	ClusterID      *int64        `json:"cluster_id"`
	Name           string        `json:"name"`
	Address        string        `json:"address"`
	City           string        `json:"city,omitempty"`
	Description    string        `json:"description,omitempty"`
	GeofencingType int           `json:"geofencing_type"`
	Latitude       float64       `json:"latitude"`
	Longitude      float64       `json:"longitude"`
	RadiusMeters   float64       `json:"radius_meters,omitempty"`
	Polygon        []venue.Point `json:"polygon,omitempty"`
}

func newCreateVenueJSON(req venue.CreateRequest) createVenueJSON {
	return createVenueJSON{
		ClusterID:      req.ClusterID,
		Name:           req.Name,
		Address:        req.Address,
		City:           req.City,
		Description:    req.Description,
		GeofencingType: req.Geofence.TypeCode(),
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		RadiusMeters:   req.RadiusMeters,
		Polygon:        req.Polygon,
	}
}

type venueJSON struct {
	ID             venue.ID      `json:"id"`
	ClusterID      *int64        `json:"cluster_id"`
	Name           string        `json:"name"`
	Address        string        `json:"address"`
	City           string        `json:"city"`
	Description    string        `json:"description"`
	GeofencingType int           `json:"geofencing_type"`
	Latitude       float64       `json:"latitude"`
	Longitude      float64       `json:"longitude"`
	RadiusMeters   float64       `json:"radius_meters"`
	Polygon        []venue.Point `json:"polygon"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (v venueJSON) toDomain() venue.Venue {
	mode, err := geofence.ModeFromTypeCode(v.GeofencingType)
	if err != nil {
		mode = geofence.Radius
	}
	return venue.Venue{
		ID:           v.ID,
		ClusterID:    v.ClusterID,
		Name:         v.Name,
		Address:      v.Address,
		City:         v.City,
		Description:  v.Description,
		Geofence:     mode,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		RadiusMeters: v.RadiusMeters,
		Polygon:      v.Polygon,
		CreatedAt:    v.CreatedAt,
	}
}

type venuePageJSON struct {
	Venues        []venueJSON `json:"venues"`
	NextPageToken string      `json:"next_page_token"`
}

type zoneJSON struct {
	ID          flexString `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Capacity    int        `json:"capacity"`
	CreatedAt   time.Time  `json:"created_at"`
}

func newZoneJSON(zone venue.Zone) zoneJSON {
	return zoneJSON{Name: zone.Name, Slug: zone.Slug, Description: zone.Description, Capacity: zone.Capacity}
}

func (z zoneJSON) toDomain(venueID venue.ID) venue.Zone {
	return venue.Zone{
		ID:          string(z.ID),
		VenueID:     venueID,
		Name:        z.Name,
		Slug:        z.Slug,
		Description: z.Description,
		Capacity:    z.Capacity,
		CreatedAt:   z.CreatedAt,
	}
}

type facilityJSON struct {
	ID         flexString   `json:"id"`
	Name       string       `json:"name"`
	Slug       string       `json:"slug"`
	Kind       string       `json:"kind"`
	Capacity   int          `json:"capacity"`
	ZoneIDs    []flexString `json:"zone_ids"`
	AmenityIDs []flexString `json:"amenity_ids"`
	CreatedAt  time.Time    `json:"created_at"`
}

func newFacilityJSON(facility venue.Facility) facilityJSON {
	return facilityJSON{
		Name:       facility.Name,
		Slug:       facility.Slug,
		Kind:       string(facility.Kind),
		Capacity:   facility.Capacity,
		ZoneIDs:    toFlex(facility.ZoneIDs),
		AmenityIDs: toFlex(facility.AmenityIDs),
	}
}

func (f facilityJSON) toDomain(venueID venue.ID) venue.Facility {
	kind, err := venue.ParseFacilityKind(f.Kind)
	if err != nil {
		kind = venue.FacilityOther
	}
	return venue.Facility{
		ID:         string(f.ID),
		VenueID:    venueID,
		Name:       f.Name,
		Slug:       f.Slug,
		Kind:       kind,
		Capacity:   f.Capacity,
		ZoneIDs:    fromFlex(f.ZoneIDs),
		AmenityIDs: fromFlex(f.AmenityIDs),
		CreatedAt:  f.CreatedAt,
	}
}

type amenityJSON struct {
	ID        flexString `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
}

func (a amenityJSON) toDomain(venueID venue.ID) venue.Amenity {
	return venue.Amenity{ID: string(a.ID), VenueID: venueID, Name: a.Name, CreatedAt: a.CreatedAt}
}

// flexString accepts identifiers encoded as JSON strings or numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var id venue.ID
	if err := id.UnmarshalJSON(data); err != nil {
		return err
	}
	*f = flexString(id)
	return nil
}

func toFlex(ids []string) []flexString {
	out := make([]flexString, 0, len(ids))
	for _, id := range ids {
		out = append(out, flexString(id))
	}
	return out
}

func fromFlex(ids []flexString) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}

// DecodeCreated normalizes a venue creation response. Accepted shapes are
// {"venueId", "venueName"}, {"venue_id", "venue_name"} and {"id", "name"},
// optionally wrapped in {"data": ...}. Ids may be strings or integral
// numbers.
func DecodeCreated(body []byte) (venue.Created, error) {
	body = unwrapData(body)
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return venue.Created{}, platformerrors.Wrap(platformerrors.CodeVenueSubmissionFailed, "decode venue creation response", err)
	}

	rawID, ok := firstPresent(fields, "venueId", "venue_id", "id")
	if !ok {
		return venue.Created{}, platformerrors.New(platformerrors.CodeVenueSubmissionFailed, "venue creation response has no id")
	}
	id, err := venue.ParseID(rawID)
	if err != nil {
		return venue.Created{}, platformerrors.Wrap(platformerrors.CodeVenueSubmissionFailed, "venue creation response id", err)
	}
	created := venue.Created{ID: id}
	if rawName, ok := firstPresent(fields, "venueName", "venue_name", "name"); ok {
		if name, ok := rawName.(string); ok {
			created.Name = strings.TrimSpace(name)
		}
	}
	return created, nil
}

func firstPresent(fields map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := fields[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

// unwrapData strips a top-level {"data": ...} envelope whose payload is an
// object or array.
func unwrapData(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return trimmed
	}
	data, ok := envelope["data"]
	if !ok {
		return trimmed
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || (data[0] != '{' && data[0] != '[') {
		return trimmed
	}
	return data
}

// decodeListOrObject decodes either a bare JSON array into list or an object
// whose key holds the array. A non-nil whole also receives the object.
func decodeListOrObject(raw []byte, key string, list any, whole any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '[' {
		return json.Unmarshal(raw, list)
	}
	if whole != nil {
		return json.Unmarshal(raw, whole)
	}
	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil {
		return err
	}
	items, ok := object[key]
	if !ok {
		return fmt.Errorf("response has no %q field", key)
	}
	return json.Unmarshal(items, list)
}
