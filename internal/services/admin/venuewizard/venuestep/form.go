package venuestep

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/geofence"
)

const (
	// MaxNameLength caps venue names, counted in runes.
	MaxNameLength = 120
	// MaxRadiusMeters caps radius geofences.
	MaxRadiusMeters = 50000
	// MinPolygonPoints is the smallest closed polygon.
	MinPolygonPoints = 3
)

// Form field names shared with the rendered venue form.
const (
	FieldName        = "name"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldDescription = "description"
	FieldLatitude    = "latitude"
	FieldLongitude   = "longitude"
	FieldRadius      = "radius_meters"
	FieldPolygon     = "polygon"
	FieldCluster     = "cluster_id"
)

// Form holds raw venue form values so a rejected submission can be re-rendered
// exactly as typed.
type Form struct {
	Name        string
	Address     string
	City        string
	Description string
	Latitude    string
	Longitude   string
	Radius      string
	Polygon     string
	ClusterID   string
}

// ParseForm reads venue form values.
func ParseForm(values url.Values) Form {
	return Form{
		Name:        strings.TrimSpace(values.Get(FieldName)),
		Address:     strings.TrimSpace(values.Get(FieldAddress)),
		City:        strings.TrimSpace(values.Get(FieldCity)),
		Description: strings.TrimSpace(values.Get(FieldDescription)),
		Latitude:    strings.TrimSpace(values.Get(FieldLatitude)),
		Longitude:   strings.TrimSpace(values.Get(FieldLongitude)),
		Radius:      strings.TrimSpace(values.Get(FieldRadius)),
		Polygon:     strings.TrimSpace(values.Get(FieldPolygon)),
		ClusterID:   strings.TrimSpace(values.Get(FieldCluster)),
	}
}

const keyNameRequired = "venue.form.error.name_required"

// invalidCode picks the error code for a rejected form; a missing name has
// its own code.
func invalidCode(fields venue.FieldErrors) platformerrors.Code {
	if fields.Get(FieldName) == keyNameRequired {
		return platformerrors.CodeVenueNameEmpty
	}
	return platformerrors.CodeVenueInvalid
}

// BuildRequest validates form for mode and builds the creation payload.
//
// A non-nil presetClusterID always wins over the submitted cluster value.
// No request is usable unless the returned FieldErrors is empty.
func BuildRequest(form Form, mode geofence.Mode, presetClusterID *int64) (venue.CreateRequest, venue.FieldErrors) {
	errs := venue.FieldErrors{}
	req := venue.CreateRequest{
		Name:        strings.TrimSpace(form.Name),
		Address:     strings.TrimSpace(form.Address),
		City:        strings.TrimSpace(form.City),
		Description: strings.TrimSpace(form.Description),
		Geofence:    mode,
	}

	switch {
	case req.Name == "":
		errs.Add(FieldName, keyNameRequired)
	case utf8.RuneCountInString(req.Name) > MaxNameLength:
		errs.Add(FieldName, "venue.form.error.name_too_long")
	}
	if req.Address == "" {
		errs.Add(FieldAddress, "venue.form.error.address_required")
	}

	if mode == geofence.Polygon {
		points, ok := ParsePolygon(form.Polygon)
		if !ok {
			errs.Add(FieldPolygon, "venue.form.error.polygon_invalid")
		} else if len(points) < MinPolygonPoints {
			errs.Add(FieldPolygon, "venue.form.error.polygon_too_small")
		} else {
			req.Polygon = points
		}
		// The anchor point is optional for polygons and defaults to the centroid.
		if form.Latitude == "" && form.Longitude == "" {
			if len(req.Polygon) > 0 {
				req.Latitude, req.Longitude = centroid(req.Polygon)
			}
		} else {
			req.Latitude, req.Longitude = parseCoordinates(form, errs)
		}
	} else {
		req.Latitude, req.Longitude = parseCoordinates(form, errs)
		radius, err := strconv.ParseFloat(form.Radius, 64)
		if err != nil || math.IsNaN(radius) || radius <= 0 || radius > MaxRadiusMeters {
			errs.Add(FieldRadius, "venue.form.error.radius_invalid")
		} else {
			req.RadiusMeters = radius
		}
	}

	if presetClusterID != nil {
		clusterID := *presetClusterID
		req.ClusterID = &clusterID
	} else if form.ClusterID != "" {
		clusterID, err := strconv.ParseInt(form.ClusterID, 10, 64)
		if err != nil || clusterID <= 0 {
			errs.Add(FieldCluster, "venue.form.error.cluster_invalid")
		} else {
			req.ClusterID = &clusterID
		}
	}

	return req, errs
}

func parseCoordinates(form Form, errs venue.FieldErrors) (float64, float64) {
	lat, err := strconv.ParseFloat(form.Latitude, 64)
	if err != nil || math.IsNaN(lat) || lat < -90 || lat > 90 {
		errs.Add(FieldLatitude, "venue.form.error.latitude_invalid")
		lat = 0
	}
	lng, err := strconv.ParseFloat(form.Longitude, 64)
	if err != nil || math.IsNaN(lng) || lng < -180 || lng > 180 {
		errs.Add(FieldLongitude, "venue.form.error.longitude_invalid")
		lng = 0
	}
	return lat, lng
}

// ParsePolygon reads "lat,lng" pairs separated by semicolons or newlines.
// Blank entries are skipped; any malformed or out-of-range pair fails the
// whole polygon.
func ParsePolygon(raw string) ([]venue.Point, bool) {
	entries := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ';' || r == '\n' || r == '\r'
	})
	points := make([]venue.Point, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		latRaw, lngRaw, found := strings.Cut(entry, ",")
		if !found {
			return nil, false
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
		if err != nil || math.IsNaN(lat) || lat < -90 || lat > 90 {
			return nil, false
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
		if err != nil || math.IsNaN(lng) || lng < -180 || lng > 180 {
			return nil, false
		}
		points = append(points, venue.Point{Lat: lat, Lng: lng})
	}
	return points, true
}

func centroid(points []venue.Point) (float64, float64) {
	var lat, lng float64
	for _, point := range points {
		lat += point.Lat
		lng += point.Lng
	}
	n := float64(len(points))
	return lat / n, lng / n
}
