package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/venuedesk/internal/platform/id"
	"github.com/louisbranch/venuedesk/internal/platform/pagination"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/geofence"
)

// VenuePageSize bounds venue listings.
var VenuePageSize = pagination.PageSizeConfig{Default: 25, Max: 100}

const venueColumns = `id, cluster_id, name, address, city, description, geofencing_type,
	latitude, longitude, radius_meters, polygon, created_at`

// CreateVenue inserts a venue and returns its identity.
func (s *Store) CreateVenue(ctx context.Context, req venue.CreateRequest) (venue.Created, error) {
	if err := s.ready(ctx); err != nil {
		return venue.Created{}, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return venue.Created{}, fmt.Errorf("venue name is required")
	}
	venueID, err := id.NewID()
	if err != nil {
		return venue.Created{}, fmt.Errorf("generate venue id: %w", err)
	}
	polygon, err := encodePolygon(req.Polygon)
	if err != nil {
		return venue.Created{}, err
	}
	_, err = s.exec(ctx, `INSERT INTO venues (`+venueColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		venueID,
		nullInt64(req.ClusterID),
		name,
		strings.TrimSpace(req.Address),
		strings.TrimSpace(req.City),
		strings.TrimSpace(req.Description),
		req.Geofence.TypeCode(),
		req.Latitude,
		req.Longitude,
		req.RadiusMeters,
		polygon,
		formatTime(time.Now()),
	)
	if err != nil {
		return venue.Created{}, fmt.Errorf("create venue: %w", s.translate(err))
	}
	return venue.Created{ID: venue.ID(venueID), Name: name}, nil
}

// GetVenue returns one venue.
func (s *Store) GetVenue(ctx context.Context, venueID venue.ID) (venue.Venue, error) {
	if err := s.ready(ctx); err != nil {
		return venue.Venue{}, err
	}
	row := s.queryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = ?`, venueID.String())
	v, err := scanVenue(row)
	if err != nil {
		return venue.Venue{}, fmt.Errorf("get venue %s: %w", venueID, s.translate(err))
	}
	return v, nil
}

// ListVenues returns venues newest first, optionally within one cluster.
func (s *Store) ListVenues(ctx context.Context, filter venue.ListFilter) (venue.Page, error) {
	if err := s.ready(ctx); err != nil {
		return venue.Page{}, err
	}
	pageSize := pagination.ClampPageSize(filter.PageSize, VenuePageSize)
	offset, err := pagination.DecodeOffset(filter.PageToken)
	if err != nil {
		return venue.Page{}, err
	}

	query := `SELECT ` + venueColumns + ` FROM venues`
	var args []any
	if filter.ClusterID != nil {
		query += ` WHERE cluster_id = ?`
		args = append(args, *filter.ClusterID)
	}
	query += ` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`
	args = append(args, pageSize+1, offset)

	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return venue.Page{}, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var page venue.Page
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return venue.Page{}, fmt.Errorf("scan venue: %w", err)
		}
		page.Venues = append(page.Venues, v)
	}
	if err := rows.Err(); err != nil {
		return venue.Page{}, fmt.Errorf("list venues: %w", err)
	}
	if len(page.Venues) > pageSize {
		page.Venues = page.Venues[:pageSize]
		page.NextPageToken = pagination.EncodeOffset(offset + pageSize)
	}
	return page, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner) (venue.Venue, error) {
	var (
		v         venue.Venue
		venueID   string
		clusterID sql.NullInt64
		typeCode  int
		polygon   string
		createdAt string
	)
	if err := row.Scan(
		&venueID, &clusterID, &v.Name, &v.Address, &v.City, &v.Description, &typeCode,
		&v.Latitude, &v.Longitude, &v.RadiusMeters, &polygon, &createdAt,
	); err != nil {
		return venue.Venue{}, err
	}
	mode, err := geofence.ModeFromTypeCode(typeCode)
	if err != nil {
		return venue.Venue{}, err
	}
	points, err := decodePolygon(polygon)
	if err != nil {
		return venue.Venue{}, err
	}
	v.ID = venue.ID(venueID)
	v.ClusterID = int64Ptr(clusterID)
	v.Geofence = mode
	v.Polygon = points
	v.CreatedAt = parseTime(createdAt)
	return v, nil
}

func encodePolygon(points []venue.Point) (string, error) {
	if len(points) == 0 {
		return "", nil
	}
	data, err := json.Marshal(points)
	if err != nil {
		return "", fmt.Errorf("encode polygon: %w", err)
	}
	return string(data), nil
}

func decodePolygon(value string) ([]venue.Point, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	var points []venue.Point
	if err := json.Unmarshal([]byte(value), &points); err != nil {
		return nil, fmt.Errorf("decode polygon: %w", err)
	}
	return points, nil
}
