package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/venuedesk/internal/platform/id"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
)

// ListFacilities returns a venue's facilities with their zone and amenity links.
func (s *Store) ListFacilities(ctx context.Context, venueID venue.ID) ([]venue.Facility, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, `SELECT id, venue_id, name, slug, kind, capacity, created_at
		FROM facilities WHERE venue_id = ? ORDER BY created_at, id`, venueID.String())
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	var facilities []venue.Facility
	index := map[string]int{}
	for rows.Next() {
		var f venue.Facility
		var facilityVenueID, kind, createdAt string
		if err := rows.Scan(&f.ID, &facilityVenueID, &f.Name, &f.Slug, &kind, &f.Capacity, &createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan facility: %w", err)
		}
		f.VenueID = venue.ID(facilityVenueID)
		f.Kind = venue.FacilityKind(kind)
		f.CreatedAt = parseTime(createdAt)
		index[f.ID] = len(facilities)
		facilities = append(facilities, f)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	rows.Close()

	if err := s.attachLinks(ctx, venueID, "facility_zones", "zone_id", index, func(f *venue.Facility, linkID string) {
		f.ZoneIDs = append(f.ZoneIDs, linkID)
	}, facilities); err != nil {
		return nil, err
	}
	if err := s.attachLinks(ctx, venueID, "facility_amenities", "amenity_id", index, func(f *venue.Facility, linkID string) {
		f.AmenityIDs = append(f.AmenityIDs, linkID)
	}, facilities); err != nil {
		return nil, err
	}
	return facilities, nil
}

func (s *Store) attachLinks(
	ctx context.Context,
	venueID venue.ID,
	table string,
	column string,
	index map[string]int,
	attach func(*venue.Facility, string),
	facilities []venue.Facility,
) error {
	if len(facilities) == 0 {
		return nil
	}
	rows, err := s.query(ctx, `SELECT l.facility_id, l.`+column+` FROM `+table+` l
		JOIN facilities f ON f.id = l.facility_id
		WHERE f.venue_id = ? ORDER BY l.facility_id, l.`+column, venueID.String())
	if err != nil {
		return fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var facilityID, linkID string
		if err := rows.Scan(&facilityID, &linkID); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		if i, ok := index[facilityID]; ok {
			attach(&facilities[i], linkID)
		}
	}
	return rows.Err()
}

// CreateFacility inserts a facility and its links in one transaction.
func (s *Store) CreateFacility(ctx context.Context, facility venue.Facility) (venue.Facility, error) {
	if err := s.ready(ctx); err != nil {
		return venue.Facility{}, err
	}
	if facility.VenueID.IsZero() {
		return venue.Facility{}, fmt.Errorf("venue id is required")
	}
	if strings.TrimSpace(facility.Name) == "" {
		return venue.Facility{}, fmt.Errorf("facility name is required")
	}
	facilityID, err := id.NewID()
	if err != nil {
		return venue.Facility{}, fmt.Errorf("generate facility id: %w", err)
	}
	facility.ID = facilityID
	facility.CreatedAt = time.Now().UTC()

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return venue.Facility{}, fmt.Errorf("begin create facility: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.txExec(ctx, tx, `INSERT INTO facilities (id, venue_id, name, slug, kind, capacity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		facility.ID, facility.VenueID.String(), facility.Name, facility.Slug, string(facility.Kind), facility.Capacity,
		formatTime(facility.CreatedAt),
	); err != nil {
		return venue.Facility{}, fmt.Errorf("create facility: %w", s.translate(err))
	}
	for _, zoneID := range facility.ZoneIDs {
		if err := s.txExec(ctx, tx, `INSERT INTO facility_zones (facility_id, zone_id) VALUES (?, ?)`, facility.ID, zoneID); err != nil {
			return venue.Facility{}, fmt.Errorf("link facility zone: %w", s.translate(err))
		}
	}
	for _, amenityID := range facility.AmenityIDs {
		if err := s.txExec(ctx, tx, `INSERT INTO facility_amenities (facility_id, amenity_id) VALUES (?, ?)`, facility.ID, amenityID); err != nil {
			return venue.Facility{}, fmt.Errorf("link facility amenity: %w", s.translate(err))
		}
	}
	if err := tx.Commit(); err != nil {
		return venue.Facility{}, fmt.Errorf("commit facility: %w", err)
	}
	return facility, nil
}

// ListAmenities returns a venue's amenities ordered by name.
func (s *Store) ListAmenities(ctx context.Context, venueID venue.ID) ([]venue.Amenity, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, `SELECT id, venue_id, name, created_at FROM amenities
		WHERE venue_id = ? ORDER BY name, id`, venueID.String())
	if err != nil {
		return nil, fmt.Errorf("list amenities: %w", err)
	}
	defer rows.Close()

	var amenities []venue.Amenity
	for rows.Next() {
		var a venue.Amenity
		var amenityVenueID, createdAt string
		if err := rows.Scan(&a.ID, &amenityVenueID, &a.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan amenity: %w", err)
		}
		a.VenueID = venue.ID(amenityVenueID)
		a.CreatedAt = parseTime(createdAt)
		amenities = append(amenities, a)
	}
	return amenities, rows.Err()
}

// CreateAmenity inserts an amenity; names are unique per venue ignoring case.
func (s *Store) CreateAmenity(ctx context.Context, amenity venue.Amenity) (venue.Amenity, error) {
	if err := s.ready(ctx); err != nil {
		return venue.Amenity{}, err
	}
	if amenity.VenueID.IsZero() || strings.TrimSpace(amenity.Name) == "" {
		return venue.Amenity{}, fmt.Errorf("venue id and amenity name are required")
	}
	amenityID, err := id.NewID()
	if err != nil {
		return venue.Amenity{}, fmt.Errorf("generate amenity id: %w", err)
	}
	amenity.ID = amenityID
	amenity.CreatedAt = time.Now().UTC()
	_, err = s.exec(ctx, `INSERT INTO amenities (id, venue_id, name, name_key, created_at) VALUES (?, ?, ?, ?, ?)`,
		amenity.ID, amenity.VenueID.String(), amenity.Name, strings.ToLower(strings.TrimSpace(amenity.Name)),
		formatTime(amenity.CreatedAt),
	)
	if err != nil {
		return venue.Amenity{}, fmt.Errorf("create amenity: %w", s.translate(err))
	}
	return amenity, nil
}
