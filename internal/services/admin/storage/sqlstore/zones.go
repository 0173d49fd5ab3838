package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/venuedesk/internal/platform/id"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
)

// ListZones returns a venue's zones in creation order.
func (s *Store) ListZones(ctx context.Context, venueID venue.ID) ([]venue.Zone, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, `SELECT id, venue_id, name, slug, description, capacity, created_at
		FROM zones WHERE venue_id = ? ORDER BY created_at, id`, venueID.String())
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()

	var zones []venue.Zone
	for rows.Next() {
		var z venue.Zone
		var zoneVenueID, createdAt string
		if err := rows.Scan(&z.ID, &zoneVenueID, &z.Name, &z.Slug, &z.Description, &z.Capacity, &createdAt); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		z.VenueID = venue.ID(zoneVenueID)
		z.CreatedAt = parseTime(createdAt)
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

// CreateZone inserts a zone; the slug must be unique within the venue.
func (s *Store) CreateZone(ctx context.Context, zone venue.Zone) (venue.Zone, error) {
	if err := s.ready(ctx); err != nil {
		return venue.Zone{}, err
	}
	if zone.VenueID.IsZero() {
		return venue.Zone{}, fmt.Errorf("venue id is required")
	}
	if strings.TrimSpace(zone.Name) == "" || strings.TrimSpace(zone.Slug) == "" {
		return venue.Zone{}, fmt.Errorf("zone name and slug are required")
	}
	zoneID, err := id.NewID()
	if err != nil {
		return venue.Zone{}, fmt.Errorf("generate zone id: %w", err)
	}
	zone.ID = zoneID
	zone.CreatedAt = time.Now().UTC()
	_, err = s.exec(ctx, `INSERT INTO zones (id, venue_id, name, slug, description, capacity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		zone.ID, zone.VenueID.String(), zone.Name, zone.Slug, zone.Description, zone.Capacity, formatTime(zone.CreatedAt),
	)
	if err != nil {
		return venue.Zone{}, fmt.Errorf("create zone: %w", s.translate(err))
	}
	return zone, nil
}

// DeleteZone removes a zone and its facility links.
func (s *Store) DeleteZone(ctx context.Context, venueID venue.ID, zoneID string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete zone: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.txExec(ctx, tx, `DELETE FROM facility_zones WHERE zone_id = ?`, zoneID); err != nil {
		return fmt.Errorf("unlink zone: %w", err)
	}
	result, err := tx.ExecContext(ctx, s.dialect.Rebind(`DELETE FROM zones WHERE venue_id = ? AND id = ?`), venueID.String(), zoneID)
	if err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete zone %s: %w", zoneID, storage.ErrNotFound)
	}
	return tx.Commit()
}
