package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
)

// ListClusters returns clusters ordered by name.
func (s *Store) ListClusters(ctx context.Context) ([]venue.Cluster, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, `SELECT id, name, region, created_at FROM clusters ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list clusters: %w", err)
	}
	defer rows.Close()

	var clusters []venue.Cluster
	for rows.Next() {
		var c venue.Cluster
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Region, &createdAt); err != nil {
			return nil, fmt.Errorf("scan cluster: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		clusters = append(clusters, c)
	}
	return clusters, rows.Err()
}

// GetCluster returns one cluster.
func (s *Store) GetCluster(ctx context.Context, clusterID int64) (venue.Cluster, error) {
	if err := s.ready(ctx); err != nil {
		return venue.Cluster{}, err
	}
	var c venue.Cluster
	var createdAt string
	err := s.queryRow(ctx, `SELECT id, name, region, created_at FROM clusters WHERE id = ?`, clusterID).
		Scan(&c.ID, &c.Name, &c.Region, &createdAt)
	if err != nil {
		return venue.Cluster{}, fmt.Errorf("get cluster %d: %w", clusterID, s.translate(err))
	}
	c.CreatedAt = parseTime(createdAt)
	return c, nil
}

// CreateCluster inserts a cluster and returns it with its assigned id.
func (s *Store) CreateCluster(ctx context.Context, name string, region string) (venue.Cluster, error) {
	if err := s.ready(ctx); err != nil {
		return venue.Cluster{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return venue.Cluster{}, fmt.Errorf("cluster name is required")
	}
	c := venue.Cluster{Name: name, Region: strings.TrimSpace(region), CreatedAt: time.Now().UTC()}
	err := s.queryRow(ctx,
		`INSERT INTO clusters (name, region, created_at) VALUES (?, ?, ?) RETURNING id`,
		c.Name, c.Region, formatTime(c.CreatedAt),
	).Scan(&c.ID)
	if err != nil {
		return venue.Cluster{}, fmt.Errorf("create cluster: %w", s.translate(err))
	}
	return c, nil
}
