// Package venueapi is a storage.Directory backed by an external REST venue
// service.
package venueapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	"github.com/louisbranch/venuedesk/internal/platform/timeouts"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
)

const (
	// defaultRetryDelay sets the initial wait between health checks.
	defaultRetryDelay = 500 * time.Millisecond
	// maxRetryDelay caps the backoff between health checks.
	maxRetryDelay = 10 * time.Second
	// maxErrorBody bounds how much of an error response is kept.
	maxErrorBody = 4 << 10
)

// Config locates the venue API.
type Config struct {
	BaseURL string
	// Token is sent as a bearer token when set.
	Token      string
	HTTPClient *http.Client
	// RequestTimeout bounds each call; defaults to timeouts.VenueAPIRequest.
	RequestTimeout time.Duration
}

// Client calls the venue API.
type Client struct {
	base    *url.URL
	token   string
	http    *http.Client
	timeout time.Duration
}

var _ storage.Directory = (*Client)(nil)

// New validates cfg and builds a client.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, errors.New("venue api base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid venue api base url %q", raw)
	}
	base.Path = strings.TrimRight(base.Path, "/")
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = timeouts.VenueAPIRequest
	}
	return &Client{base: base, token: strings.TrimSpace(cfg.Token), http: client, timeout: timeout}, nil
}

// Ping checks the API health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.VenueAPIHealth)
	defer cancel()
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil, nil)
}

// WaitReady polls the health endpoint with exponential backoff until it
// succeeds or ctx ends.
func (c *Client) WaitReady(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	retryDelay := defaultRetryDelay
	for {
		err := c.Ping(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("venue api health check failed: %v", err)
		timer := time.NewTimer(retryDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
		if retryDelay < maxRetryDelay {
			retryDelay *= 2
			if retryDelay > maxRetryDelay {
				retryDelay = maxRetryDelay
			}
		}
	}
}

// ListClusters returns every cluster.
func (c *Client) ListClusters(ctx context.Context) ([]venue.Cluster, error) {
	var wire []clusterJSON
	if err := c.getList(ctx, "/clusters", nil, "clusters", &wire); err != nil {
		return nil, fmt.Errorf("list clusters: %w", err)
	}
	clusters := make([]venue.Cluster, 0, len(wire))
	for _, item := range wire {
		clusters = append(clusters, item.toDomain())
	}
	return clusters, nil
}

// GetCluster returns one cluster.
func (c *Client) GetCluster(ctx context.Context, clusterID int64) (venue.Cluster, error) {
	var wire clusterJSON
	if err := c.do(ctx, http.MethodGet, "/clusters/"+strconv.FormatInt(clusterID, 10), nil, nil, &wire); err != nil {
		return venue.Cluster{}, fmt.Errorf("get cluster %d: %w", clusterID, err)
	}
	return wire.toDomain(), nil
}

// CreateCluster creates a cluster.
func (c *Client) CreateCluster(ctx context.Context, name string, region string) (venue.Cluster, error) {
	body := map[string]string{"name": strings.TrimSpace(name), "region": strings.TrimSpace(region)}
	var wire clusterJSON
	if err := c.do(ctx, http.MethodPost, "/clusters", nil, body, &wire); err != nil {
		return venue.Cluster{}, fmt.Errorf("create cluster: %w", err)
	}
	return wire.toDomain(), nil
}

// CreateVenue creates a venue and normalizes the API's response shape.
func (c *Client) CreateVenue(ctx context.Context, req venue.CreateRequest) (venue.Created, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/venues", nil, newCreateVenueJSON(req), &raw); err != nil {
		return venue.Created{}, fmt.Errorf("create venue: %w", err)
	}
	created, err := DecodeCreated(raw)
	if err != nil {
		return venue.Created{}, fmt.Errorf("create venue: %w", err)
	}
	if strings.TrimSpace(created.Name) == "" {
		created.Name = strings.TrimSpace(req.Name)
	}
	return created, nil
}

// GetVenue returns one venue.
func (c *Client) GetVenue(ctx context.Context, venueID venue.ID) (venue.Venue, error) {
	var wire venueJSON
	if err := c.do(ctx, http.MethodGet, venuePath(venueID), nil, nil, &wire); err != nil {
		return venue.Venue{}, fmt.Errorf("get venue %s: %w", venueID, err)
	}
	return wire.toDomain(), nil
}

// ListVenues returns one page of venues.
func (c *Client) ListVenues(ctx context.Context, filter venue.ListFilter) (venue.Page, error) {
	query := url.Values{}
	if filter.ClusterID != nil {
		query.Set("cluster_id", strconv.FormatInt(*filter.ClusterID, 10))
	}
	if filter.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(filter.PageSize))
	}
	if token := strings.TrimSpace(filter.PageToken); token != "" {
		query.Set("page_token", token)
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/venues", query, nil, &raw); err != nil {
		return venue.Page{}, fmt.Errorf("list venues: %w", err)
	}
	var wire venuePageJSON
	if err := decodeListOrObject(raw, "venues", &wire.Venues, &wire); err != nil {
		return venue.Page{}, fmt.Errorf("decode venues: %w", err)
	}
	page := venue.Page{NextPageToken: wire.NextPageToken, Venues: make([]venue.Venue, 0, len(wire.Venues))}
	for _, item := range wire.Venues {
		page.Venues = append(page.Venues, item.toDomain())
	}
	return page, nil
}

// ListZones returns the venue's zones.
func (c *Client) ListZones(ctx context.Context, venueID venue.ID) ([]venue.Zone, error) {
	var wire []zoneJSON
	if err := c.getList(ctx, venuePath(venueID)+"/zones", nil, "zones", &wire); err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	zones := make([]venue.Zone, 0, len(wire))
	for _, item := range wire {
		zones = append(zones, item.toDomain(venueID))
	}
	return zones, nil
}

// CreateZone creates a zone.
func (c *Client) CreateZone(ctx context.Context, zone venue.Zone) (venue.Zone, error) {
	var wire zoneJSON
	if err := c.do(ctx, http.MethodPost, venuePath(zone.VenueID)+"/zones", nil, newZoneJSON(zone), &wire); err != nil {
		return venue.Zone{}, fmt.Errorf("create zone: %w", err)
	}
	return wire.toDomain(zone.VenueID), nil
}

// DeleteZone removes a zone.
func (c *Client) DeleteZone(ctx context.Context, venueID venue.ID, zoneID string) error {
	if err := c.do(ctx, http.MethodDelete, venuePath(venueID)+"/zones/"+url.PathEscape(zoneID), nil, nil, nil); err != nil {
		return fmt.Errorf("delete zone %s: %w", zoneID, err)
	}
	return nil
}

// ListFacilities returns the venue's facilities.
func (c *Client) ListFacilities(ctx context.Context, venueID venue.ID) ([]venue.Facility, error) {
	var wire []facilityJSON
	if err := c.getList(ctx, venuePath(venueID)+"/facilities", nil, "facilities", &wire); err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	facilities := make([]venue.Facility, 0, len(wire))
	for _, item := range wire {
		facilities = append(facilities, item.toDomain(venueID))
	}
	return facilities, nil
}

// CreateFacility creates a facility.
func (c *Client) CreateFacility(ctx context.Context, facility venue.Facility) (venue.Facility, error) {
	var wire facilityJSON
	if err := c.do(ctx, http.MethodPost, venuePath(facility.VenueID)+"/facilities", nil, newFacilityJSON(facility), &wire); err != nil {
		return venue.Facility{}, fmt.Errorf("create facility: %w", err)
	}
	return wire.toDomain(facility.VenueID), nil
}

// ListAmenities returns the venue's amenities.
func (c *Client) ListAmenities(ctx context.Context, venueID venue.ID) ([]venue.Amenity, error) {
	var wire []amenityJSON
	if err := c.getList(ctx, venuePath(venueID)+"/amenities", nil, "amenities", &wire); err != nil {
		return nil, fmt.Errorf("list amenities: %w", err)
	}
	amenities := make([]venue.Amenity, 0, len(wire))
	for _, item := range wire {
		amenities = append(amenities, item.toDomain(venueID))
	}
	return amenities, nil
}

// CreateAmenity creates an amenity.
func (c *Client) CreateAmenity(ctx context.Context, amenity venue.Amenity) (venue.Amenity, error) {
	var wire amenityJSON
	body := map[string]string{"name": strings.TrimSpace(amenity.Name)}
	if err := c.do(ctx, http.MethodPost, venuePath(amenity.VenueID)+"/amenities", nil, body, &wire); err != nil {
		return venue.Amenity{}, fmt.Errorf("create amenity: %w", err)
	}
	return wire.toDomain(amenity.VenueID), nil
}

// Counts returns directory totals from the stats endpoint.
func (c *Client) Counts(ctx context.Context) (venue.Counts, error) {
	var counts venue.Counts
	if err := c.do(ctx, http.MethodGet, "/stats", nil, nil, &counts); err != nil {
		return venue.Counts{}, fmt.Errorf("load stats: %w", err)
	}
	return counts, nil
}

func (c *Client) getList(ctx context.Context, path string, query url.Values, key string, out any) error {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return err
	}
	if err := decodeListOrObject(raw, key, out, nil); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// do sends one request. A non-nil out receives the response body after any
// {"data": ...} envelope is removed.
func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// path arrives with its segments already escaped.
	unescaped, err := url.PathUnescape(path)
	if err != nil {
		return fmt.Errorf("invalid request path %q: %w", path, err)
	}
	endpoint := *c.base
	endpoint.Path = c.base.Path + unescaped
	endpoint.RawPath = c.base.EscapedPath() + path
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return platformerrors.Wrap(platformerrors.CodeDirectoryUnavailable, "venue api request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	payload = unwrapData(payload)
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], payload...)
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	cause := fmt.Errorf("venue api returned %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", storage.ErrNotFound, cause)
	case http.StatusConflict:
		return fmt.Errorf("%w: %v", storage.ErrAlreadyExists, cause)
	default:
		return platformerrors.Wrap(platformerrors.CodeDirectoryUnavailable, "venue api error", cause)
	}
}

func venuePath(venueID venue.ID) string {
	return "/venues/" + url.PathEscape(venueID.String())
}
