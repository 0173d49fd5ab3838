// Package storetest runs one behavioral suite against every storage.Store
// implementation.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/geofence"
)

// Opener returns an empty, migrated store owned by the test.
type Opener func(t *testing.T) storage.Store

// Run executes the storage suite.
func Run(t *testing.T, open Opener) {
	t.Run("clusters", func(t *testing.T) { testClusters(t, open(t)) })
	t.Run("venues", func(t *testing.T) { testVenues(t, open(t)) })
	t.Run("venue pages", func(t *testing.T) { testVenuePages(t, open(t)) })
	t.Run("zones", func(t *testing.T) { testZones(t, open(t)) })
	t.Run("facilities", func(t *testing.T) { testFacilities(t, open(t)) })
	t.Run("admins", func(t *testing.T) { testAdmins(t, open(t)) })
	t.Run("sessions", func(t *testing.T) { testSessions(t, open(t)) })
}

func testClusters(t *testing.T, store storage.Store) {
	ctx := context.Background()
	north, err := store.CreateCluster(ctx, " North ", "eu-west")
	if err != nil {
		t.Fatalf("create cluster: %v", err)
	}
	if north.ID <= 0 || north.Name != "North" {
		t.Fatalf("created cluster = %+v", north)
	}
	if _, err := store.CreateCluster(ctx, "Alpha", ""); err != nil {
		t.Fatalf("create cluster: %v", err)
	}
	if _, err := store.CreateCluster(ctx, "  ", ""); err == nil {
		t.Fatal("expected blank cluster name to fail")
	}

	clusters, err := store.ListClusters(ctx)
	if err != nil {
		t.Fatalf("list clusters: %v", err)
	}
	if len(clusters) != 2 || clusters[0].Name != "Alpha" || clusters[1].Name != "North" {
		t.Fatalf("clusters = %+v", clusters)
	}

	got, err := store.GetCluster(ctx, north.ID)
	if err != nil {
		t.Fatalf("get cluster: %v", err)
	}
	if got.Region != "eu-west" {
		t.Fatalf("region = %q, want eu-west", got.Region)
	}
	if _, err := store.GetCluster(ctx, north.ID+100); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("missing cluster error = %v, want ErrNotFound", err)
	}
}

func testVenues(t *testing.T, store storage.Store) {
	ctx := context.Background()
	cluster, err := store.CreateCluster(ctx, "Harbor", "")
	if err != nil {
		t.Fatalf("create cluster: %v", err)
	}

	radius, err := store.CreateVenue(ctx, venue.CreateRequest{
		ClusterID:    &cluster.ID,
		Name:         "Stadium A",
		Address:      "1 Main St",
		Geofence:     geofence.Radius,
		Latitude:     -23.5,
		Longitude:    -46.6,
		RadiusMeters: 250,
	})
	if err != nil {
		t.Fatalf("create radius venue: %v", err)
	}
	if radius.ID.IsZero() || radius.Name != "Stadium A" {
		t.Fatalf("created = %+v", radius)
	}

	polygon := []venue.Point{{Lat: 1, Lng: 1}, {Lat: 1, Lng: 2}, {Lat: 2, Lng: 2}}
	shape, err := store.CreateVenue(ctx, venue.CreateRequest{
		Name:     "Park B",
		Address:  "2 Side St",
		Geofence: geofence.Polygon,
		Latitude: 1.5,
		Polygon:  polygon,
	})
	if err != nil {
		t.Fatalf("create polygon venue: %v", err)
	}

	got, err := store.GetVenue(ctx, radius.ID)
	if err != nil {
		t.Fatalf("get venue: %v", err)
	}
	if got.ClusterID == nil || *got.ClusterID != cluster.ID {
		t.Fatalf("cluster id = %v, want %d", got.ClusterID, cluster.ID)
	}
	if got.Geofence != geofence.Radius || got.RadiusMeters != 250 {
		t.Fatalf("venue geometry = %+v", got)
	}

	gotShape, err := store.GetVenue(ctx, shape.ID)
	if err != nil {
		t.Fatalf("get polygon venue: %v", err)
	}
	if gotShape.Geofence != geofence.Polygon || len(gotShape.Polygon) != 3 || gotShape.ClusterID != nil {
		t.Fatalf("polygon venue = %+v", gotShape)
	}

	if _, err := store.GetVenue(ctx, venue.ID("missing")); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("missing venue error = %v, want ErrNotFound", err)
	}

	page, err := store.ListVenues(ctx, venue.ListFilter{ClusterID: &cluster.ID})
	if err != nil {
		t.Fatalf("list venues: %v", err)
	}
	if len(page.Venues) != 1 || page.Venues[0].ID != radius.ID {
		t.Fatalf("cluster page = %+v", page)
	}
}

func testVenuePages(t *testing.T, store storage.Store) {
	ctx := context.Background()
	for _, name := range []string{"V1", "V2", "V3"} {
		if _, err := store.CreateVenue(ctx, venue.CreateRequest{Name: name, Address: "x", RadiusMeters: 10}); err != nil {
			t.Fatalf("create venue %s: %v", name, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	first, err := store.ListVenues(ctx, venue.ListFilter{PageSize: 2})
	if err != nil {
		t.Fatalf("list first page: %v", err)
	}
	if len(first.Venues) != 2 || first.NextPageToken == "" {
		t.Fatalf("first page = %+v", first)
	}
	if first.Venues[0].Name != "V3" {
		t.Fatalf("first venue = %q, want newest V3", first.Venues[0].Name)
	}

	second, err := store.ListVenues(ctx, venue.ListFilter{PageSize: 2, PageToken: first.NextPageToken})
	if err != nil {
		t.Fatalf("list second page: %v", err)
	}
	if len(second.Venues) != 1 || second.NextPageToken != "" || second.Venues[0].Name != "V1" {
		t.Fatalf("second page = %+v", second)
	}

	if _, err := store.ListVenues(ctx, venue.ListFilter{PageToken: "%%%"}); err == nil {
		t.Fatal("expected invalid page token error")
	}
}

func testZones(t *testing.T, store storage.Store) {
	ctx := context.Background()
	created := mustVenue(t, store)

	zone, err := store.CreateZone(ctx, venue.Zone{VenueID: created.ID, Name: "North Stand", Slug: "north-stand", Capacity: 500})
	if err != nil {
		t.Fatalf("create zone: %v", err)
	}
	if zone.ID == "" {
		t.Fatal("expected zone id")
	}
	if _, err := store.CreateZone(ctx, venue.Zone{VenueID: created.ID, Name: "North stand", Slug: "north-stand"}); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate slug error = %v, want ErrAlreadyExists", err)
	}

	zones, err := store.ListZones(ctx, created.ID)
	if err != nil {
		t.Fatalf("list zones: %v", err)
	}
	if len(zones) != 1 || zones[0].Capacity != 500 {
		t.Fatalf("zones = %+v", zones)
	}

	if err := store.DeleteZone(ctx, created.ID, zone.ID); err != nil {
		t.Fatalf("delete zone: %v", err)
	}
	if err := store.DeleteZone(ctx, created.ID, zone.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete error = %v, want ErrNotFound", err)
	}
}

func testFacilities(t *testing.T, store storage.Store) {
	ctx := context.Background()
	created := mustVenue(t, store)

	zone, err := store.CreateZone(ctx, venue.Zone{VenueID: created.ID, Name: "Court Area", Slug: "court-area"})
	if err != nil {
		t.Fatalf("create zone: %v", err)
	}
	lights, err := store.CreateAmenity(ctx, venue.Amenity{VenueID: created.ID, Name: "Floodlights"})
	if err != nil {
		t.Fatalf("create amenity: %v", err)
	}
	if _, err := store.CreateAmenity(ctx, venue.Amenity{VenueID: created.ID, Name: "FLOODLIGHTS"}); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate amenity error = %v, want ErrAlreadyExists", err)
	}

	facility, err := store.CreateFacility(ctx, venue.Facility{
		VenueID:    created.ID,
		Name:       "Court 1",
		Slug:       "court-1",
		Kind:       venue.FacilityCourt,
		Capacity:   4,
		ZoneIDs:    []string{zone.ID},
		AmenityIDs: []string{lights.ID},
	})
	if err != nil {
		t.Fatalf("create facility: %v", err)
	}

	facilities, err := store.ListFacilities(ctx, created.ID)
	if err != nil {
		t.Fatalf("list facilities: %v", err)
	}
	if len(facilities) != 1 || facilities[0].ID != facility.ID {
		t.Fatalf("facilities = %+v", facilities)
	}
	got := facilities[0]
	if got.Kind != venue.FacilityCourt || len(got.ZoneIDs) != 1 || got.ZoneIDs[0] != zone.ID ||
		len(got.AmenityIDs) != 1 || got.AmenityIDs[0] != lights.ID {
		t.Fatalf("facility links = %+v", got)
	}

	amenities, err := store.ListAmenities(ctx, created.ID)
	if err != nil {
		t.Fatalf("list amenities: %v", err)
	}
	if len(amenities) != 1 {
		t.Fatalf("amenities = %+v", amenities)
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts.Venues != 1 || counts.Zones != 1 || counts.Facilities != 1 {
		t.Fatalf("counts = %+v", counts)
	}
}

func testAdmins(t *testing.T, store storage.Store) {
	ctx := context.Background()
	account, err := store.CreateAdmin(ctx, storage.AdminAccount{
		Email:       " Ops@Example.com ",
		DisplayName: "Ops",
		Module:      storage.ModuleVenues,
	})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if account.Email != "ops@example.com" || account.ID == "" {
		t.Fatalf("account = %+v", account)
	}
	if _, err := store.CreateAdmin(ctx, storage.AdminAccount{Email: "ops@example.com", Module: storage.ModuleFinance}); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate email error = %v, want ErrAlreadyExists", err)
	}
	if _, err := store.CreateAdmin(ctx, storage.AdminAccount{Email: "pay@example.com", Module: storage.ModuleFinance}); err != nil {
		t.Fatalf("create finance admin: %v", err)
	}

	venueAdmins, err := store.ListAdmins(ctx, storage.ModuleVenues)
	if err != nil {
		t.Fatalf("list admins: %v", err)
	}
	if len(venueAdmins) != 1 {
		t.Fatalf("venue admins = %+v", venueAdmins)
	}
	all, err := store.ListAdmins(ctx, "")
	if err != nil {
		t.Fatalf("list all admins: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all admins = %+v", all)
	}
	count, err := store.CountAdmins(ctx)
	if err != nil || count != 2 {
		t.Fatalf("CountAdmins = %d, %v", count, err)
	}
}

func testSessions(t *testing.T, store storage.Store) {
	ctx := context.Background()
	createdAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	if err := store.PutConsoleSession(ctx, storage.ConsoleSession{SessionID: "session-1", AdminID: "admin-1", CreatedAt: createdAt}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := store.PutConsoleSession(ctx, storage.ConsoleSession{SessionID: "session-1", AdminID: "admin-1", CreatedAt: createdAt}); err != nil {
		t.Fatalf("replay session: %v", err)
	}
	if err := store.PutConsoleSession(ctx, storage.ConsoleSession{}); err == nil {
		t.Fatal("expected empty session id to fail")
	}

	session, err := store.GetConsoleSession(ctx, "session-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !session.Active() || !session.CreatedAt.Equal(createdAt) {
		t.Fatalf("session = %+v", session)
	}

	if err := store.RevokeConsoleSession(ctx, "session-1", createdAt.Add(time.Hour)); err != nil {
		t.Fatalf("revoke session: %v", err)
	}
	session, err = store.GetConsoleSession(ctx, "session-1")
	if err != nil {
		t.Fatalf("get revoked session: %v", err)
	}
	if session.Active() {
		t.Fatal("expected revoked session")
	}
	if err := store.RevokeConsoleSession(ctx, "missing", time.Now()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("revoke missing error = %v, want ErrNotFound", err)
	}
}

func mustVenue(t *testing.T, store storage.Store) venue.Created {
	t.Helper()
	created, err := store.CreateVenue(context.Background(), venue.CreateRequest{
		Name:         "Arena",
		Address:      "3 Ring Rd",
		RadiusMeters: 100,
	})
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}
	return created
}
