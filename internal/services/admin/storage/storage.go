package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
)

// ErrNotFound indicates a requested record does not exist.
var ErrNotFound = platformerrors.New(platformerrors.CodeNotFound, "record not found")

// ErrAlreadyExists indicates a uniqueness constraint rejected a write.
var ErrAlreadyExists = platformerrors.New(platformerrors.CodeAlreadyExists, "record already exists")

// ClusterStore reads and creates clusters.
type ClusterStore interface {
	ListClusters(ctx context.Context) ([]venue.Cluster, error)
	GetCluster(ctx context.Context, clusterID int64) (venue.Cluster, error)
	CreateCluster(ctx context.Context, name string, region string) (venue.Cluster, error)
}

// VenueStore creates and reads venues.
type VenueStore interface {
	CreateVenue(ctx context.Context, req venue.CreateRequest) (venue.Created, error)
	GetVenue(ctx context.Context, venueID venue.ID) (venue.Venue, error)
	ListVenues(ctx context.Context, filter venue.ListFilter) (venue.Page, error)
}

// ZoneStore manages zones scoped to one venue.
type ZoneStore interface {
	ListZones(ctx context.Context, venueID venue.ID) ([]venue.Zone, error)
	CreateZone(ctx context.Context, zone venue.Zone) (venue.Zone, error)
	DeleteZone(ctx context.Context, venueID venue.ID, zoneID string) error
}

// FacilityStore manages facilities and amenities scoped to one venue.
type FacilityStore interface {
	ListFacilities(ctx context.Context, venueID venue.ID) ([]venue.Facility, error)
	CreateFacility(ctx context.Context, facility venue.Facility) (venue.Facility, error)
	ListAmenities(ctx context.Context, venueID venue.ID) ([]venue.Amenity, error)
	CreateAmenity(ctx context.Context, amenity venue.Amenity) (venue.Amenity, error)
}

// CountStore reports directory totals.
type CountStore interface {
	Counts(ctx context.Context) (venue.Counts, error)
}

// Directory is the full venue hierarchy collaborator.
type Directory interface {
	ClusterStore
	VenueStore
	ZoneStore
	FacilityStore
	CountStore
}

// AdminModule is the console area an operator account administers.
type AdminModule string

const (
	ModuleVenues   AdminModule = "venues"
	ModuleBookings AdminModule = "bookings"
	ModuleFinance  AdminModule = "finance"
	ModuleSupport  AdminModule = "support"
)

// AdminModules lists modules in display order.
func AdminModules() []AdminModule {
	return []AdminModule{ModuleVenues, ModuleBookings, ModuleFinance, ModuleSupport}
}

// ParseAdminModule validates a submitted module.
func ParseAdminModule(raw string) (AdminModule, error) {
	value := AdminModule(strings.ToLower(strings.TrimSpace(raw)))
	for _, module := range AdminModules() {
		if module == value {
			return module, nil
		}
	}
	return "", fmt.Errorf("unknown admin module %q", raw)
}

// AdminAccount is an operator allowed into one console module.
type AdminAccount struct {
	ID          string
	Email       string
	DisplayName string
	Module      AdminModule
	CreatedAt   time.Time
}

// ConsoleSession records one browser session of the console.
type ConsoleSession struct {
	SessionID string
	AdminID   string
	CreatedAt time.Time
	RevokedAt *time.Time
}

// Active reports whether the session has not been revoked.
func (s ConsoleSession) Active() bool {
	return s.RevokedAt == nil
}

// AdminStore persists operator accounts.
type AdminStore interface {
	ListAdmins(ctx context.Context, module AdminModule) ([]AdminAccount, error)
	CreateAdmin(ctx context.Context, account AdminAccount) (AdminAccount, error)
	CountAdmins(ctx context.Context) (int64, error)
}

// SessionStore persists console sessions.
type SessionStore interface {
	PutConsoleSession(ctx context.Context, session ConsoleSession) error
	GetConsoleSession(ctx context.Context, sessionID string) (ConsoleSession, error)
	RevokeConsoleSession(ctx context.Context, sessionID string, revokedAt time.Time) error
}

// Store is a composite interface for the local console database.
type Store interface {
	Directory
	AdminStore
	SessionStore
	Close() error
}
