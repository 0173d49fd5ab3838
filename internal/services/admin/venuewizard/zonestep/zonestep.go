// Package zonestep implements the second wizard step: zone management for
// the venue created in the first step.
package zonestep

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gosimple/slug"
	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
)

const (
	// MaxNameLength caps zone names, counted in runes.
	MaxNameLength = 80

	FieldName        = "name"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
)

// Store reads and writes zones.
type Store interface {
	ListZones(ctx context.Context, venueID venue.ID) ([]venue.Zone, error)
	CreateZone(ctx context.Context, zone venue.Zone) (venue.Zone, error)
	DeleteZone(ctx context.Context, venueID venue.ID, zoneID string) error
}

// Form holds raw zone form values.
type Form struct {
	Name        string
	Capacity    string
	Description string
}

// ParseForm reads zone form values.
func ParseForm(values url.Values) Form {
	return Form{
		Name:        strings.TrimSpace(values.Get(FieldName)),
		Capacity:    strings.TrimSpace(values.Get(FieldCapacity)),
		Description: strings.TrimSpace(values.Get(FieldDescription)),
	}
}

// Step manages the zones of one venue.
type Step struct {
	venue     venue.Ref
	store     Store
	onProceed func() error
}

// New binds a zone step to ref. onProceed is the forward trigger supplied by
// the wizard.
func New(ref venue.Ref, store Store, onProceed func() error) (*Step, error) {
	if ref.ID.IsZero() {
		return nil, fmt.Errorf("zone step requires a venue id")
	}
	if store == nil {
		return nil, fmt.Errorf("zone step requires a store")
	}
	return &Step{venue: ref, store: store, onProceed: onProceed}, nil
}

// Venue returns the venue this step configures.
func (s *Step) Venue() venue.Ref {
	return s.venue
}

// Zones lists the venue's zones.
func (s *Step) Zones(ctx context.Context) ([]venue.Zone, error) {
	return s.store.ListZones(ctx, s.venue.ID)
}

// AddZone validates form and creates a zone with a slug unique in the venue.
func (s *Step) AddZone(ctx context.Context, form Form) (venue.Zone, venue.FieldErrors, error) {
	fields := venue.FieldErrors{}
	name := strings.TrimSpace(form.Name)
	switch {
	case name == "":
		fields.Add(FieldName, "zone.form.error.name_required")
	case utf8.RuneCountInString(name) > MaxNameLength:
		fields.Add(FieldName, "zone.form.error.name_too_long")
	}
	capacity := 0
	if raw := strings.TrimSpace(form.Capacity); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			fields.Add(FieldCapacity, "zone.form.error.capacity_invalid")
		} else {
			capacity = parsed
		}
	}
	if err := fields.Err(platformerrors.CodeZoneInvalid, "zone form is invalid"); err != nil {
		return venue.Zone{}, fields, err
	}

	existing, err := s.store.ListZones(ctx, s.venue.ID)
	if err != nil {
		return venue.Zone{}, nil, fmt.Errorf("list zones: %w", err)
	}
	taken := make(map[string]bool, len(existing))
	for _, zone := range existing {
		taken[zone.Slug] = true
	}

	created, err := s.store.CreateZone(ctx, venue.Zone{
		VenueID:     s.venue.ID,
		Name:        name,
		Slug:        UniqueSlug(name, "zone", taken),
		Description: strings.TrimSpace(form.Description),
		Capacity:    capacity,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			fields.Add(FieldName, "zone.form.error.name_taken")
			return venue.Zone{}, fields, platformerrors.Wrap(platformerrors.CodeZoneInvalid, "zone slug taken", err)
		}
		return venue.Zone{}, nil, fmt.Errorf("create zone: %w", err)
	}
	return created, nil, nil
}

// RemoveZone deletes one of the venue's zones.
func (s *Step) RemoveZone(ctx context.Context, zoneID string) error {
	zoneID = strings.TrimSpace(zoneID)
	if zoneID == "" {
		return platformerrors.New(platformerrors.CodeZoneInvalid, "zone id is required")
	}
	return s.store.DeleteZone(ctx, s.venue.ID, zoneID)
}

// Proceed fires the forward trigger towards facility configuration.
func (s *Step) Proceed() error {
	if s.onProceed == nil {
		return platformerrors.New(platformerrors.CodeWizardInvalidTransition, "zone step has no forward trigger")
	}
	return s.onProceed()
}

// UniqueSlug slugifies name and appends -2, -3, ... until it is not taken.
// fallback is used when name has no sluggable characters.
func UniqueSlug(name string, fallback string, taken map[string]bool) string {
	base := slug.Make(name)
	if base == "" {
		base = fallback
	}
	candidate := base
	for n := 2; taken[candidate]; n++ {
		candidate = base + "-" + strconv.Itoa(n)
	}
	return candidate
}
