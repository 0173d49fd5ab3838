// Package facilitystep implements the terminal wizard step: facilities and
// amenities of the venue created in the first step.
package facilitystep

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/zonestep"
)

const (
	// MaxNameLength caps facility and amenity names, counted in runes.
	MaxNameLength = 80

	FieldName       = "name"
	FieldKind       = "kind"
	FieldCapacity   = "capacity"
	FieldZones      = "zone_ids"
	FieldAmenities  = "amenity_ids"
	FieldAmenityNew = "amenity_name"
)

// Store reads and writes facilities, amenities and the zones they link to.
type Store interface {
	ListZones(ctx context.Context, venueID venue.ID) ([]venue.Zone, error)
	ListFacilities(ctx context.Context, venueID venue.ID) ([]venue.Facility, error)
	CreateFacility(ctx context.Context, facility venue.Facility) (venue.Facility, error)
	ListAmenities(ctx context.Context, venueID venue.ID) ([]venue.Amenity, error)
	CreateAmenity(ctx context.Context, amenity venue.Amenity) (venue.Amenity, error)
}

// FacilityForm holds raw facility form values.
type FacilityForm struct {
	Name       string
	Kind       string
	Capacity   string
	ZoneIDs    []string
	AmenityIDs []string
}

// ParseFacilityForm reads facility form values; zone and amenity ids come from
// repeated checkbox fields.
func ParseFacilityForm(values url.Values) FacilityForm {
	return FacilityForm{
		Name:       strings.TrimSpace(values.Get(FieldName)),
		Kind:       strings.TrimSpace(values.Get(FieldKind)),
		Capacity:   strings.TrimSpace(values.Get(FieldCapacity)),
		ZoneIDs:    compactIDs(values[FieldZones]),
		AmenityIDs: compactIDs(values[FieldAmenities]),
	}
}

// ParseAmenityName reads the amenity form's single field.
func ParseAmenityName(values url.Values) string {
	return strings.TrimSpace(values.Get(FieldAmenityNew))
}

// Step manages facilities and amenities of one venue. It has no forward
// trigger; the wizard ends when it is closed.
type Step struct {
	venue venue.Ref
	store Store
}

// New binds a facility step to ref.
func New(ref venue.Ref, store Store) (*Step, error) {
	if ref.ID.IsZero() {
		return nil, fmt.Errorf("facility step requires a venue id")
	}
	if store == nil {
		return nil, fmt.Errorf("facility step requires a store")
	}
	return &Step{venue: ref, store: store}, nil
}

// Venue returns the venue this step configures.
func (s *Step) Venue() venue.Ref {
	return s.venue
}

// Zones lists the zones facilities can be placed in.
func (s *Step) Zones(ctx context.Context) ([]venue.Zone, error) {
	return s.store.ListZones(ctx, s.venue.ID)
}

// Facilities lists the venue's facilities.
func (s *Step) Facilities(ctx context.Context) ([]venue.Facility, error) {
	return s.store.ListFacilities(ctx, s.venue.ID)
}

// Amenities lists the venue's amenities.
func (s *Step) Amenities(ctx context.Context) ([]venue.Amenity, error) {
	return s.store.ListAmenities(ctx, s.venue.ID)
}

// AddFacility validates form against the venue's zones and amenities and
// creates the facility.
func (s *Step) AddFacility(ctx context.Context, form FacilityForm) (venue.Facility, venue.FieldErrors, error) {
	fields := venue.FieldErrors{}
	name := strings.TrimSpace(form.Name)
	switch {
	case name == "":
		fields.Add(FieldName, "facility.form.error.name_required")
	case utf8.RuneCountInString(name) > MaxNameLength:
		fields.Add(FieldName, "facility.form.error.name_too_long")
	}
	kind, err := venue.ParseFacilityKind(form.Kind)
	if err != nil {
		fields.Add(FieldKind, "facility.form.error.kind_invalid")
	}
	capacity := 0
	if raw := strings.TrimSpace(form.Capacity); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			fields.Add(FieldCapacity, "facility.form.error.capacity_invalid")
		} else {
			capacity = parsed
		}
	}

	zones, err := s.store.ListZones(ctx, s.venue.ID)
	if err != nil {
		return venue.Facility{}, nil, fmt.Errorf("list zones: %w", err)
	}
	zoneIDs := make(map[string]bool, len(zones))
	for _, zone := range zones {
		zoneIDs[zone.ID] = true
	}
	if !allKnown(form.ZoneIDs, zoneIDs) {
		fields.Add(FieldZones, "facility.form.error.zone_unknown")
	}

	amenities, err := s.store.ListAmenities(ctx, s.venue.ID)
	if err != nil {
		return venue.Facility{}, nil, fmt.Errorf("list amenities: %w", err)
	}
	amenityIDs := make(map[string]bool, len(amenities))
	for _, amenity := range amenities {
		amenityIDs[amenity.ID] = true
	}
	if !allKnown(form.AmenityIDs, amenityIDs) {
		fields.Add(FieldAmenities, "facility.form.error.amenity_unknown")
	}

	if err := fields.Err(platformerrors.CodeFacilityInvalid, "facility form is invalid"); err != nil {
		return venue.Facility{}, fields, err
	}

	existing, err := s.store.ListFacilities(ctx, s.venue.ID)
	if err != nil {
		return venue.Facility{}, nil, fmt.Errorf("list facilities: %w", err)
	}
	taken := make(map[string]bool, len(existing))
	for _, facility := range existing {
		taken[facility.Slug] = true
	}

	created, err := s.store.CreateFacility(ctx, venue.Facility{
		VenueID:    s.venue.ID,
		Name:       name,
		Slug:       zonestep.UniqueSlug(name, string(kind), taken),
		Kind:       kind,
		Capacity:   capacity,
		ZoneIDs:    compactIDs(form.ZoneIDs),
		AmenityIDs: compactIDs(form.AmenityIDs),
	})
	if err != nil {
		return venue.Facility{}, nil, fmt.Errorf("create facility: %w", err)
	}
	return created, nil, nil
}

// AddAmenity creates an amenity whose name is unique in the venue ignoring
// case.
func (s *Step) AddAmenity(ctx context.Context, name string) (venue.Amenity, venue.FieldErrors, error) {
	fields := venue.FieldErrors{}
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		fields.Add(FieldAmenityNew, "amenity.form.error.name_required")
	case utf8.RuneCountInString(name) > MaxNameLength:
		fields.Add(FieldAmenityNew, "amenity.form.error.name_too_long")
	}
	if err := fields.Err(platformerrors.CodeAmenityInvalid, "amenity form is invalid"); err != nil {
		return venue.Amenity{}, fields, err
	}

	existing, err := s.store.ListAmenities(ctx, s.venue.ID)
	if err != nil {
		return venue.Amenity{}, nil, fmt.Errorf("list amenities: %w", err)
	}
	for _, amenity := range existing {
		if strings.EqualFold(strings.TrimSpace(amenity.Name), name) {
			return venue.Amenity{}, duplicateAmenity(fields), platformerrors.New(platformerrors.CodeAmenityDuplicate, "amenity already exists")
		}
	}

	created, err := s.store.CreateAmenity(ctx, venue.Amenity{VenueID: s.venue.ID, Name: name})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return venue.Amenity{}, duplicateAmenity(fields), platformerrors.Wrap(platformerrors.CodeAmenityDuplicate, "amenity already exists", err)
		}
		return venue.Amenity{}, nil, fmt.Errorf("create amenity: %w", err)
	}
	return created, nil, nil
}

func duplicateAmenity(fields venue.FieldErrors) venue.FieldErrors {
	fields.Add(FieldAmenityNew, "amenity.form.error.name_taken")
	return fields
}

func allKnown(ids []string, known map[string]bool) bool {
	for _, id := range ids {
		if !known[strings.TrimSpace(id)] {
			return false
		}
	}
	return true
}

func compactIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
