package venuewizard

import "github.com/louisbranch/venuedesk/internal/services/admin/venue"

// Step numbers the wizard pages.
type Step int

const (
	StepVenueDetails   Step = 1
	StepZoneConfig     Step = 2
	StepFacilityConfig Step = 3
)

// State is the wizard's step cursor. Only the variants that need a venue
// carry one, so steps two and three cannot exist without it.
type State interface {
	Step() Step
	isState()
}

// VenueDetailsState is the first step; no venue exists yet.
type VenueDetailsState struct{}

// ZoneConfigState configures zones of the created venue.
type ZoneConfigState struct {
	Venue venue.Ref
}

// FacilityConfigState configures facilities of the created venue.
type FacilityConfigState struct {
	Venue venue.Ref
}

func (VenueDetailsState) Step() Step   { return StepVenueDetails }
func (ZoneConfigState) Step() Step     { return StepZoneConfig }
func (FacilityConfigState) Step() Step { return StepFacilityConfig }

func (VenueDetailsState) isState()   {}
func (ZoneConfigState) isState()     {}
func (FacilityConfigState) isState() {}

// VenueOf returns the venue carried by state, if any.
func VenueOf(state State) (venue.Ref, bool) {
	switch s := state.(type) {
	case ZoneConfigState:
		return s.Venue, true
	case FacilityConfigState:
		return s.Venue, true
	default:
		return venue.Ref{}, false
	}
}
