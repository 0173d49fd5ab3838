// Package venuewizard coordinates the three-step venue creation flow: venue
// details, zone configuration and facility configuration.
package venuewizard

import (
	"context"
	"sync"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/facilitystep"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/geofence"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/venuestep"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/zonestep"
)

// Store is everything the three steps persist through.
type Store interface {
	venuestep.Creator
	zonestep.Store
	facilitystep.Store
}

// Props are supplied by whoever opens the wizard.
type Props struct {
	// DefaultClusterID pre-selects a cluster that stays editable.
	DefaultClusterID *int64
	// PresetClusterID locks the cluster field.
	PresetClusterID *int64
	// OnSuccess fires once per created venue, after the wizard has moved on.
	// Listings hang their refresh off it.
	OnSuccess func(venue.Ref)
	// OnOpenChange reports visibility changes.
	OnOpenChange func(open bool)
}

// Snapshot is a consistent read of the wizard for rendering.
type Snapshot struct {
	Open             bool
	State            State
	Mode             geofence.Mode
	PresetClusterID  *int64
	DefaultClusterID *int64
	Submitting       bool
	Generation       uint64
}

// Wizard is one venue creation run. All transitions are serialized; the venue
// creation call runs without holding the lock.
type Wizard struct {
	mu    sync.Mutex
	store Store
	props Props

	open       bool
	state      State
	mode       geofence.Selector
	generation uint64

	venueStep    *venuestep.Step
	zoneStep     *zonestep.Step
	facilityStep *facilitystep.Step
}

// New builds a closed wizard.
func New(store Store, props Props) *Wizard {
	w := &Wizard{
		store: store,
		props: Props{
			DefaultClusterID: copyID(props.DefaultClusterID),
			PresetClusterID:  copyID(props.PresetClusterID),
			OnSuccess:        props.OnSuccess,
			OnOpenChange:     props.OnOpenChange,
		},
	}
	w.resetLocked()
	return w
}

// Open shows the wizard at the venue details step.
func (w *Wizard) Open() {
	w.mu.Lock()
	changed := !w.open
	if changed {
		w.resetLocked()
		w.open = true
	}
	w.mu.Unlock()
	if changed {
		w.notifyOpenChange(true)
	}
}

// Close hides the wizard and resets it synchronously: step one, no venue,
// radius mode. A creation still in flight can no longer move this run.
func (w *Wizard) Close() {
	w.mu.Lock()
	changed := w.open
	w.open = false
	w.resetLocked()
	w.mu.Unlock()
	if changed {
		w.notifyOpenChange(false)
	}
}

// IsOpen reports visibility.
func (w *Wizard) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// State returns the current step variant.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Snapshot returns the wizard's visible state.
func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{
		Open:             w.open,
		State:            w.state,
		Mode:             w.mode.Mode(),
		PresetClusterID:  copyID(w.props.PresetClusterID),
		DefaultClusterID: copyID(w.props.DefaultClusterID),
		Submitting:       w.venueStep.Submitting(),
		Generation:       w.generation,
	}
}

// SetGeometryMode switches between radius and polygon capture. Only the venue
// details step accepts it.
func (w *Wizard) SetGeometryMode(mode geofence.Mode) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireOpenLocked(); err != nil {
		return err
	}
	if _, ok := w.state.(VenueDetailsState); !ok {
		return platformerrors.New(platformerrors.CodeWizardInvalidTransition, "geometry mode is fixed after venue creation")
	}
	w.mode.Set(mode)
	return nil
}

// VenueStep returns the venue details step.
func (w *Wizard) VenueStep() (*venuestep.Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireOpenLocked(); err != nil {
		return nil, err
	}
	if _, ok := w.state.(VenueDetailsState); !ok {
		return nil, invalidStep(StepVenueDetails, w.state)
	}
	return w.venueStep, nil
}

// SubmitVenue submits the venue form with the current geometry mode. On
// success the venue step's completion moves the wizard to zone configuration.
// The returned ref is valid even when the run was closed before the creation
// finished.
func (w *Wizard) SubmitVenue(ctx context.Context, form venuestep.Form) (venue.Ref, venue.FieldErrors, error) {
	w.mu.Lock()
	if err := w.requireOpenLocked(); err != nil {
		w.mu.Unlock()
		return venue.Ref{}, nil, err
	}
	if _, ok := w.state.(VenueDetailsState); !ok {
		err := invalidStep(StepVenueDetails, w.state)
		w.mu.Unlock()
		return venue.Ref{}, nil, err
	}
	step := w.venueStep
	mode := w.mode.Mode()
	w.mu.Unlock()

	return step.Submit(ctx, mode, form)
}

// ZoneStep returns the zone configuration step.
func (w *Wizard) ZoneStep() (*zonestep.Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireOpenLocked(); err != nil {
		return nil, err
	}
	if _, ok := w.state.(ZoneConfigState); !ok {
		return nil, invalidStep(StepZoneConfig, w.state)
	}
	return w.zoneStep, nil
}

// FacilityStep returns the facility configuration step.
func (w *Wizard) FacilityStep() (*facilitystep.Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireOpenLocked(); err != nil {
		return nil, err
	}
	if _, ok := w.state.(FacilityConfigState); !ok {
		return nil, invalidStep(StepFacilityConfig, w.state)
	}
	return w.facilityStep, nil
}

// ProceedToFacilities fires the zone step's forward trigger.
func (w *Wizard) ProceedToFacilities() error {
	step, err := w.ZoneStep()
	if err != nil {
		return err
	}
	return step.Proceed()
}

// venueCreated is the venue step's completion callback for generation gen.
func (w *Wizard) venueCreated(gen uint64, ref venue.Ref) {
	w.mu.Lock()
	current := gen == w.generation && w.open
	if current {
		if _, ok := w.state.(VenueDetailsState); !ok {
			current = false
		}
	}
	if current {
		zoneStep, err := zonestep.New(ref, w.store, w.proceedTrigger(gen))
		if err != nil {
			current = false
		} else {
			w.zoneStep = zoneStep
			w.state = ZoneConfigState{Venue: ref}
		}
	}
	onSuccess := w.props.OnSuccess
	w.mu.Unlock()

	// Listings refresh even when a late creation no longer moves this run.
	if onSuccess != nil {
		onSuccess(ref)
	}
}

func (w *Wizard) proceedTrigger(gen uint64) func() error {
	return func() error {
		w.mu.Lock()
		defer w.mu.Unlock()
		if gen != w.generation {
			return platformerrors.New(platformerrors.CodeWizardClosed, "wizard run was reset")
		}
		if err := w.requireOpenLocked(); err != nil {
			return err
		}
		zone, ok := w.state.(ZoneConfigState)
		if !ok {
			return invalidStep(StepZoneConfig, w.state)
		}
		facilityStep, err := facilitystep.New(zone.Venue, w.store)
		if err != nil {
			return platformerrors.Wrap(platformerrors.CodeWizardInvalidTransition, "start facility step", err)
		}
		w.facilityStep = facilityStep
		w.state = FacilityConfigState{Venue: zone.Venue}
		return nil
	}
}

func (w *Wizard) resetLocked() {
	w.generation++
	gen := w.generation
	w.state = VenueDetailsState{}
	w.mode.Reset()
	w.zoneStep = nil
	w.facilityStep = nil
	w.venueStep = venuestep.New(w.store, venuestep.Config{
		PresetClusterID:  w.props.PresetClusterID,
		DefaultClusterID: w.props.DefaultClusterID,
		OnComplete: func(ref venue.Ref) {
			w.venueCreated(gen, ref)
		},
	})
}

func (w *Wizard) requireOpenLocked() error {
	if !w.open {
		return platformerrors.New(platformerrors.CodeWizardClosed, "wizard is closed")
	}
	return nil
}

func (w *Wizard) notifyOpenChange(open bool) {
	if w.props.OnOpenChange != nil {
		w.props.OnOpenChange(open)
	}
}

func invalidStep(want Step, state State) error {
	got := Step(0)
	if state != nil {
		got = state.Step()
	}
	return platformerrors.WithMetadata(
		platformerrors.CodeWizardInvalidTransition,
		"wizard is not at the requested step",
		map[string]string{"want_step": stepName(want), "current_step": stepName(got)},
	)
}

func stepName(step Step) string {
	switch step {
	case StepVenueDetails:
		return "venue_details"
	case StepZoneConfig:
		return "zone_config"
	case StepFacilityConfig:
		return "facility_config"
	default:
		return "unknown"
	}
}

func copyID(value *int64) *int64 {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
