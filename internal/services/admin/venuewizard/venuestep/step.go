// Package venuestep implements the first wizard step: venue details capture,
// local validation and the single venue-creation call.
package venuestep

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/geofence"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/venuestep"

// Creator persists a new venue.
type Creator interface {
	CreateVenue(ctx context.Context, req venue.CreateRequest) (venue.Created, error)
}

// Config binds a step to one wizard run.
type Config struct {
	// PresetClusterID locks the cluster field when set.
	PresetClusterID *int64
	// DefaultClusterID pre-selects a cluster that stays editable.
	DefaultClusterID *int64
	// OnComplete receives the created venue; it is the only way the caller
	// learns about a successful submission.
	OnComplete func(venue.Ref)
}

const (
	stateIdle int32 = iota
	stateSubmitting
	stateDone
)

// Step submits the venue form. A Step accepts one submission at a time and
// none after a venue was created.
type Step struct {
	creator    Creator
	preset     *int64
	fallback   *int64
	onComplete func(venue.Ref)
	state      atomic.Int32
}

// New builds a venue step.
func New(creator Creator, cfg Config) *Step {
	return &Step{
		creator:    creator,
		preset:     copyID(cfg.PresetClusterID),
		fallback:   copyID(cfg.DefaultClusterID),
		onComplete: cfg.OnComplete,
	}
}

// ClusterLocked reports whether the cluster field is fixed by a preset.
func (s *Step) ClusterLocked() bool {
	return s != nil && s.preset != nil
}

// InitialForm returns the empty form with the cluster pre-selected.
func (s *Step) InitialForm() Form {
	form := Form{}
	if s == nil {
		return form
	}
	switch {
	case s.preset != nil:
		form.ClusterID = strconv.FormatInt(*s.preset, 10)
	case s.fallback != nil:
		form.ClusterID = strconv.FormatInt(*s.fallback, 10)
	}
	return form
}

// Submitting reports whether a creation call is in flight.
func (s *Step) Submitting() bool {
	return s != nil && s.state.Load() == stateSubmitting
}

// Done reports whether the step already created its venue.
func (s *Step) Done() bool {
	return s != nil && s.state.Load() == stateDone
}

// Submit validates form for mode and creates the venue.
//
// Validation failures return the per-field problems and a VENUE_NAME_EMPTY or
// VENUE_INVALID error without calling the creator. A submission made while another is in flight is
// rejected with WIZARD_SUBMISSION_IN_PROGRESS; once a venue was created every
// later submission fails with WIZARD_INVALID_TRANSITION.
func (s *Step) Submit(ctx context.Context, mode geofence.Mode, form Form) (venue.Ref, venue.FieldErrors, error) {
	if s == nil || s.creator == nil {
		return venue.Ref{}, nil, platformerrors.New(platformerrors.CodeVenueSubmissionFailed, "venue creator is not configured")
	}

	req, fields := BuildRequest(form, mode, s.preset)
	if err := fields.Err(invalidCode(fields), "venue form is invalid"); err != nil {
		return venue.Ref{}, fields, err
	}

	if !s.state.CompareAndSwap(stateIdle, stateSubmitting) {
		if s.state.Load() == stateDone {
			return venue.Ref{}, nil, platformerrors.New(platformerrors.CodeWizardInvalidTransition, "venue already created")
		}
		return venue.Ref{}, nil, platformerrors.New(platformerrors.CodeWizardSubmissionInProgress, "venue submission already in progress")
	}
	succeeded := false
	defer func() {
		if !succeeded {
			s.state.Store(stateIdle)
		}
	}()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "venuestep.Submit",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.Int("venue.geofencing_type", req.Geofence.TypeCode()),
			attribute.Bool("venue.cluster_preset", s.preset != nil),
		),
	)
	defer span.End()

	created, err := s.creator.CreateVenue(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create venue")
		return venue.Ref{}, nil, platformerrors.Wrap(platformerrors.CodeVenueSubmissionFailed, "create venue", err)
	}

	ref, err := normalize(created, req.Name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "normalize venue")
		return venue.Ref{}, nil, err
	}
	span.SetAttributes(attribute.String("venue.id", ref.ID.String()))

	succeeded = true
	s.state.Store(stateDone)
	if s.onComplete != nil {
		s.onComplete(ref)
	}
	return ref, nil, nil
}

func normalize(created venue.Created, submittedName string) (venue.Ref, error) {
	if created.ID.IsZero() {
		return venue.Ref{}, platformerrors.New(platformerrors.CodeVenueSubmissionFailed, "venue creation returned no id")
	}
	name := strings.TrimSpace(created.Name)
	if name == "" {
		name = submittedName
	}
	return venue.Ref{ID: venue.ID(strings.TrimSpace(created.ID.String())), Name: name}, nil
}

func copyID(value *int64) *int64 {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
