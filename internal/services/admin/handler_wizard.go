package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/venuedesk/internal/platform/eventbus"
	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	"github.com/louisbranch/venuedesk/internal/platform/requestctx"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/templates"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/facilitystep"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/geofence"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/venuestep"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/zonestep"
	sharedhtmx "github.com/louisbranch/venuedesk/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

// wizardInput carries submitted values back into the re-rendered step.
type wizardInput struct {
	message        string
	venueForm      *venuestep.Form
	venueErrors    venue.FieldErrors
	zoneForm       zonestep.Form
	zoneErrors     venue.FieldErrors
	facilityForm   facilitystep.FacilityForm
	facilityErrors venue.FieldErrors
	amenityName    string
	amenityErrors  venue.FieldErrors
}

// handleWizardOpen starts a wizard run for the console session and sends the
// browser to it.
func (h *Handler) handleWizardOpen(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	defaultClusterID, err := parseOptionalClusterID(query.Get(routepath.QueryDefaultClusterID))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	presetClusterID, err := parseOptionalClusterID(query.Get(routepath.QueryPresetClusterID))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if presetClusterID != nil {
		ctx, cancel := directoryContext(r)
		_, err := h.directory.GetCluster(ctx, *presetClusterID)
		cancel()
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				err = platformerrors.Wrap(platformerrors.CodeDirectoryUnavailable, "get preset cluster", err)
			}
			h.renderError(w, r, err)
			return
		}
	}

	sessionID := requestctx.SessionIDFromContext(r.Context())
	run, err := h.wizards.Open(sessionID, h.directory, venuewizard.Props{
		DefaultClusterID: defaultClusterID,
		PresetClusterID:  presetClusterID,
		OnSuccess: func(ref venue.Ref) {
			h.publishVenueCreated(sessionID, ref)
		},
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	sharedhtmx.Redirect(w, r, routepath.WizardRun(run.ID))
}

// handleWizard renders the current step of a run.
func (h *Handler) handleWizard(w http.ResponseWriter, r *http.Request, runID string) {
	run, ok := h.loadRun(w, r, runID)
	if !ok {
		return
	}
	h.renderWizard(w, r, run, wizardInput{})
}

// handleWizardMode switches the geometry capture mode of the venue step.
func (h *Handler) handleWizardMode(w http.ResponseWriter, r *http.Request, runID string) {
	run, ok := h.loadRunForPost(w, r, runID)
	if !ok {
		return
	}
	mode, err := geofence.ParseMode(r.PostFormValue("mode"))
	if err != nil {
		h.renderError(w, r, platformerrors.Wrap(platformerrors.CodeVenueInvalid, "parse geometry mode", err))
		return
	}
	if err := run.Wizard.SetGeometryMode(mode); err != nil {
		h.renderError(w, r, err)
		return
	}
	form := venuestep.ParseForm(r.PostForm)
	h.renderWizard(w, r, run, wizardInput{venueForm: &form})
}

// handleWizardVenue submits the venue details step.
func (h *Handler) handleWizardVenue(w http.ResponseWriter, r *http.Request, runID string) {
	run, ok := h.loadRunForPost(w, r, runID)
	if !ok {
		return
	}
	loc, _ := h.localizer(w, r)
	if raw := strings.TrimSpace(r.PostFormValue("mode")); raw != "" {
		mode, err := geofence.ParseMode(raw)
		if err == nil {
			err = run.Wizard.SetGeometryMode(mode)
		}
		if err != nil {
			h.renderError(w, r, err)
			return
		}
	}

	form := venuestep.ParseForm(r.PostForm)
	// The creation is not abandoned when the browser goes away.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), directoryRequestTimeout)
	defer cancel()

	ref, fields, err := run.Wizard.SubmitVenue(ctx, form)
	switch {
	case fields.Has():
		h.renderWizard(w, r, run, wizardInput{venueForm: &form, venueErrors: fields})
		return
	case platformerrors.CodeOf(err) == platformerrors.CodeVenueSubmissionFailed:
		log.Printf("admin wizard create venue: %v", err)
		h.renderWizard(w, r, run, wizardInput{venueForm: &form, message: errorMessage(loc, err)})
		return
	case err != nil:
		h.renderError(w, r, err)
		return
	}

	log.Printf("admin wizard created venue %s", ref.ID)
	sharedhtmx.Trigger(w, eventVenuesChanged)
	if !run.Wizard.IsOpen() {
		renderFragment(w, r, templates.WizardClosed(loc), http.StatusOK)
		return
	}
	h.renderWizard(w, r, run, wizardInput{})
}

// handleWizardZoneCreate adds a zone to the run's venue.
func (h *Handler) handleWizardZoneCreate(w http.ResponseWriter, r *http.Request, runID string) {
	run, ok := h.loadRunForPost(w, r, runID)
	if !ok {
		return
	}
	step, err := run.Wizard.ZoneStep()
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	loc, _ := h.localizer(w, r)
	form := zonestep.ParseForm(r.PostForm)

	ctx, cancel := directoryContext(r)
	defer cancel()
	_, fields, err := step.AddZone(ctx, form)
	switch {
	case fields.Has():
		h.renderWizard(w, r, run, wizardInput{zoneForm: form, zoneErrors: fields})
	case err != nil:
		log.Printf("admin wizard add zone: %v", err)
		h.renderWizard(w, r, run, wizardInput{zoneForm: form, message: directoryMessage(loc, err)})
	default:
		h.renderWizard(w, r, run, wizardInput{})
	}
}

// handleWizardZoneDelete removes a zone from the run's venue.
func (h *Handler) handleWizardZoneDelete(w http.ResponseWriter, r *http.Request, runID string, zoneID string) {
	run, ok := h.loadRunForPost(w, r, runID)
	if !ok {
		return
	}
	step, err := run.Wizard.ZoneStep()
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	loc, _ := h.localizer(w, r)

	ctx, cancel := directoryContext(r)
	defer cancel()
	if err := step.RemoveZone(ctx, zoneID); err != nil {
		log.Printf("admin wizard remove zone: %v", err)
		h.renderWizard(w, r, run, wizardInput{message: directoryMessage(loc, err)})
		return
	}
	h.renderWizard(w, r, run, wizardInput{})
}

// handleWizardProceed moves the run from zones to facilities.
func (h *Handler) handleWizardProceed(w http.ResponseWriter, r *http.Request, runID string) {
	run, ok := h.loadRunForPost(w, r, runID)
	if !ok {
		return
	}
	if err := run.Wizard.ProceedToFacilities(); err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderWizard(w, r, run, wizardInput{})
}

// handleWizardFacilityCreate adds a facility to the run's venue.
func (h *Handler) handleWizardFacilityCreate(w http.ResponseWriter, r *http.Request, runID string) {
	run, ok := h.loadRunForPost(w, r, runID)
	if !ok {
		return
	}
	step, err := run.Wizard.FacilityStep()
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	loc, _ := h.localizer(w, r)
	form := facilitystep.ParseFacilityForm(r.PostForm)

	ctx, cancel := directoryContext(r)
	defer cancel()
	_, fields, err := step.AddFacility(ctx, form)
	switch {
	case fields.Has():
		h.renderWizard(w, r, run, wizardInput{facilityForm: form, facilityErrors: fields})
	case err != nil:
		log.Printf("admin wizard add facility: %v", err)
		h.renderWizard(w, r, run, wizardInput{facilityForm: form, message: directoryMessage(loc, err)})
	default:
		h.renderWizard(w, r, run, wizardInput{})
	}
}

// handleWizardAmenityCreate adds an amenity to the run's venue.
func (h *Handler) handleWizardAmenityCreate(w http.ResponseWriter, r *http.Request, runID string) {
	run, ok := h.loadRunForPost(w, r, runID)
	if !ok {
		return
	}
	step, err := run.Wizard.FacilityStep()
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	loc, _ := h.localizer(w, r)
	name := facilitystep.ParseAmenityName(r.PostForm)

	ctx, cancel := directoryContext(r)
	defer cancel()
	_, fields, err := step.AddAmenity(ctx, name)
	switch {
	case fields.Has():
		h.renderWizard(w, r, run, wizardInput{amenityName: name, amenityErrors: fields})
	case err != nil:
		log.Printf("admin wizard add amenity: %v", err)
		h.renderWizard(w, r, run, wizardInput{amenityName: name, message: directoryMessage(loc, err)})
	default:
		h.renderWizard(w, r, run, wizardInput{})
	}
}

// handleWizardClose closes and forgets the run.
func (h *Handler) handleWizardClose(w http.ResponseWriter, r *http.Request, runID string) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	sessionID := requestctx.SessionIDFromContext(r.Context())
	if err := h.wizards.Close(sessionID, runID); err != nil {
		h.renderError(w, r, err)
		return
	}
	if !sharedhtmx.IsHTMXRequest(r) {
		http.Redirect(w, r, routepath.Venues, http.StatusSeeOther)
		return
	}
	sharedhtmx.Trigger(w, eventWizardClosed)
	renderFragment(w, r, templates.WizardClosed(loc), http.StatusOK)
}

func (h *Handler) loadRun(w http.ResponseWriter, r *http.Request, runID string) (venuewizard.Run, bool) {
	run, err := h.wizards.Get(requestctx.SessionIDFromContext(r.Context()), runID)
	if err != nil {
		h.renderError(w, r, err)
		return venuewizard.Run{}, false
	}
	return run, true
}

func (h *Handler) loadRunForPost(w http.ResponseWriter, r *http.Request, runID string) (venuewizard.Run, bool) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return venuewizard.Run{}, false
	}
	if !parseForm(w, r, loc) {
		return venuewizard.Run{}, false
	}
	return h.loadRun(w, r, runID)
}

// renderWizard renders the run's current step: the panel for htmx requests,
// the full page otherwise.
func (h *Handler) renderWizard(w http.ResponseWriter, r *http.Request, run venuewizard.Run, input wizardInput) {
	loc, lang := h.localizer(w, r)
	ctx, cancel := directoryContext(r)
	defer cancel()

	view, err := h.buildWizardView(ctx, run, loc, input)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if sharedhtmx.IsHTMXRequest(r) {
		renderFragment(w, r, templates.WizardPanel(view, loc), http.StatusOK)
		return
	}
	renderPage(w, r, templates.WizardPage(h.pageContext(lang, loc, r), view), loc.Sprintf("wizard.title"))
}

func (h *Handler) buildWizardView(ctx context.Context, run venuewizard.Run, loc *message.Printer, input wizardInput) (templates.WizardView, error) {
	snapshot := run.Wizard.Snapshot()
	if !snapshot.Open {
		return templates.WizardView{}, platformerrors.New(platformerrors.CodeWizardClosed, "wizard is closed")
	}
	view := templates.WizardView{RunID: run.ID, Message: input.message}
	if snapshot.State != nil {
		view.Step = int(snapshot.State.Step())
	}

	switch state := snapshot.State.(type) {
	case venuewizard.VenueDetailsState:
		step, err := run.Wizard.VenueStep()
		if err != nil {
			return templates.WizardView{}, err
		}
		form := step.InitialForm()
		if input.venueForm != nil {
			form = *input.venueForm
		}
		if snapshot.PresetClusterID != nil {
			form.ClusterID = strconv.FormatInt(*snapshot.PresetClusterID, 10)
		}
		clusters, err := h.directory.ListClusters(ctx)
		if err != nil {
			log.Printf("list clusters for wizard: %v", err)
		}
		view.Venue = templates.VenueStepView{
			Mode:           snapshot.Mode,
			Form:           form,
			Errors:         input.venueErrors,
			ClusterLocked:  step.ClusterLocked(),
			ClusterOptions: clusterOptions(clusters),
			Submitting:     snapshot.Submitting,
		}

	case venuewizard.ZoneConfigState:
		step, err := run.Wizard.ZoneStep()
		if err != nil {
			return templates.WizardView{}, err
		}
		zones, err := step.Zones(ctx)
		if err != nil {
			return templates.WizardView{}, platformerrors.Wrap(platformerrors.CodeDirectoryUnavailable, "list zones", err)
		}
		view.VenueName = state.Venue.Name
		view.Zones = templates.ZoneStepView{Form: input.zoneForm, Errors: input.zoneErrors}
		for _, zone := range zones {
			view.Zones.Zones = append(view.Zones.Zones, templates.ZoneRow{
				ID:          zone.ID,
				Name:        zone.Name,
				Slug:        zone.Slug,
				Capacity:    strconv.Itoa(zone.Capacity),
				Description: zone.Description,
			})
		}

	case venuewizard.FacilityConfigState:
		facilityView, err := h.buildFacilityStepView(ctx, run, loc, input)
		if err != nil {
			return templates.WizardView{}, err
		}
		view.VenueName = state.Venue.Name
		view.Facilities = facilityView
	}
	return view, nil
}

func (h *Handler) buildFacilityStepView(ctx context.Context, run venuewizard.Run, loc *message.Printer, input wizardInput) (templates.FacilityStepView, error) {
	step, err := run.Wizard.FacilityStep()
	if err != nil {
		return templates.FacilityStepView{}, err
	}
	zones, err := step.Zones(ctx)
	if err != nil {
		return templates.FacilityStepView{}, platformerrors.Wrap(platformerrors.CodeDirectoryUnavailable, "list zones", err)
	}
	amenities, err := step.Amenities(ctx)
	if err != nil {
		return templates.FacilityStepView{}, platformerrors.Wrap(platformerrors.CodeDirectoryUnavailable, "list amenities", err)
	}
	facilities, err := step.Facilities(ctx)
	if err != nil {
		return templates.FacilityStepView{}, platformerrors.Wrap(platformerrors.CodeDirectoryUnavailable, "list facilities", err)
	}

	view := templates.FacilityStepView{
		Form:          input.facilityForm,
		Errors:        input.facilityErrors,
		AmenityName:   input.amenityName,
		AmenityErrors: input.amenityErrors,
	}
	for _, kind := range venue.FacilityKinds() {
		view.KindOptions = append(view.KindOptions, templates.Option{Value: string(kind), Label: formatFacilityKind(kind, loc)})
	}
	zoneNames := make(map[string]string, len(zones))
	for _, zone := range zones {
		zoneNames[zone.ID] = zone.Name
		view.ZoneOptions = append(view.ZoneOptions, templates.Option{Value: zone.ID, Label: zone.Name})
	}
	amenityNames := make(map[string]string, len(amenities))
	for _, amenity := range amenities {
		amenityNames[amenity.ID] = amenity.Name
		view.Amenities = append(view.Amenities, amenity.Name)
		view.AmenityOptions = append(view.AmenityOptions, templates.Option{Value: amenity.ID, Label: amenity.Name})
	}
	for _, facility := range facilities {
		view.Facilities = append(view.Facilities, templates.FacilityRow{
			ID:        facility.ID,
			Name:      facility.Name,
			Kind:      formatFacilityKind(facility.Kind, loc),
			Capacity:  strconv.Itoa(facility.Capacity),
			Zones:     joinNames(facility.ZoneIDs, zoneNames),
			Amenities: joinNames(facility.AmenityIDs, amenityNames),
		})
	}
	return view, nil
}

// publishVenueCreated announces a venue created by a session's wizard. It
// runs as the wizard's success callback, so a creation that finishes after the
// run was closed is still announced.
func (h *Handler) publishVenueCreated(sessionID string, ref venue.Ref) {
	if h.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), directoryRequestTimeout)
	defer cancel()

	event := eventbus.VenueCreated{
		VenueID:   ref.ID.String(),
		VenueName: ref.Name,
		SessionID: sessionID,
		CreatedAt: h.now().UTC(),
	}
	created, err := h.directory.GetVenue(ctx, ref.ID)
	if err != nil {
		log.Printf("load created venue %s: %v", ref.ID, err)
	} else {
		event.ClusterID = created.ClusterID
	}
	if err := h.events.PublishVenueCreated(ctx, event); err != nil {
		log.Printf("publish venue created: %v", err)
	}
}

// directoryMessage localizes a step failure; unknown failures read as an
// unavailable directory.
func directoryMessage(loc *message.Printer, err error) string {
	code := platformerrors.CodeOf(err)
	if code == platformerrors.CodeUnknown {
		code = platformerrors.CodeDirectoryUnavailable
	}
	return loc.Sprintf(code.MessageKey())
}

func joinNames(ids []string, names map[string]string) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			labels = append(labels, name)
			continue
		}
		labels = append(labels, id)
	}
	return strings.Join(labels, ", ")
}
