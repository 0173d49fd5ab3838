package templates

import (
	"strconv"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/facilitystep"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/geofence"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/venuestep"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/zonestep"
)

// WizardPanelID is the element every wizard form swaps.
const WizardPanelID = "venue-wizard"

const wizardTarget = "#" + WizardPanelID

// WizardView is one render of a wizard run. Exactly one of the step views is
// used, chosen by Step.
type WizardView struct {
	RunID     string
	Step      int
	VenueName string
	// Message is an already localized banner, usually a submission failure.
	Message    string
	Venue      VenueStepView
	Zones      ZoneStepView
	Facilities FacilityStepView
}

// VenueStepView renders the venue details form.
type VenueStepView struct {
	Mode           geofence.Mode
	Form           venuestep.Form
	Errors         map[string]string
	ClusterLocked  bool
	ClusterOptions []Option
	Submitting     bool
}

// ZoneRow is one configured zone.
type ZoneRow struct {
	ID          string
	Name        string
	Slug        string
	Capacity    string
	Description string
}

// ZoneStepView renders zone configuration.
type ZoneStepView struct {
	Zones  []ZoneRow
	Form   zonestep.Form
	Errors map[string]string
}

// FacilityRow is one configured facility.
type FacilityRow struct {
	ID        string
	Name      string
	Kind      string
	Capacity  string
	Zones     string
	Amenities string
}

// FacilityStepView renders facility and amenity configuration.
type FacilityStepView struct {
	Facilities     []FacilityRow
	Amenities      []string
	Form           facilitystep.FacilityForm
	Errors         map[string]string
	KindOptions    []Option
	ZoneOptions    []Option
	AmenityOptions []Option
	AmenityName    string
	AmenityErrors  map[string]string
}

// WizardPage renders a wizard run inside the console chrome.
func WizardPage(page PageContext, view WizardView) templ.Component {
	return Page(page, T(page.Loc, "wizard.title"), nil, WizardPanel(view, page.Loc))
}

// WizardPanel renders the swappable wizard panel for the current step.
func WizardPanel(view WizardView, loc Localizer) templ.Component {
	return component(func(m *Markup) {
		m.Raw(`<section class="wizard"`).Attr("id", WizardPanelID).Attr("data-run-id", view.RunID).
			Attr("data-step", strconv.Itoa(view.Step)).Raw(">")
		renderWizardHeader(m, view, loc)
		renderAlert(m, view.Message, "error")
		switch view.Step {
		case 2:
			renderZoneStep(m, view, loc)
		case 3:
			renderFacilityStep(m, view, loc)
		default:
			renderVenueStep(m, view, loc)
		}
		m.Raw("</section>")
	})
}

// WizardClosed replaces the panel after close; the client animates it out.
func WizardClosed(loc Localizer) templ.Component {
	return component(func(m *Markup) {
		m.Raw(`<section class="wizard wizard-closing" data-state="closed"`).Attr("id", WizardPanelID).Raw(">").
			Raw(`<p>`).Text(T(loc, "wizard.closed")).Raw(`</p><a class="btn btn-sm"`).Attr("href", routepath.Venues).Raw(">").
			Text(T(loc, "venues.title")).Raw("</a></section>")
	})
}

func renderWizardHeader(m *Markup, view WizardView, loc Localizer) {
	steps := []string{"wizard.step.venue", "wizard.step.zones", "wizard.step.facilities"}
	m.Raw(`<div class="wizard-header"><ol class="steps">`)
	for i, key := range steps {
		class := "step"
		if i+1 <= view.Step {
			class = "step step-primary"
		}
		m.Raw("<li").Attr("class", class).AttrIf(i+1 == view.Step, "aria-current", "step").Raw(">").Text(T(loc, key)).Raw("</li>")
	}
	m.Raw("</ol>")
	if view.VenueName != "" {
		m.Raw(`<p class="wizard-venue">`).Text(view.VenueName).Raw("</p>")
	}
	m.Raw(`<form class="wizard-close" method="POST"`).Attr("action", routepath.WizardClose(view.RunID)).
		Attr("hx-post", routepath.WizardClose(view.RunID)).Attr("hx-target", wizardTarget).
		Raw(` hx-swap="outerHTML swap:300ms"><button type="submit" class="btn btn-ghost btn-sm">`).
		Text(T(loc, "wizard.action.close")).Raw("</button></form></div>")
}

func renderVenueStep(m *Markup, view WizardView, loc Localizer) {
	step := view.Venue
	form := step.Form

	m.Raw(`<form id="wizard-mode" method="POST"`).Attr("action", routepath.WizardMode(view.RunID)).
		Attr("hx-post", routepath.WizardMode(view.RunID)).Attr("hx-target", wizardTarget).
		Raw(` hx-swap="outerHTML" hx-trigger="change" hx-include="#venue-form"><fieldset class="mode-selector"><legend>`).
		Text(T(loc, "wizard.mode.label")).Raw("</legend>")
	for _, mode := range []geofence.Mode{geofence.Radius, geofence.Polygon} {
		m.Raw(`<label class="label cursor-pointer"><input type="radio" name="mode" class="radio"`).
			Attr("value", mode.String()).Flag(step.Mode == mode, "checked").Raw("><span>").
			Text(T(loc, "wizard.mode."+mode.String())).Raw("</span></label>")
	}
	m.Raw("</fieldset></form>")

	htmxForm(m, "venue-form", routepath.WizardVenue(view.RunID), wizardTarget)
	hiddenInput(m, "mode", step.Mode.String())
	renderField(m, loc, "venue", Field{Name: venuestep.FieldName, Label: T(loc, "venues.field.name"), Value: form.Name, Error: step.Errors[venuestep.FieldName], Required: true})
	renderField(m, loc, "venue", Field{Name: venuestep.FieldAddress, Label: T(loc, "venues.field.address"), Value: form.Address, Error: step.Errors[venuestep.FieldAddress], Required: true})
	renderField(m, loc, "venue", Field{Name: venuestep.FieldCity, Label: T(loc, "venues.field.city"), Value: form.City, Error: step.Errors[venuestep.FieldCity]})
	renderField(m, loc, "venue", Field{Name: venuestep.FieldDescription, Label: T(loc, "venues.field.description"), Type: "textarea", Value: form.Description, Error: step.Errors[venuestep.FieldDescription]})

	clusterOptions := append([]Option{{Value: "", Label: T(loc, "venues.field.no_cluster")}}, markSelected(step.ClusterOptions, form.ClusterID)...)
	renderField(m, loc, "venue", Field{
		Name:     venuestep.FieldCluster,
		Label:    T(loc, "venues.field.cluster"),
		Type:     "select",
		Options:  clusterOptions,
		Error:    step.Errors[venuestep.FieldCluster],
		Disabled: step.ClusterLocked,
	})
	if step.ClusterLocked {
		hiddenInput(m, venuestep.FieldCluster, form.ClusterID)
	}

	latitudeRequired := step.Mode == geofence.Radius
	renderField(m, loc, "venue", Field{Name: venuestep.FieldLatitude, Label: T(loc, "venues.field.latitude"), Type: "number", Value: form.Latitude, Error: step.Errors[venuestep.FieldLatitude], Required: latitudeRequired})
	renderField(m, loc, "venue", Field{Name: venuestep.FieldLongitude, Label: T(loc, "venues.field.longitude"), Type: "number", Value: form.Longitude, Error: step.Errors[venuestep.FieldLongitude], Required: latitudeRequired})
	if step.Mode == geofence.Polygon {
		renderField(m, loc, "venue", Field{Name: venuestep.FieldPolygon, Label: T(loc, "venues.field.polygon"), Type: "textarea", Value: form.Polygon, Placeholder: "-23.55,-46.63; -23.56,-46.64; -23.57,-46.62", Error: step.Errors[venuestep.FieldPolygon], Required: true})
	} else {
		renderField(m, loc, "venue", Field{Name: venuestep.FieldRadius, Label: T(loc, "venues.field.radius"), Type: "number", Value: form.Radius, Error: step.Errors[venuestep.FieldRadius], Required: true})
	}
	label := T(loc, "wizard.action.create_venue")
	if step.Submitting {
		label = T(loc, "wizard.submitting")
	}
	submitButton(m, label, step.Submitting)
	m.Raw("</form>")
}

func renderZoneStep(m *Markup, view WizardView, loc Localizer) {
	step := view.Zones
	m.Raw(`<div class="wizard-zones"><h2>`).Text(T(loc, "wizard.zones.heading")).Raw("</h2>")
	if len(step.Zones) == 0 {
		m.Raw(`<p class="empty">`).Text(T(loc, "wizard.zones.empty")).Raw("</p>")
	} else {
		m.Raw(`<ul class="zone-list">`)
		for _, zone := range step.Zones {
			deleteURL := routepath.WizardZoneDelete(view.RunID, zone.ID)
			m.Raw("<li").Attr("data-zone-id", zone.ID).Raw("><strong>").Text(zone.Name).Raw("</strong> <code>").Text(zone.Slug).
				Raw("</code> <span>").Text(T(loc, "wizard.zones.capacity", zone.Capacity)).Raw("</span>")
			m.Raw(`<form method="POST" class="inline"`).Attr("action", deleteURL).Attr("hx-post", deleteURL).
				Attr("hx-target", wizardTarget).Raw(` hx-swap="outerHTML"><button type="submit" class="btn btn-ghost btn-xs">`).
				Text(T(loc, "wizard.action.delete")).Raw("</button></form></li>")
		}
		m.Raw("</ul>")
	}

	htmxForm(m, "zone-form", routepath.WizardZones(view.RunID), wizardTarget)
	renderField(m, loc, "zone", Field{Name: zonestep.FieldName, Label: T(loc, "zones.field.name"), Value: step.Form.Name, Error: step.Errors[zonestep.FieldName], Required: true})
	renderField(m, loc, "zone", Field{Name: zonestep.FieldCapacity, Label: T(loc, "zones.field.capacity"), Type: "number", Value: step.Form.Capacity, Error: step.Errors[zonestep.FieldCapacity]})
	renderField(m, loc, "zone", Field{Name: zonestep.FieldDescription, Label: T(loc, "zones.field.description"), Type: "textarea", Value: step.Form.Description, Error: step.Errors[zonestep.FieldDescription]})
	submitButton(m, T(loc, "wizard.action.add_zone"), false)
	m.Raw("</form>")

	m.Raw(`<form id="zone-proceed" method="POST"`).Attr("action", routepath.WizardProceed(view.RunID)).
		Attr("hx-post", routepath.WizardProceed(view.RunID)).Attr("hx-target", wizardTarget).
		Raw(` hx-swap="outerHTML"><button type="submit" class="btn btn-secondary">`).
		Text(T(loc, "wizard.action.proceed")).Raw("</button></form></div>")
}

func renderFacilityStep(m *Markup, view WizardView, loc Localizer) {
	step := view.Facilities
	m.Raw(`<div class="wizard-facilities"><h2>`).Text(T(loc, "wizard.facilities.heading")).Raw("</h2>")
	if len(step.Facilities) == 0 {
		m.Raw(`<p class="empty">`).Text(T(loc, "wizard.facilities.empty")).Raw("</p>")
	} else {
		m.Raw(`<table class="table"><thead><tr><th>`).Text(T(loc, "facilities.field.name")).
			Raw("</th><th>").Text(T(loc, "facilities.field.kind")).
			Raw("</th><th>").Text(T(loc, "facilities.field.capacity")).
			Raw("</th><th>").Text(T(loc, "facilities.field.zones")).
			Raw("</th><th>").Text(T(loc, "facilities.field.amenities")).
			Raw("</th></tr></thead><tbody>")
		for _, facility := range step.Facilities {
			m.Raw("<tr").Attr("data-facility-id", facility.ID).Raw("><td>").Text(facility.Name).
				Raw("</td><td>").Text(facility.Kind).
				Raw("</td><td>").Text(facility.Capacity).
				Raw("</td><td>").Text(facility.Zones).
				Raw("</td><td>").Text(facility.Amenities).Raw("</td></tr>")
		}
		m.Raw("</tbody></table>")
	}

	htmxForm(m, "facility-form", routepath.WizardFacilities(view.RunID), wizardTarget)
	renderField(m, loc, "facility", Field{Name: facilitystep.FieldName, Label: T(loc, "facilities.field.name"), Value: step.Form.Name, Error: step.Errors[facilitystep.FieldName], Required: true})
	renderField(m, loc, "facility", Field{Name: facilitystep.FieldKind, Label: T(loc, "facilities.field.kind"), Type: "select", Options: markSelected(step.KindOptions, step.Form.Kind), Error: step.Errors[facilitystep.FieldKind], Required: true})
	renderField(m, loc, "facility", Field{Name: facilitystep.FieldCapacity, Label: T(loc, "facilities.field.capacity"), Type: "number", Value: step.Form.Capacity, Error: step.Errors[facilitystep.FieldCapacity]})
	renderField(m, loc, "facility", Field{Name: facilitystep.FieldZones, Label: T(loc, "facilities.field.zones"), Type: "select", Multiple: true, Options: markAll(step.ZoneOptions, step.Form.ZoneIDs), Error: step.Errors[facilitystep.FieldZones]})
	renderField(m, loc, "facility", Field{Name: facilitystep.FieldAmenities, Label: T(loc, "facilities.field.amenities"), Type: "select", Multiple: true, Options: markAll(step.AmenityOptions, step.Form.AmenityIDs), Error: step.Errors[facilitystep.FieldAmenities]})
	submitButton(m, T(loc, "wizard.action.add_facility"), false)
	m.Raw("</form>")

	m.Raw(`<div class="amenities"><h3>`).Text(T(loc, "wizard.amenities.heading")).Raw("</h3>")
	if len(step.Amenities) > 0 {
		m.Raw(`<ul class="amenity-list">`)
		for _, name := range step.Amenities {
			m.Raw("<li>").Text(name).Raw("</li>")
		}
		m.Raw("</ul>")
	}
	htmxForm(m, "amenity-form", routepath.WizardAmenities(view.RunID), wizardTarget)
	renderField(m, loc, "amenity", Field{Name: facilitystep.FieldAmenityNew, Label: T(loc, "amenities.field.name"), Value: step.AmenityName, Error: step.AmenityErrors[facilitystep.FieldAmenityNew], Required: true})
	submitButton(m, T(loc, "wizard.action.add_amenity"), false)
	m.Raw("</form></div></div>")
}

// markAll copies options, selecting every value in values.
func markAll(options []Option, values []string) []Option {
	selected := make(map[string]bool, len(values))
	for _, value := range values {
		selected[value] = true
	}
	out := make([]Option, len(options))
	for i, option := range options {
		option.Selected = selected[option.Value]
		out[i] = option
	}
	return out
}
