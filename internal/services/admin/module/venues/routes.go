package venues

import (
	"net/http"
	"strings"

	sharedpath "github.com/louisbranch/venuedesk/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/venuedesk/internal/services/shared/route"
)

// Service defines venue and creation wizard handlers consumed by this route module.
type Service interface {
	HandleVenuesPage(w http.ResponseWriter, r *http.Request)
	HandleVenuesTable(w http.ResponseWriter, r *http.Request)
	HandleWizardOpen(w http.ResponseWriter, r *http.Request)
	HandleWizard(w http.ResponseWriter, r *http.Request, runID string)
	HandleWizardMode(w http.ResponseWriter, r *http.Request, runID string)
	HandleWizardVenue(w http.ResponseWriter, r *http.Request, runID string)
	HandleWizardZoneCreate(w http.ResponseWriter, r *http.Request, runID string)
	HandleWizardZoneDelete(w http.ResponseWriter, r *http.Request, runID string, zoneID string)
	HandleWizardProceed(w http.ResponseWriter, r *http.Request, runID string)
	HandleWizardFacilityCreate(w http.ResponseWriter, r *http.Request, runID string)
	HandleWizardAmenityCreate(w http.ResponseWriter, r *http.Request, runID string)
	HandleWizardClose(w http.ResponseWriter, r *http.Request, runID string)
}

// wizardRouteDescriptor matches path parts after "/venues/wizard/".
type wizardRouteDescriptor struct {
	length   int
	literals map[int]string
	method   string
	handle   func(Service, http.ResponseWriter, *http.Request, []string)
}

func (d wizardRouteDescriptor) matches(parts []string) bool {
	if len(parts) != d.length {
		return false
	}
	for index, value := range d.literals {
		if parts[index] != value {
			return false
		}
	}
	return true
}

var wizardRouteDescriptors = []wizardRouteDescriptor{
	{
		length: 1,
		method: http.MethodGet,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleWizard(w, r, parts[0])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: routepath.WizardActionMode},
		method:   http.MethodPost,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleWizardMode(w, r, parts[0])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: routepath.WizardActionVenue},
		method:   http.MethodPost,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleWizardVenue(w, r, parts[0])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: routepath.WizardActionZones},
		method:   http.MethodPost,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleWizardZoneCreate(w, r, parts[0])
		},
	},
	{
		length:   4,
		literals: map[int]string{1: routepath.WizardActionZones, 3: routepath.WizardActionDelete},
		method:   http.MethodPost,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleWizardZoneDelete(w, r, parts[0], parts[2])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: routepath.WizardActionProceed},
		method:   http.MethodPost,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleWizardProceed(w, r, parts[0])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: routepath.WizardActionFacilities},
		method:   http.MethodPost,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleWizardFacilityCreate(w, r, parts[0])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: routepath.WizardActionAmenities},
		method:   http.MethodPost,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleWizardAmenityCreate(w, r, parts[0])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: routepath.WizardActionClose},
		method:   http.MethodPost,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleWizardClose(w, r, parts[0])
		},
	},
}

func dispatchWizardPath(service Service, w http.ResponseWriter, r *http.Request, parts []string) bool {
	return dispatchMostSpecificWizardPath(wizardRouteDescriptors, service, w, r, parts)
}

func dispatchMostSpecificWizardPath(
	descriptors []wizardRouteDescriptor,
	service Service,
	w http.ResponseWriter,
	r *http.Request,
	parts []string,
) bool {
	bestIndex := -1
	bestSpecificity := -1
	for index, descriptor := range descriptors {
		if !descriptor.matches(parts) {
			continue
		}
		specificity := len(descriptor.literals)
		if specificity > bestSpecificity {
			bestSpecificity = specificity
			bestIndex = index
		}
	}
	if bestIndex < 0 {
		return false
	}
	descriptor := descriptors[bestIndex]
	if !sharedroute.RequireMethod(w, r, descriptor.method) {
		return true
	}
	descriptor.handle(service, w, r, parts)
	return true
}

// RegisterRoutes wires venue routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Venues, service.HandleVenuesPage)
	mux.HandleFunc(routepath.VenuesTable, service.HandleVenuesTable)
	mux.HandleFunc(routepath.VenueWizard, func(w http.ResponseWriter, r *http.Request) {
		if !sharedroute.RequireMethod(w, r, http.MethodGet) {
			return
		}
		service.HandleWizardOpen(w, r)
	})
	mux.HandleFunc(routepath.VenuesPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleVenuePath(w, r, service)
	})
}

// HandleVenuePath parses wizard subroutes and dispatches to service handlers.
func HandleVenuePath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.EscapedPath(), routepath.VenuesPrefix)
	parts := sharedpath.SplitEscapedPathParts(path)
	if len(parts) < 2 || parts[0] != "wizard" {
		http.NotFound(w, r)
		return
	}
	if !dispatchWizardPath(service, w, r, parts[1:]) {
		http.NotFound(w, r)
	}
}
