package venues

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
	lastRun  string
	lastZone string
}

func (f *fakeService) HandleVenuesPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "venues_page"
}

func (f *fakeService) HandleVenuesTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "venues_table"
}

func (f *fakeService) HandleWizardOpen(http.ResponseWriter, *http.Request) {
	f.lastCall = "wizard_open"
}

func (f *fakeService) HandleWizard(_ http.ResponseWriter, _ *http.Request, runID string) {
	f.lastCall = "wizard"
	f.lastRun = runID
}

func (f *fakeService) HandleWizardMode(_ http.ResponseWriter, _ *http.Request, runID string) {
	f.lastCall = "wizard_mode"
	f.lastRun = runID
}

func (f *fakeService) HandleWizardVenue(_ http.ResponseWriter, _ *http.Request, runID string) {
	f.lastCall = "wizard_venue"
	f.lastRun = runID
}

func (f *fakeService) HandleWizardZoneCreate(_ http.ResponseWriter, _ *http.Request, runID string) {
	f.lastCall = "wizard_zone_create"
	f.lastRun = runID
}

func (f *fakeService) HandleWizardZoneDelete(_ http.ResponseWriter, _ *http.Request, runID string, zoneID string) {
	f.lastCall = "wizard_zone_delete"
	f.lastRun = runID
	f.lastZone = zoneID
}

func (f *fakeService) HandleWizardProceed(_ http.ResponseWriter, _ *http.Request, runID string) {
	f.lastCall = "wizard_proceed"
	f.lastRun = runID
}

func (f *fakeService) HandleWizardFacilityCreate(_ http.ResponseWriter, _ *http.Request, runID string) {
	f.lastCall = "wizard_facility_create"
	f.lastRun = runID
}

func (f *fakeService) HandleWizardAmenityCreate(_ http.ResponseWriter, _ *http.Request, runID string) {
	f.lastCall = "wizard_amenity_create"
	f.lastRun = runID
}

func (f *fakeService) HandleWizardClose(_ http.ResponseWriter, _ *http.Request, runID string) {
	f.lastCall = "wizard_close"
	f.lastRun = runID
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		method   string
		path     string
		wantCode int
		wantCall string
		wantRun  string
		wantZone string
	}{
		{method: http.MethodGet, path: "/venues", wantCode: http.StatusOK, wantCall: "venues_page"},
		{method: http.MethodGet, path: "/venues/table", wantCode: http.StatusOK, wantCall: "venues_table"},
		{method: http.MethodGet, path: "/venues/wizard", wantCode: http.StatusOK, wantCall: "wizard_open"},
		{method: http.MethodPost, path: "/venues/wizard", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/venues/wizard/run-1", wantCode: http.StatusOK, wantCall: "wizard", wantRun: "run-1"},
		{method: http.MethodPost, path: "/venues/wizard/run-1/mode", wantCode: http.StatusOK, wantCall: "wizard_mode", wantRun: "run-1"},
		{method: http.MethodPost, path: "/venues/wizard/run-1/venue", wantCode: http.StatusOK, wantCall: "wizard_venue", wantRun: "run-1"},
		{method: http.MethodPost, path: "/venues/wizard/run-1/zones", wantCode: http.StatusOK, wantCall: "wizard_zone_create", wantRun: "run-1"},
		{method: http.MethodPost, path: "/venues/wizard/run-1/zones/zone-9/delete", wantCode: http.StatusOK, wantCall: "wizard_zone_delete", wantRun: "run-1", wantZone: "zone-9"},
		{method: http.MethodPost, path: "/venues/wizard/run-1/zones/zone%2F9/delete", wantCode: http.StatusOK, wantCall: "wizard_zone_delete", wantRun: "run-1", wantZone: "zone/9"},
		{method: http.MethodPost, path: "/venues/wizard/run-1/proceed", wantCode: http.StatusOK, wantCall: "wizard_proceed", wantRun: "run-1"},
		{method: http.MethodPost, path: "/venues/wizard/run-1/facilities", wantCode: http.StatusOK, wantCall: "wizard_facility_create", wantRun: "run-1"},
		{method: http.MethodPost, path: "/venues/wizard/run-1/amenities", wantCode: http.StatusOK, wantCall: "wizard_amenity_create", wantRun: "run-1"},
		{method: http.MethodPost, path: "/venues/wizard/run-1/close", wantCode: http.StatusOK, wantCall: "wizard_close", wantRun: "run-1"},
		{method: http.MethodGet, path: "/venues/wizard/run-1/close", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodPost, path: "/venues/wizard/run-1", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/venues/wizard/run-1/", wantCode: http.StatusMovedPermanently},
		{method: http.MethodPost, path: "/venues/wizard/run-1/unknown", wantCode: http.StatusNotFound},
		{method: http.MethodGet, path: "/venues/ven-1", wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			svc.lastCall = ""
			svc.lastRun = ""
			svc.lastZone = ""

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastRun != tc.wantRun {
				t.Fatalf("lastRun = %q, want %q", svc.lastRun, tc.wantRun)
			}
			if svc.lastZone != tc.wantZone {
				t.Fatalf("lastZone = %q, want %q", svc.lastZone, tc.wantZone)
			}
		})
	}
}

func TestHandleVenuePathWithoutServiceReturnsNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/venues/wizard/run-1", nil)
	rec := httptest.NewRecorder()
	HandleVenuePath(rec, req, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRegisterRoutesIgnoresNilInputs(t *testing.T) {
	t.Parallel()

	RegisterRoutes(nil, &fakeService{})
	RegisterRoutes(http.NewServeMux(), nil)
}
