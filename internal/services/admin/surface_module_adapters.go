package admin

import (
	"net/http"

	adminsmodule "github.com/louisbranch/venuedesk/internal/services/admin/module/admins"
	clustersmodule "github.com/louisbranch/venuedesk/internal/services/admin/module/clusters"
	dashboardmodule "github.com/louisbranch/venuedesk/internal/services/admin/module/dashboard"
	sessionmodule "github.com/louisbranch/venuedesk/internal/services/admin/module/session"
	venuesmodule "github.com/louisbranch/venuedesk/internal/services/admin/module/venues"
)

type dashboardModuleService struct {
	handler *Handler
}

func newDashboardModuleService(h *Handler) dashboardmodule.Service {
	if h == nil {
		return nil
	}
	return dashboardModuleService{handler: h}
}

func (s dashboardModuleService) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDashboard(w, r)
}

func (s dashboardModuleService) HandleDashboardContent(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDashboardContent(w, r)
}

type clustersModuleService struct {
	handler *Handler
}

func newClustersModuleService(h *Handler) clustersmodule.Service {
	if h == nil {
		return nil
	}
	return clustersModuleService{handler: h}
}

func (s clustersModuleService) HandleClustersPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleClustersPage(w, r)
}

func (s clustersModuleService) HandleClustersTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleClustersTable(w, r)
}

func (s clustersModuleService) HandleClusterCreate(w http.ResponseWriter, r *http.Request) {
	s.handler.handleClusterCreate(w, r)
}

func (s clustersModuleService) HandleClusterDetail(w http.ResponseWriter, r *http.Request, clusterID int64) {
	s.handler.handleClusterDetail(w, r, clusterID)
}

type venuesModuleService struct {
	handler *Handler
}

func newVenuesModuleService(h *Handler) venuesmodule.Service {
	if h == nil {
		return nil
	}
	return venuesModuleService{handler: h}
}

func (s venuesModuleService) HandleVenuesPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleVenuesPage(w, r)
}

func (s venuesModuleService) HandleVenuesTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleVenuesTable(w, r)
}

func (s venuesModuleService) HandleWizardOpen(w http.ResponseWriter, r *http.Request) {
	s.handler.handleWizardOpen(w, r)
}

func (s venuesModuleService) HandleWizard(w http.ResponseWriter, r *http.Request, runID string) {
	s.handler.handleWizard(w, r, runID)
}

func (s venuesModuleService) HandleWizardMode(w http.ResponseWriter, r *http.Request, runID string) {
	s.handler.handleWizardMode(w, r, runID)
}

func (s venuesModuleService) HandleWizardVenue(w http.ResponseWriter, r *http.Request, runID string) {
	s.handler.handleWizardVenue(w, r, runID)
}

func (s venuesModuleService) HandleWizardZoneCreate(w http.ResponseWriter, r *http.Request, runID string) {
	s.handler.handleWizardZoneCreate(w, r, runID)
}

func (s venuesModuleService) HandleWizardZoneDelete(w http.ResponseWriter, r *http.Request, runID string, zoneID string) {
	s.handler.handleWizardZoneDelete(w, r, runID, zoneID)
}

func (s venuesModuleService) HandleWizardProceed(w http.ResponseWriter, r *http.Request, runID string) {
	s.handler.handleWizardProceed(w, r, runID)
}

func (s venuesModuleService) HandleWizardFacilityCreate(w http.ResponseWriter, r *http.Request, runID string) {
	s.handler.handleWizardFacilityCreate(w, r, runID)
}

func (s venuesModuleService) HandleWizardAmenityCreate(w http.ResponseWriter, r *http.Request, runID string) {
	s.handler.handleWizardAmenityCreate(w, r, runID)
}

func (s venuesModuleService) HandleWizardClose(w http.ResponseWriter, r *http.Request, runID string) {
	s.handler.handleWizardClose(w, r, runID)
}

type adminsModuleService struct {
	handler *Handler
}

func newAdminsModuleService(h *Handler) adminsmodule.Service {
	if h == nil {
		return nil
	}
	return adminsModuleService{handler: h}
}

func (s adminsModuleService) HandleAdminsPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleAdminsPage(w, r)
}

func (s adminsModuleService) HandleAdminsTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleAdminsTable(w, r)
}

func (s adminsModuleService) HandleAdminCreate(w http.ResponseWriter, r *http.Request) {
	s.handler.handleAdminCreate(w, r)
}

type sessionModuleService struct {
	handler *Handler
}

func newSessionModuleService(h *Handler) sessionmodule.Service {
	if h == nil {
		return nil
	}
	return sessionModuleService{handler: h}
}

func (s sessionModuleService) HandleLogout(w http.ResponseWriter, r *http.Request) {
	s.handler.handleLogout(w, r)
}
