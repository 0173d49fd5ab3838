package admin

import (
	"log"
	"net/http"

	"github.com/louisbranch/venuedesk/internal/services/admin/templates"
)

// handleDashboard renders the dashboard shell.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	renderPage(w, r, templates.DashboardPage(h.pageContext(lang, loc, r)), loc.Sprintf("dashboard.title"))
}

// handleDashboardContent loads directory totals for the dashboard.
func (h *Handler) handleDashboardContent(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	ctx, cancel := directoryContext(r)
	defer cancel()

	counts, err := h.directory.Counts(ctx)
	if err != nil {
		log.Printf("dashboard counts: %v", err)
		renderFragment(w, r, templates.DashboardContent(templates.DashboardStats{}, loc.Sprintf("dashboard.unavailable"), loc), http.StatusOK)
		return
	}
	admins, err := h.admins.CountAdmins(ctx)
	if err != nil {
		log.Printf("dashboard admin count: %v", err)
	} else {
		counts.Admins = admins
	}

	stats := templates.DashboardStats{
		Clusters:   formatCount(loc, counts.Clusters),
		Venues:     formatCount(loc, counts.Venues),
		Zones:      formatCount(loc, counts.Zones),
		Facilities: formatCount(loc, counts.Facilities),
		Admins:     formatCount(loc, counts.Admins),
	}
	renderFragment(w, r, templates.DashboardContent(stats, "", loc), http.StatusOK)
}
