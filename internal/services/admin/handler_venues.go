package admin

import (
	"log"
	"net/http"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	"github.com/louisbranch/venuedesk/internal/services/admin/templates"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
)

// handleVenuesPage renders the venue list for an optional cluster.
func (h *Handler) handleVenuesPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	clusterID, err := parseOptionalClusterID(r.URL.Query().Get(routepath.QueryClusterID))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	ctx, cancel := directoryContext(r)
	defer cancel()
	clusters, err := h.directory.ListClusters(ctx)
	if err != nil {
		log.Printf("list clusters for venue filter: %v", err)
	}

	view := templates.VenuesPageView{
		ClusterID:      formatClusterID(clusterID),
		ClusterOptions: clusterOptions(clusters),
		TableURL:       routepath.VenuesTablePage(clusterID, ""),
		NewVenueURL:    routepath.NewVenueWizard(clusterID, nil),
	}
	renderPage(w, r, templates.VenuesPage(h.pageContext(lang, loc, r), view), loc.Sprintf("venues.title"))
}

// handleVenuesTable renders one page of venues via htmx.
func (h *Handler) handleVenuesTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	query := r.URL.Query()
	clusterID, err := parseOptionalClusterID(query.Get(routepath.QueryClusterID))
	if err != nil {
		renderFragment(w, r, templates.VenuesTable(templates.VenuesTableView{Message: errorMessage(loc, err)}, loc), http.StatusOK)
		return
	}

	ctx, cancel := directoryContext(r)
	defer cancel()

	page, err := h.directory.ListVenues(ctx, venue.ListFilter{
		ClusterID: clusterID,
		PageSize:  venuesPageSize,
		PageToken: query.Get(routepath.QueryPageToken),
	})
	if err != nil {
		log.Printf("list venues: %v", err)
		message := loc.Sprintf("venues.unavailable")
		if platformerrors.CodeOf(err) == platformerrors.CodeVenueInvalid {
			message = errorMessage(loc, err)
		}
		renderFragment(w, r, templates.VenuesTable(templates.VenuesTableView{Message: message}, loc), http.StatusOK)
		return
	}

	clusters, err := h.directory.ListClusters(ctx)
	if err != nil {
		log.Printf("list clusters for venue table: %v", err)
	}
	names := clusterNames(clusters)

	view := templates.VenuesTableView{TableURL: routepath.VenuesTablePage(clusterID, "")}
	for _, v := range page.Venues {
		row := templates.VenueRow{
			ID:        v.ID.String(),
			Name:      v.Name,
			City:      v.City,
			Geofence:  formatGeofence(v.Geofence, loc),
			CreatedAt: formatTime(v.CreatedAt),
		}
		if v.ClusterID != nil {
			row.Cluster = names[*v.ClusterID]
			if row.Cluster == "" {
				row.Cluster = formatClusterID(v.ClusterID)
			}
		}
		view.Rows = append(view.Rows, row)
	}
	if page.NextPageToken != "" {
		view.NextURL = routepath.VenuesTablePage(clusterID, page.NextPageToken)
	}
	renderFragment(w, r, templates.VenuesTable(view, loc), http.StatusOK)
}
