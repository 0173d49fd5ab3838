package admin

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/templates"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
	sharedhtmx "github.com/louisbranch/venuedesk/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

// maxClusterFieldLength caps cluster names and regions.
const maxClusterFieldLength = 80

// handleClustersPage renders the clusters page.
func (h *Handler) handleClustersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := templates.ClustersPage(h.pageContext(lang, loc, r), templates.ClustersPageView{})
	renderPage(w, r, page, loc.Sprintf("clusters.title"))
}

// handleClustersTable renders the clusters table via htmx.
func (h *Handler) handleClustersTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	ctx, cancel := directoryContext(r)
	defer cancel()

	clusters, err := h.directory.ListClusters(ctx)
	if err != nil {
		log.Printf("list clusters: %v", err)
		renderFragment(w, r, templates.ClustersTable(nil, loc.Sprintf("clusters.unavailable"), loc), http.StatusOK)
		return
	}
	if len(clusters) == 0 {
		renderFragment(w, r, templates.ClustersTable(nil, loc.Sprintf("clusters.empty"), loc), http.StatusOK)
		return
	}
	rows := make([]templates.ClusterRow, 0, len(clusters))
	for _, cluster := range clusters {
		rows = append(rows, buildClusterRow(cluster))
	}
	renderFragment(w, r, templates.ClustersTable(rows, "", loc), http.StatusOK)
}

// handleClusterCreate creates a cluster from the create form.
func (h *Handler) handleClusterCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if !parseForm(w, r, loc) {
		return
	}

	form := templates.ClusterForm{
		Name:   strings.TrimSpace(r.PostFormValue("name")),
		Region: strings.TrimSpace(r.PostFormValue("region")),
		Errors: map[string]string{},
	}
	switch {
	case form.Name == "":
		form.Errors["name"] = "cluster.form.error.name_required"
	case utf8.RuneCountInString(form.Name) > maxClusterFieldLength:
		form.Errors["name"] = "cluster.form.error.name_too_long"
	}
	if utf8.RuneCountInString(form.Region) > maxClusterFieldLength {
		form.Errors["region"] = "cluster.form.error.region_too_long"
	}
	if len(form.Errors) > 0 {
		h.renderClusterForm(w, r, lang, loc, form)
		return
	}

	ctx, cancel := directoryContext(r)
	defer cancel()
	cluster, err := h.directory.CreateCluster(ctx, form.Name, form.Region)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			form.Errors["name"] = "cluster.form.error.name_taken"
			h.renderClusterForm(w, r, lang, loc, form)
			return
		}
		h.renderError(w, r, platformerrors.Wrap(platformerrors.CodeDirectoryUnavailable, "create cluster", err))
		return
	}

	if !sharedhtmx.IsHTMXRequest(r) {
		http.Redirect(w, r, routepath.Cluster(cluster.ID), http.StatusSeeOther)
		return
	}
	sharedhtmx.Trigger(w, eventClustersChanged)
	renderFragment(w, r, templates.ClusterCreateForm(templates.ClusterForm{}, loc), http.StatusOK)
}

func (h *Handler) renderClusterForm(w http.ResponseWriter, r *http.Request, lang string, loc *message.Printer, form templates.ClusterForm) {
	if sharedhtmx.IsHTMXRequest(r) {
		renderFragment(w, r, templates.ClusterCreateForm(form, loc), http.StatusOK)
		return
	}
	page := templates.ClustersPage(h.pageContext(lang, loc, r), templates.ClustersPageView{Form: form})
	renderFragment(w, r, page, http.StatusUnprocessableEntity)
}

// handleClusterDetail renders one cluster.
func (h *Handler) handleClusterDetail(w http.ResponseWriter, r *http.Request, clusterID int64) {
	loc, lang := h.localizer(w, r)
	ctx, cancel := directoryContext(r)
	defer cancel()

	cluster, err := h.directory.GetCluster(ctx, clusterID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			err = platformerrors.Wrap(platformerrors.CodeDirectoryUnavailable, "get cluster", err)
		}
		h.renderError(w, r, err)
		return
	}
	view := templates.ClusterDetailView{Cluster: buildClusterRow(cluster)}
	renderPage(w, r, templates.ClusterDetailPage(h.pageContext(lang, loc, r), view), cluster.Name)
}

func buildClusterRow(cluster venue.Cluster) templates.ClusterRow {
	clusterID := cluster.ID
	return templates.ClusterRow{
		ID:          strconv.FormatInt(cluster.ID, 10),
		Name:        cluster.Name,
		Region:      cluster.Region,
		CreatedAt:   formatTime(cluster.CreatedAt),
		DetailURL:   routepath.Cluster(cluster.ID),
		VenuesURL:   routepath.VenuesForCluster(cluster.ID),
		NewVenueURL: routepath.NewVenueWizard(nil, &clusterID),
	}
}

// parseForm reads the request body, answering 400 when it is malformed.
func parseForm(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.form_invalid"), http.StatusBadRequest)
		return false
	}
	return true
}
