package templates

import (
	"github.com/a-h/templ"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
)

// VenueRow represents a row in the venues table.
type VenueRow struct {
	ID        string
	Name      string
	City      string
	Cluster   string
	Geofence  string
	CreatedAt string
}

// VenuesPageView provides data for the venues page.
type VenuesPageView struct {
	ClusterID      string
	ClusterOptions []Option
	TableURL       string
	NewVenueURL    string
}

// VenuesTableView provides one page of venues.
type VenuesTableView struct {
	Rows     []VenueRow
	NextURL  string
	Message  string
	TableURL string
}

// VenuesPage renders the venue list with its cluster filter.
func VenuesPage(page PageContext, view VenuesPageView) templ.Component {
	tableURL := view.TableURL
	if tableURL == "" {
		tableURL = routepath.VenuesTable
	}
	newVenueURL := view.NewVenueURL
	if newVenueURL == "" {
		newVenueURL = routepath.VenueWizard
	}
	body := component(func(m *Markup) {
		m.Raw(`<form id="venues-filter" method="GET"`).Attr("action", routepath.Venues).
			Attr("hx-get", routepath.VenuesTable).Raw(` hx-target="#venues-table" hx-swap="outerHTML" hx-trigger="change">`)
		options := append([]Option{{Value: "", Label: T(page.Loc, "venues.filter.all_clusters")}}, markSelected(view.ClusterOptions, view.ClusterID)...)
		renderField(m, page.Loc, "venues-filter", Field{Name: routepath.QueryClusterID, Label: T(page.Loc, "venues.field.cluster"), Type: "select", Options: options})
		m.Raw("</form>")
		m.Raw(`<div id="venues-table"`).Attr("hx-get", tableURL).Raw(` hx-trigger="load" hx-swap="outerHTML">`)
		m.Raw(`<span class="loading loading-spinner"></span>`).Text(T(page.Loc, "venues.loading")).Raw("</div>")
	})
	return Page(page, T(page.Loc, "venues.title"), LinkButton(newVenueURL, T(page.Loc, "venues.action.new")), body)
}

// VenuesTable renders one page of venues; it reloads itself when a venue is
// created.
func VenuesTable(view VenuesTableView, loc Localizer) templ.Component {
	return component(func(m *Markup) {
		m.Raw(`<div id="venues-table"`).AttrIf(view.TableURL != "", "hx-get", view.TableURL).
			AttrIf(view.TableURL != "", "hx-trigger", "venues-changed from:body").
			AttrIf(view.TableURL != "", "hx-swap", "outerHTML").Raw(">")
		if view.Message != "" {
			renderAlert(m, view.Message, "info")
			m.Raw("</div>")
			return
		}
		if len(view.Rows) == 0 {
			m.Raw(`<p class="empty">`).Text(T(loc, "venues.empty")).Raw("</p></div>")
			return
		}
		m.Raw(`<table class="table"><thead><tr><th>`).Text(T(loc, "venues.field.name")).
			Raw("</th><th>").Text(T(loc, "venues.field.city")).
			Raw("</th><th>").Text(T(loc, "venues.field.cluster")).
			Raw("</th><th>").Text(T(loc, "venues.field.geofence")).
			Raw("</th><th>").Text(T(loc, "common.created_at")).
			Raw("</th></tr></thead><tbody>")
		for _, row := range view.Rows {
			m.Raw("<tr").Attr("data-venue-id", row.ID).Raw("><td>").Text(row.Name).
				Raw("</td><td>").Text(row.City).
				Raw("</td><td>").Text(row.Cluster).
				Raw("</td><td>").Text(row.Geofence).
				Raw("</td><td>").Text(row.CreatedAt).Raw("</td></tr>")
		}
		m.Raw("</tbody></table>")
		if view.NextURL != "" {
			m.Raw(`<div class="pagination"><button type="button" class="btn btn-sm"`).
				Attr("hx-get", view.NextURL).Raw(` hx-target="#venues-table" hx-swap="outerHTML">`).
				Text(T(loc, "common.next_page")).Raw("</button></div>")
		}
		m.Raw("</div>")
	})
}
