package templates

import (
	"github.com/a-h/templ"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	sharedtemplates "github.com/louisbranch/venuedesk/internal/services/shared/templates"
)

// ClusterRow represents a row in the clusters table.
type ClusterRow struct {
	ID          string
	Name        string
	Region      string
	CreatedAt   string
	DetailURL   string
	VenuesURL   string
	NewVenueURL string
}

// ClusterForm holds submitted create-cluster values and their errors.
type ClusterForm struct {
	Name   string
	Region string
	Errors map[string]string
}

// ClustersPageView provides data for the clusters page.
type ClustersPageView struct {
	Message string
	Form    ClusterForm
}

// ClusterDetailView provides data for one cluster.
type ClusterDetailView struct {
	Cluster ClusterRow
	Message string
}

// ClustersPage renders the cluster list with its create form.
func ClustersPage(page PageContext, view ClustersPageView) templ.Component {
	body := component(func(m *Markup) {
		renderAlert(m, view.Message, "info")
		m.Component(ClusterCreateForm(view.Form, page.Loc))
		m.Component(sharedtemplates.LazyLoad(routepath.ClustersTable, T(page.Loc, "clusters.loading")))
	})
	return Page(page, T(page.Loc, "clusters.title"), nil, body)
}

// ClusterCreateForm renders the create-cluster form.
func ClusterCreateForm(form ClusterForm, loc Localizer) templ.Component {
	return component(func(m *Markup) {
		htmxForm(m, "cluster-create", routepath.ClustersCreate, "#cluster-create")
		renderField(m, loc, "cluster", Field{Name: "name", Label: T(loc, "clusters.field.name"), Value: form.Name, Error: form.Errors["name"], Required: true})
		renderField(m, loc, "cluster", Field{Name: "region", Label: T(loc, "clusters.field.region"), Value: form.Region, Error: form.Errors["region"]})
		submitButton(m, T(loc, "clusters.action.create"), false)
		m.Raw("</form>")
	})
}

// ClustersTable renders the clusters table.
func ClustersTable(rows []ClusterRow, message string, loc Localizer) templ.Component {
	return component(func(m *Markup) {
		m.Raw(`<div id="clusters-table" hx-get="` + routepath.ClustersTable + `" hx-trigger="clusters-changed from:body" hx-swap="outerHTML">`)
		if message != "" {
			renderAlert(m, message, "info")
			m.Raw("</div>")
			return
		}
		m.Raw(`<table class="table"><thead><tr><th>`).Text(T(loc, "clusters.field.name")).
			Raw("</th><th>").Text(T(loc, "clusters.field.region")).
			Raw("</th><th>").Text(T(loc, "common.created_at")).
			Raw("</th><th></th></tr></thead><tbody>")
		for _, row := range rows {
			m.Raw("<tr><td><a").Attr("href", row.DetailURL).Raw(">").Text(row.Name).Raw("</a></td><td>").Text(row.Region).
				Raw("</td><td>").Text(row.CreatedAt).Raw(`</td><td class="actions"><a`).Attr("href", row.VenuesURL).Raw(">").
				Text(T(loc, "clusters.action.venues")).Raw("</a> <a").Attr("href", row.NewVenueURL).Raw(">").
				Text(T(loc, "clusters.action.new_venue")).Raw("</a></td></tr>")
		}
		m.Raw("</tbody></table></div>")
	})
}

// ClusterDetailPage renders one cluster with a locked-cluster wizard entry.
func ClusterDetailPage(page PageContext, view ClusterDetailView) templ.Component {
	title := view.Cluster.Name
	if title == "" {
		title = T(page.Loc, "clusters.detail.title")
	}
	body := component(func(m *Markup) {
		if view.Message != "" {
			renderAlert(m, view.Message, "error")
			return
		}
		m.Raw(`<dl class="detail"><dt>`).Text(T(page.Loc, "clusters.field.region")).Raw("</dt><dd>").Text(view.Cluster.Region).
			Raw("</dd><dt>").Text(T(page.Loc, "common.created_at")).Raw("</dt><dd>").Text(view.Cluster.CreatedAt).Raw("</dd></dl>")
		m.Raw("<p><a").Attr("href", view.Cluster.VenuesURL).Raw(">").Text(T(page.Loc, "clusters.action.venues")).Raw("</a></p>")
	})
	var action templ.Component
	if view.Cluster.NewVenueURL != "" {
		action = LinkButton(view.Cluster.NewVenueURL, T(page.Loc, "clusters.action.new_venue"))
	}
	return Page(page, title, action, body)
}
