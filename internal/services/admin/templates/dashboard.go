package templates

import (
	"github.com/a-h/templ"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	sharedtemplates "github.com/louisbranch/venuedesk/internal/services/shared/templates"
)

// DashboardStats holds directory totals formatted for display.
type DashboardStats struct {
	Clusters   string
	Venues     string
	Zones      string
	Facilities string
	Admins     string
}

// DashboardPage renders the dashboard shell; counts load lazily.
func DashboardPage(page PageContext) templ.Component {
	return Page(page, T(page.Loc, "dashboard.title"), LinkButton(routepath.VenueWizard, T(page.Loc, "venues.action.new")),
		sharedtemplates.LazyLoad(routepath.DashboardContent, T(page.Loc, "dashboard.loading")))
}

// DashboardContent renders the stat cards. A message replaces the cards.
func DashboardContent(stats DashboardStats, message string, loc Localizer) templ.Component {
	return component(func(m *Markup) {
		m.Raw(`<section id="dashboard-stats" hx-trigger="venues-changed from:body" hx-get="` + routepath.DashboardContent + `" hx-swap="outerHTML">`)
		if message != "" {
			renderAlert(m, message, "warning")
			m.Raw("</section>")
			return
		}
		m.Raw(`<div class="stats shadow">`)
		cards := []struct {
			key   string
			value string
			url   string
		}{
			{key: "dashboard.stat.clusters", value: stats.Clusters, url: routepath.Clusters},
			{key: "dashboard.stat.venues", value: stats.Venues, url: routepath.Venues},
			{key: "dashboard.stat.zones", value: stats.Zones},
			{key: "dashboard.stat.facilities", value: stats.Facilities},
			{key: "dashboard.stat.admins", value: stats.Admins, url: routepath.Admins},
		}
		for _, card := range cards {
			m.Raw(`<div class="stat"><div class="stat-title">`)
			if card.url != "" {
				m.Raw("<a").Attr("href", card.url).Raw(">").Text(T(loc, card.key)).Raw("</a>")
			} else {
				m.Text(T(loc, card.key))
			}
			m.Raw(`</div><div class="stat-value">`).Text(card.value).Raw("</div></div>")
		}
		m.Raw("</div></section>")
	})
}
