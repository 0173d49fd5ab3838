package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/venuedesk/internal/platform/branding"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	sharedtemplates "github.com/louisbranch/venuedesk/internal/services/shared/templates"
)

// StylesheetURL is the embedded console stylesheet.
const StylesheetURL = routepath.StaticPrefix + "admin.css"

// Markup aliases the shared HTML writer for page components.
type Markup = sharedtemplates.Markup

func component(render func(m *Markup)) templ.Component {
	return sharedtemplates.Component(render)
}

// Page wraps body in the console chrome.
func Page(page PageContext, title string, action templ.Component, body templ.Component) templ.Component {
	return sharedtemplates.AppChromeLayout(sharedtemplates.AppChromeLayoutOptions{
		Title:         title,
		Lang:          page.Lang,
		AppName:       branding.AppName,
		Loc:           page.Loc,
		Stylesheets:   []string{StylesheetURL},
		Breadcrumbs:   sharedtemplates.BuildPathBreadcrumbs(page.CurrentPath, page.Loc, segmentLabel),
		HeadingAction: action,
		ChromeOptions: sharedtemplates.ChromeLayoutOptions{
			Nav:       navItems(page),
			Languages: languageLinks(page),
			LogoutURL: routepath.Logout,
			UserName:  page.OperatorName,
		},
		Body: body,
	})
}

// PageTitle composes the browser title for htmx swaps.
func PageTitle(title string) string {
	return sharedtemplates.ComposePageTitle(title)
}

func navItems(page PageContext) []sharedtemplates.NavItem {
	items := []struct {
		key string
		url string
	}{
		{key: "dashboard.title", url: routepath.Root},
		{key: "clusters.title", url: routepath.Clusters},
		{key: "venues.title", url: routepath.Venues},
		{key: "admins.title", url: routepath.Admins},
	}
	nav := make([]sharedtemplates.NavItem, 0, len(items))
	for _, item := range items {
		nav = append(nav, sharedtemplates.NavItem{
			Label:  T(page.Loc, item.key),
			URL:    item.url,
			Active: navActive(page.CurrentPath, item.url),
		})
	}
	return nav
}

func navActive(currentPath string, url string) bool {
	if url == routepath.Root {
		return currentPath == routepath.Root || currentPath == ""
	}
	return currentPath == url || strings.HasPrefix(currentPath, url+"/")
}

func segmentLabel(segment string, fullPath string, loc Localizer) string {
	switch fullPath {
	case routepath.Clusters:
		return T(loc, "clusters.title")
	case routepath.Venues:
		return T(loc, "venues.title")
	case routepath.VenueWizard:
		return T(loc, "wizard.title")
	case routepath.Admins:
		return T(loc, "admins.title")
	default:
		return segment
	}
}

// LinkButton renders a navigation button.
func LinkButton(url string, label string) templ.Component {
	return component(func(m *Markup) {
		m.Raw(`<a class="btn btn-primary btn-sm"`).Attr("href", url).Raw(">").Text(label).Raw("</a>")
	})
}

// Alert renders a dismissable status message; empty messages render nothing.
func Alert(message string, kind string) templ.Component {
	return component(func(m *Markup) {
		renderAlert(m, message, kind)
	})
}

func renderAlert(m *Markup, message string, kind string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	if kind == "" {
		kind = "info"
	}
	m.Raw(`<div role="alert"`).Attr("class", "alert alert-"+kind).Raw(">").Text(message).Raw("</div>")
}

// ErrorPage renders a full page error.
func ErrorPage(page PageContext, title string, message string) templ.Component {
	return Page(page, title, nil, Alert(message, "error"))
}
