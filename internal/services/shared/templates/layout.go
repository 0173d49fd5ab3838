package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/venuedesk/internal/platform/branding"
)

const (
	// HTMXScriptURL loads htmx for partial page swaps.
	HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"
	// MainTargetID is the element swapped by navigation requests.
	MainTargetID = "main"
)

// NavItem is one entry of the top navigation.
type NavItem struct {
	Label  string
	URL    string
	Active bool
}

// LanguageLink is one entry of the language switcher.
type LanguageLink struct {
	Label  string
	URL    string
	Active bool
}

// ChromeLayoutOptions configures the header controls.
type ChromeLayoutOptions struct {
	Nav       []NavItem
	Languages []LanguageLink
	// LogoutURL renders a sign out form when set.
	LogoutURL   string
	LogoutLabel string
	// UserName labels the signed in operator.
	UserName string
}

// AppChromeLayoutOptions configures a full console page.
type AppChromeLayoutOptions struct {
	Title         string
	Lang          string
	AppName       string
	Loc           Localizer
	Stylesheets   []string
	Breadcrumbs   []BreadcrumbItem
	HeadingAction templ.Component
	ChromeOptions ChromeLayoutOptions
	MainClass     string
	Body          templ.Component
}

// ComposePageTitle appends the product name to a page title.
func ComposePageTitle(title string) string {
	return composePageTitle(title, branding.AppName)
}

func composePageTitle(title string, appName string) string {
	title = strings.TrimSpace(title)
	appName = strings.TrimSpace(appName)
	if appName == "" {
		appName = branding.AppName
	}
	if title == "" {
		return appName
	}
	if strings.HasSuffix(title, " | "+appName) {
		return title
	}
	if base, ok := strings.CutSuffix(title, " - "+appName); ok {
		title = strings.TrimSpace(base)
	}
	return title + " | " + appName
}

// pageHeadingFromTitle strips the product suffix to get the visible heading.
func pageHeadingFromTitle(title string, appName string) string {
	title = strings.TrimSpace(title)
	if base, ok := strings.CutSuffix(title, " | "+appName); ok {
		title = strings.TrimSpace(base)
	}
	if base, ok := strings.CutSuffix(title, " - Admin"); ok {
		title = strings.TrimSpace(base)
	}
	return title
}

func chromeMainClassFromStyle(class string, extra string) string {
	base := "container px-4 py-6"
	class = strings.TrimSpace(class)
	if class != "" {
		base = class
	}
	if extra = strings.TrimSpace(extra); extra != "" {
		base += " " + extra
	}
	return base
}

// AppChromeLayout renders the full HTML document around options.Body. The
// body, breadcrumbs and heading live inside <main> so htmx responses can be
// cut down to that element.
func AppChromeLayout(options AppChromeLayoutOptions) templ.Component {
	return Component(func(m *Markup) {
		appName := strings.TrimSpace(options.AppName)
		if appName == "" {
			appName = branding.AppName
		}
		title := composePageTitle(options.Title, appName)
		lang := strings.TrimSpace(options.Lang)
		if lang == "" {
			lang = "en-US"
		}

		m.Raw("<!DOCTYPE html><html").Attr("lang", lang).Raw("><head>")
		m.Raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.Raw("<title>").Text(title).Raw("</title>")
		for _, href := range options.Stylesheets {
			m.Raw(`<link rel="stylesheet"`).Attr("href", href).Raw(">")
		}
		m.Raw("<script").Attr("src", HTMXScriptURL).Raw(" defer></script></head>")
		m.Raw(`<body class="min-h-screen">`)
		renderChrome(m, appName, options)
		m.Raw("<main").Attr("id", MainTargetID).Attr("class", chromeMainClassFromStyle(options.MainClass, "")).Raw(">")
		m.Component(Breadcrumbs(options.Breadcrumbs))
		if heading := pageHeadingFromTitle(options.Title, appName); heading != "" {
			m.Raw(`<div class="mb-5 flex items-center justify-between gap-3"><h1 class="mb-0">`).Text(heading).Raw("</h1>")
			m.Component(options.HeadingAction)
			m.Raw("</div>")
		}
		m.Component(options.Body)
		m.Raw("</main></body></html>")
	})
}

func renderChrome(m *Markup, appName string, options AppChromeLayoutOptions) {
	chrome := options.ChromeOptions
	m.Raw(`<header class="navbar"><a class="brand" href="/">`).Text(appName).Raw("</a>")
	if len(chrome.Nav) > 0 {
		m.Raw(`<nav><ul class="menu menu-horizontal">`)
		for _, item := range chrome.Nav {
			class := "nav-link"
			if item.Active {
				class += " active"
			}
			m.Raw("<li><a").Attr("class", class).Attr("href", item.URL).Attr("hx-get", item.URL).
				Attr("hx-target", "#"+MainTargetID).Attr("hx-select", "#"+MainTargetID).
				Attr("hx-swap", "outerHTML").Attr("hx-push-url", "true").Attr("data-nav-item", "true").Raw(">").
				Text(item.Label).Raw("</a></li>")
		}
		m.Raw("</ul></nav>")
	}
	if len(chrome.Languages) > 0 {
		m.Raw(`<ul class="languages">`)
		for _, language := range chrome.Languages {
			m.Raw("<li><a").Attr("href", language.URL).AttrIf(language.Active, "aria-current", "true").Raw(">").
				Text(language.Label).Raw("</a></li>")
		}
		m.Raw("</ul>")
	}
	if name := strings.TrimSpace(chrome.UserName); name != "" {
		m.Raw(`<span class="operator">`).Text(name).Raw("</span>")
	}
	if logout := strings.TrimSpace(chrome.LogoutURL); logout != "" {
		label := strings.TrimSpace(chrome.LogoutLabel)
		if label == "" {
			label = T(options.Loc, "nav.logout")
		}
		m.Raw(`<form method="POST"`).Attr("action", logout).Raw(`><button type="submit" class="btn btn-ghost btn-sm">`).
			Text(label).Raw("</button></form>")
	}
	m.Raw("</header>")
}

// Breadcrumbs renders a breadcrumb trail; the last item is plain text.
func Breadcrumbs(items []BreadcrumbItem) templ.Component {
	return Component(func(m *Markup) {
		if len(items) == 0 {
			return
		}
		m.Raw(`<div class="breadcrumbs text-sm"><ul>`)
		for index, item := range items {
			if item.URL != "" && index < len(items)-1 {
				m.Raw("<li><a").Attr("href", item.URL).Raw(">").Text(item.Label).Raw("</a></li>")
				continue
			}
			m.Raw("<li>").Text(item.Label).Raw("</li>")
		}
		m.Raw("</ul></div>")
	})
}

// Loading renders the shared loading ring.
func Loading() templ.Component {
	return Component(func(m *Markup) {
		m.Raw(`<span class="loading loading-ring loading-md" aria-hidden="true"></span>`)
	})
}

// LazyLoad renders a placeholder that fetches url once it is on screen.
func LazyLoad(url string, message string) templ.Component {
	return Component(func(m *Markup) {
		m.Raw("<div").Attr("hx-get", url).Attr("hx-trigger", "load").Attr("hx-swap", "outerHTML").Raw(">")
		m.Component(Loading())
		if message = strings.TrimSpace(message); message != "" {
			m.Raw(`<span class="sr-only">`).Text(message).Raw("</span>")
		}
		m.Raw("</div>")
	})
}
