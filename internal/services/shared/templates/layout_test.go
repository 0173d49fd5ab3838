package templates

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/venuedesk/internal/platform/branding"
)

func TestComposePageTitleAddsBrandNameSuffix(t *testing.T) {
	got := ComposePageTitle("Venues")
	want := "Venues | " + branding.AppName
	if got != want {
		t.Fatalf("ComposePageTitle = %q, want %q", got, want)
	}
}

func TestComposePageTitleSkipsWhenAlreadyUsingPipeBrandSuffix(t *testing.T) {
	got := ComposePageTitle("Venues | " + branding.AppName)
	want := "Venues | " + branding.AppName
	if got != want {
		t.Fatalf("ComposePageTitle = %q, want %q", got, want)
	}
}

func TestComposePageTitleNormalizesHyphenBrandSuffix(t *testing.T) {
	got := ComposePageTitle("Venues - " + branding.AppName)
	want := "Venues | " + branding.AppName
	if got != want {
		t.Fatalf("ComposePageTitle = %q, want %q", got, want)
	}
}

func TestComposePageTitleUsesBrandForEmptyTitle(t *testing.T) {
	if got := ComposePageTitle("  "); got != branding.AppName {
		t.Fatalf("ComposePageTitle = %q, want %q", got, branding.AppName)
	}
}

func TestPageHeadingFromTitleStripsBrandAndAdminSuffix(t *testing.T) {
	got := pageHeadingFromTitle("Venues - Admin | "+branding.AppName, branding.AppName)
	if got != "Venues" {
		t.Fatalf("pageHeadingFromTitle = %q, want %q", got, "Venues")
	}
}

func TestAppChromeLayoutRendersBreadcrumbsInsideMain(t *testing.T) {
	var b strings.Builder
	err := AppChromeLayout(AppChromeLayoutOptions{
		Title:   "Clusters",
		Lang:    "en-US",
		AppName: branding.AppName,
		Loc:     breadcrumbLocalizer{},
		Breadcrumbs: []BreadcrumbItem{
			{Label: "Dashboard", URL: "/"},
			{Label: "Custom"},
		},
	}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("AppChromeLayout() = %v", err)
	}
	got := b.String()
	mainIndex := strings.Index(got, `<main id="main"`)
	if mainIndex < 0 {
		t.Fatalf("expected main element, got %q", got)
	}
	if !strings.Contains(got[mainIndex:], `href="/">Dashboard</a>`) {
		t.Fatalf("expected breadcrumb root inside main, got %q", got)
	}
	if !strings.Contains(got, `<li>Custom</li>`) {
		t.Fatalf("expected breadcrumb tail, got %q", got)
	}
	if !strings.Contains(got, `<title>Clusters | `+branding.AppName+`</title>`) {
		t.Fatalf("expected composed title, got %q", got)
	}
}

func TestAppChromeLayoutEscapesText(t *testing.T) {
	var b strings.Builder
	err := AppChromeLayout(AppChromeLayoutOptions{
		Title: `<script>alert(1)</script>`,
		Body: Component(func(m *Markup) {
			m.Raw("<p").Attr("data-name", `"quoted"`).Raw(">").Text("a < b").Raw("</p>")
		}),
	}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("AppChromeLayout() = %v", err)
	}
	got := b.String()
	if strings.Contains(got, "<script>alert") {
		t.Fatalf("title was not escaped: %q", got)
	}
	if !strings.Contains(got, `data-name="&#34;quoted&#34;"`) {
		t.Fatalf("attribute was not escaped: %q", got)
	}
	if !strings.Contains(got, "a &lt; b") {
		t.Fatalf("text was not escaped: %q", got)
	}
}

func TestAppChromeLayoutRendersNavAndLogout(t *testing.T) {
	var b strings.Builder
	err := AppChromeLayout(AppChromeLayoutOptions{
		Title: "Venues",
		Loc:   breadcrumbLocalizer{},
		ChromeOptions: ChromeLayoutOptions{
			Nav:       []NavItem{{Label: "Dashboard", URL: "/"}, {Label: "Venues", URL: "/venues", Active: true}},
			LogoutURL: "/logout",
		},
	}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("AppChromeLayout() = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, `href="/" hx-get="/"`) {
		t.Fatalf("expected dashboard nav to target root via href and hx-get, got %q", got)
	}
	if !strings.Contains(got, `class="nav-link active" href="/venues"`) {
		t.Fatalf("expected active venues nav link, got %q", got)
	}
	if !strings.Contains(got, `<form method="POST" action="/logout">`) {
		t.Fatalf("expected logout form, got %q", got)
	}
	if !strings.Contains(got, `>Sign out</button>`) {
		t.Fatalf("expected localized logout label, got %q", got)
	}
}

func TestAppChromeLayoutRendersHeadingActionOnSameLine(t *testing.T) {
	var b strings.Builder
	err := AppChromeLayout(AppChromeLayoutOptions{
		Title:   "Venues",
		AppName: branding.AppName,
		HeadingAction: templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, `<a id="heading-action-test" class="btn btn-primary btn-sm" href="/venues/wizard">New</a>`)
			return err
		}),
	}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("AppChromeLayout() = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, `<div class="mb-5 flex items-center justify-between gap-3"><h1 class="mb-0">Venues</h1><a id="heading-action-test"`) {
		t.Fatalf("expected heading action next to heading, got %q", got)
	}
}

func TestChromeMainClassFromStyleDefaultDoesNotCenter(t *testing.T) {
	got := chromeMainClassFromStyle("", "")
	if strings.Contains(got, "mx-auto") {
		t.Fatalf("expected default chrome main class to omit mx-auto, got %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestMarkupKeepsFirstError(t *testing.T) {
	m := NewMarkup(context.Background(), failingWriter{})
	m.Raw("<p>").Text("x").Raw("</p>")
	if m.Err() == nil || m.Err().Error() != "closed" {
		t.Fatalf("Err = %v, want closed", m.Err())
	}
}
