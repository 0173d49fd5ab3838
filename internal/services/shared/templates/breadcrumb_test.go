package templates

import (
	"reflect"
	"testing"

	"golang.org/x/text/message"
)

type breadcrumbLocalizer struct{}

func (breadcrumbLocalizer) Sprintf(key message.Reference, _ ...any) string {
	if s, ok := key.(string); ok {
		switch s {
		case "dashboard.title":
			return "Dashboard"
		case "clusters.title":
			return "Clusters"
		case "venues.title":
			return "Venues"
		case "nav.logout":
			return "Sign out"
		}
		return s
	}
	return ""
}

func consoleSegmentLabel(segment string, _ string, loc Localizer) string {
	switch segment {
	case "clusters":
		return T(loc, "clusters.title")
	case "venues":
		return T(loc, "venues.title")
	default:
		return segment
	}
}

func TestBuildPathBreadcrumbs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected []BreadcrumbItem
	}{
		{
			name:     "root",
			path:     "/",
			expected: []BreadcrumbItem{},
		},
		{
			name: "clusters list",
			path: "/clusters",
			expected: []BreadcrumbItem{
				{Label: "Dashboard", URL: "/"},
				{Label: "Clusters", URL: "/clusters"},
			},
		},
		{
			name: "cluster detail",
			path: "/clusters/12",
			expected: []BreadcrumbItem{
				{Label: "Dashboard", URL: "/"},
				{Label: "Clusters", URL: "/clusters"},
				{Label: "12"},
			},
		},
		{
			name: "trailing slashes",
			path: "/venues//",
			expected: []BreadcrumbItem{
				{Label: "Dashboard", URL: "/"},
				{Label: "Venues", URL: "/venues"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildPathBreadcrumbs(tc.path, breadcrumbLocalizer{}, consoleSegmentLabel)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("BuildPathBreadcrumbs(%q) = %#v, want %#v", tc.path, got, tc.expected)
			}
		})
	}
}

func TestBuildPathBreadcrumbsUsesRecordNames(t *testing.T) {
	t.Parallel()

	got := BuildPathBreadcrumbsWithOptions("/clusters/12", breadcrumbLocalizer{}, PathBreadcrumbOptions{
		LabelForSegment: consoleSegmentLabel,
		Names:           map[string]string{"12": "North Campus"},
	})
	want := []BreadcrumbItem{
		{Label: "Clusters", URL: "/clusters"},
		{Label: "North Campus"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("breadcrumbs = %#v, want %#v", got, want)
	}
}

func TestBuildPathBreadcrumbsDefaultsToSegmentLabels(t *testing.T) {
	t.Parallel()

	got := BuildPathBreadcrumbsWithOptions("/admins", nil, PathBreadcrumbOptions{})
	want := []BreadcrumbItem{{Label: "admins", URL: "/admins"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("breadcrumbs = %#v, want %#v", got, want)
	}
}
