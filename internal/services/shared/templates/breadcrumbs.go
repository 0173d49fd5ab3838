package templates

import (
	"strings"
)

// BreadcrumbItem represents one breadcrumb entry in a page trail.
type BreadcrumbItem struct {
	// Label is the visible breadcrumb text.
	Label string
	// URL is the optional destination for this breadcrumb entry.
	URL string
}

// BreadcrumbSegmentLabeler returns the label for a path segment.
//
// segment is the individual path segment while fullPath is the full accumulated path
// to the segment (for example, "/clusters/12").
type BreadcrumbSegmentLabeler func(segment string, fullPath string, loc Localizer) string

// PathBreadcrumbOptions controls how a breadcrumb trail is built from a path.
type PathBreadcrumbOptions struct {
	// IncludeRoot adds a dashboard-like root breadcrumb when enabled.
	IncludeRoot bool
	// RootPath is the URL used for the root breadcrumb when IncludeRoot is true.
	RootPath string
	// RootLabel is the localization key (or fallback string) for the root breadcrumb.
	RootLabel string
	// LabelForSegment resolves labels for each non-root segment.
	LabelForSegment BreadcrumbSegmentLabeler
	// Names maps record identifiers in the path to display names.
	Names map[string]string
}

// BuildPathBreadcrumbs builds a dashboard-rooted trail labeling each segment
// with labelForSegment.
func BuildPathBreadcrumbs(path string, loc Localizer, labelForSegment BreadcrumbSegmentLabeler) []BreadcrumbItem {
	return BuildPathBreadcrumbsWithOptions(path, loc, PathBreadcrumbOptions{
		IncludeRoot:     true,
		RootPath:        "/",
		RootLabel:       "dashboard.title",
		LabelForSegment: labelForSegment,
	})
}

// BuildPathBreadcrumbsWithOptions builds breadcrumb items for a request path using
// caller-provided labeling behavior.
func BuildPathBreadcrumbsWithOptions(path string, loc Localizer, options PathBreadcrumbOptions) []BreadcrumbItem {
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return []BreadcrumbItem{}
	}

	cleanPath := strings.Trim(path, "/")
	if cleanPath == "" {
		return []BreadcrumbItem{}
	}

	segments := strings.Split(cleanPath, "/")
	if options.LabelForSegment == nil {
		options.LabelForSegment = defaultSegmentLabel
	}
	if len(options.Names) > 0 {
		options.LabelForSegment = labelRecordName(options.Names, options.LabelForSegment)
	}

	nonEmptyCount := 0
	for _, segment := range segments {
		if strings.TrimSpace(segment) != "" {
			nonEmptyCount++
		}
	}
	if nonEmptyCount == 0 {
		return []BreadcrumbItem{}
	}

	breadcrumbs := make([]BreadcrumbItem, 0, len(segments)+1)
	if options.IncludeRoot {
		rootPath := strings.TrimSpace(options.RootPath)
		if rootPath == "" {
			rootPath = "/"
		}
		breadcrumbs = append(breadcrumbs, BreadcrumbItem{Label: T(loc, options.RootLabel), URL: rootPath})
	}

	pathSoFar := ""
	validIndex := 0
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		pathSoFar += "/" + segment
		label := options.LabelForSegment(segment, pathSoFar, loc)
		if strings.TrimSpace(label) == "" {
			label = segment
		}
		breadcrumb := BreadcrumbItem{Label: label}
		if validIndex < nonEmptyCount-1 || nonEmptyCount == 1 {
			breadcrumb.URL = pathSoFar
		}
		breadcrumbs = append(breadcrumbs, breadcrumb)
		validIndex++
	}

	if len(breadcrumbs) == 1 && options.IncludeRoot {
		return []BreadcrumbItem{}
	}

	return breadcrumbs
}

func labelRecordName(names map[string]string, next BreadcrumbSegmentLabeler) BreadcrumbSegmentLabeler {
	return func(segment string, fullPath string, loc Localizer) string {
		if name := strings.TrimSpace(names[strings.TrimSpace(segment)]); name != "" {
			return name
		}
		return next(segment, fullPath, loc)
	}
}

func defaultSegmentLabel(segment string, fullPath string, loc Localizer) string {
	_ = fullPath
	_ = loc
	return segment
}
