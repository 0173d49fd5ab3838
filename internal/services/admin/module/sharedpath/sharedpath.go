package sharedpath

import (
	"net/url"
	"strings"
)

// SplitPathParts normalizes a slash-delimited route suffix into non-empty path segments.
func SplitPathParts(path string) []string {
	rawParts := strings.Split(path, "/")
	parts := make([]string, 0, len(rawParts))
	for _, part := range rawParts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

// SplitEscapedPathParts splits an escaped route suffix and unescapes each
// segment, so an encoded "/" stays inside its segment.
func SplitEscapedPathParts(escaped string) []string {
	parts := SplitPathParts(escaped)
	for index, part := range parts {
		if unescaped, err := url.PathUnescape(part); err == nil {
			parts[index] = strings.TrimSpace(unescaped)
		}
	}
	return parts
}
