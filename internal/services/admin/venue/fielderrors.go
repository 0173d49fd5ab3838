package venue

import (
	"sort"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
)

// FieldErrors maps form field names to localization keys describing why the
// submitted value was rejected.
type FieldErrors map[string]string

// Add records the first problem reported for field.
func (f FieldErrors) Add(field string, key string) {
	if _, exists := f[field]; exists {
		return
	}
	f[field] = key
}

// Has reports whether any field failed validation.
func (f FieldErrors) Has() bool {
	return len(f) > 0
}

// Get returns the localization key for field, if any.
func (f FieldErrors) Get(field string) string {
	return f[field]
}

// Fields returns the rejected field names in stable order.
func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Err converts the collected problems into a coded validation error, or nil
// when every field passed.
func (f FieldErrors) Err(code platformerrors.Code, message string) error {
	if !f.Has() {
		return nil
	}
	metadata := make(map[string]string, len(f))
	for field, key := range f {
		metadata[field] = key
	}
	return platformerrors.WithMetadata(code, message, metadata)
}
