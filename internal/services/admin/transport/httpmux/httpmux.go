// Package httpmux assembles the console's root mux from its static assets and
// page routes.
package httpmux

import (
	"io/fs"
	"net/http"
	"strings"

	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
)

// staticCacheControl lets browsers reuse the stylesheet and icons across
// console pages without revalidating on every navigation.
const staticCacheControl = "public, max-age=3600"

// Console is what the root mux serves. Static is mounted under
// routepath.StaticPrefix and Pages under routepath.Root; either may be nil.
type Console struct {
	Static fs.FS
	// WrapStatic decorates the asset handler, for example to fix MIME types.
	WrapStatic func(http.Handler) http.Handler
	Pages      http.Handler
}

// New builds the root mux for c.
func New(c Console) *http.ServeMux {
	mux := http.NewServeMux()
	if c.Static != nil {
		mux.Handle(routepath.StaticPrefix, staticHandler(c.Static, c.WrapStatic))
	}
	if c.Pages != nil {
		mux.Handle(routepath.Root, c.Pages)
	}
	return mux
}

func staticHandler(assets fs.FS, wrap func(http.Handler) http.Handler) http.Handler {
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(assets)))
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No directory listings.
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", staticCacheControl)
		files.ServeHTTP(w, r)
	})
	if wrap != nil {
		handler = wrap(handler)
	}
	return handler
}
