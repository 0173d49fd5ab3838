package httpmux

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

func serve(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewServesStaticAssets(t *testing.T) {
	t.Parallel()

	wrapped := false
	mux := New(Console{
		Static: fstest.MapFS{
			"admin.css": &fstest.MapFile{Data: []byte("body{}")},
		},
		WrapStatic: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				wrapped = true
				next.ServeHTTP(w, r)
			})
		},
	})

	rec := serve(t, mux, "/static/admin.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "body{}" {
		t.Fatalf("body = %q", rec.Body.String())
	}
	if got := rec.Header().Get("Cache-Control"); got != staticCacheControl {
		t.Fatalf("Cache-Control = %q, want %q", got, staticCacheControl)
	}
	if !wrapped {
		t.Fatal("expected static wrapper to run")
	}
}

func TestNewHidesStaticDirectories(t *testing.T) {
	t.Parallel()

	mux := New(Console{Static: fstest.MapFS{
		"icons/venue.svg": &fstest.MapFile{Data: []byte("<svg/>")},
	}})

	for _, path := range []string{"/static/", "/static/icons/"} {
		if rec := serve(t, mux, path); rec.Code != http.StatusNotFound {
			t.Fatalf("%s status = %d, want %d", path, rec.Code, http.StatusNotFound)
		}
	}
	if rec := serve(t, mux, "/static/icons/venue.svg"); rec.Code != http.StatusOK {
		t.Fatalf("icon status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestNewMountsPagesAtRoot(t *testing.T) {
	t.Parallel()

	pages := http.NewServeMux()
	pages.HandleFunc("/venues", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("venues"))
	})

	rec := serve(t, New(Console{Pages: pages}), "/venues")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "venues" {
		t.Fatalf("body = %q, want %q", body, "venues")
	}
}

func TestNewWithoutRoutesServesNotFound(t *testing.T) {
	t.Parallel()

	mux := New(Console{})
	for _, path := range []string{"/", "/static/admin.css"} {
		if rec := serve(t, mux, path); rec.Code != http.StatusNotFound {
			t.Fatalf("%s status = %d, want %d", path, rec.Code, http.StatusNotFound)
		}
	}
}
