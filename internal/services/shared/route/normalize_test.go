package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRedirectTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		wantOK   bool
		wantCode int
		wantLoc  string
	}{
		{
			name:     "no trailing slash",
			path:     "/venues",
			wantOK:   false,
			wantCode: 200,
		},
		{
			name:     "trailing slash",
			path:     "/venues/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/venues",
		},
		{
			name:     "venue detail trailing slash",
			path:     "/venues/ven-1/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/venues/ven-1",
		},
		{
			name:     "root path",
			path:     "/",
			wantOK:   false,
			wantCode: 200,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()

			got := RedirectTrailingSlash(rec, req)
			if got != tc.wantOK {
				t.Fatalf("RedirectTrailingSlash = %v, want %v", got, tc.wantOK)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if got {
				if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
					t.Fatalf("location = %q, want %q", loc, tc.wantLoc)
				}
				return
			}
		})
	}
}

func TestRequireMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method    string
		allowed   []string
		wantOK    bool
		wantAllow string
	}{
		{method: http.MethodPost, allowed: []string{http.MethodPost}, wantOK: true},
		{method: http.MethodHead, allowed: []string{http.MethodGet}, wantOK: true},
		{method: http.MethodGet, allowed: []string{http.MethodPost}, wantAllow: "POST"},
		{method: http.MethodDelete, allowed: []string{http.MethodGet, http.MethodPost}, wantAllow: "GET, POST"},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(tc.method, "/venues", nil)
		rec := httptest.NewRecorder()
		got := RequireMethod(rec, req, tc.allowed...)
		if got != tc.wantOK {
			t.Fatalf("RequireMethod(%s, %v) = %v, want %v", tc.method, tc.allowed, got, tc.wantOK)
		}
		if !got {
			if rec.Code != http.StatusMethodNotAllowed {
				t.Fatalf("status = %d, want 405", rec.Code)
			}
			if allow := rec.Header().Get("Allow"); allow != tc.wantAllow {
				t.Fatalf("Allow = %q, want %q", allow, tc.wantAllow)
			}
		}
	}
}
