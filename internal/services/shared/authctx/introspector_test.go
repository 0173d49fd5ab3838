package authctx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPIntrospectorSendsTokenAndSecret(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get(ResourceSecretHeader); got != "shh" {
			t.Errorf("%s = %q", ResourceSecretHeader, got)
		}
		_, _ = w.Write([]byte(`{"active":true,"user_id":"admin-1","email":"ops@example.com"}`))
	}))
	defer srv.Close()

	result, err := NewHTTPIntrospector(srv.URL, "shh", srv.Client()).Introspect(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Introspect: %v", err)
	}
	if !result.Active || result.UserID != "admin-1" || result.Email != "ops@example.com" {
		t.Fatalf("result = %+v", result)
	}
}

func TestHTTPIntrospectorErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
		active  bool
	}{
		{name: "inactive", status: http.StatusOK, body: `{"active":false}`},
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantErr: true},
		{name: "bad json", status: http.StatusOK, body: `{`, wantErr: true},
		{name: "active without user", status: http.StatusOK, body: `{"active":true}`, wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			result, err := NewHTTPIntrospector(srv.URL, "", srv.Client()).Introspect(context.Background(), "tok")
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if result.Active != tc.active {
				t.Fatalf("active = %v, want %v", result.Active, tc.active)
			}
		})
	}
}

func TestHTTPIntrospectorBlankTokenIsInactive(t *testing.T) {
	t.Parallel()

	result, err := NewHTTPIntrospector("http://127.0.0.1:1/introspect", "", nil).Introspect(context.Background(), " ")
	if err != nil || result.Active {
		t.Fatalf("result = %+v, err = %v", result, err)
	}
	if _, err := NewHTTPIntrospector("", "", nil).Introspect(context.Background(), "tok"); err == nil {
		t.Fatal("expected missing url error")
	}
}
