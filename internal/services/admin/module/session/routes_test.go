package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	calls int
}

func (f *fakeService) HandleLogout(http.ResponseWriter, *http.Request) {
	f.calls++
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))
	if rec.Code != http.StatusMethodNotAllowed || svc.calls != 0 {
		t.Fatalf("GET /logout = %d calls=%d", rec.Code, svc.calls)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))
	if rec.Code != http.StatusOK || svc.calls != 1 {
		t.Fatalf("POST /logout = %d calls=%d", rec.Code, svc.calls)
	}
}
