package session

import (
	"net/http"

	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/venuedesk/internal/services/shared/route"
)

// Service defines console session handlers consumed by this route module.
type Service interface {
	HandleLogout(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires session routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Logout, func(w http.ResponseWriter, r *http.Request) {
		if !sharedroute.RequireMethod(w, r, http.MethodPost) {
			return
		}
		service.HandleLogout(w, r)
	})
}
