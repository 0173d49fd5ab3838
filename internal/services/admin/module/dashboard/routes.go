package dashboard

import (
	"net/http"

	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/venuedesk/internal/services/shared/route"
)

// Service defines dashboard route handlers consumed by this route module.
type Service interface {
	HandleDashboard(w http.ResponseWriter, r *http.Request)
	HandleDashboardContent(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires dashboard routes into the provided mux. The root
// pattern catches every unmatched path, so only "/" itself reaches the
// dashboard.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routepath.Root {
			http.NotFound(w, r)
			return
		}
		if !sharedroute.RequireMethod(w, r, http.MethodGet) {
			return
		}
		service.HandleDashboard(w, r)
	})
	mux.HandleFunc(routepath.DashboardContent, service.HandleDashboardContent)
}
