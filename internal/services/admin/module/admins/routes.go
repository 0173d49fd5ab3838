package admins

import (
	"net/http"

	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/venuedesk/internal/services/shared/route"
)

// Service defines operator account handlers consumed by this route module.
type Service interface {
	HandleAdminsPage(w http.ResponseWriter, r *http.Request)
	HandleAdminsTable(w http.ResponseWriter, r *http.Request)
	HandleAdminCreate(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires admin account routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Admins, service.HandleAdminsPage)
	mux.HandleFunc(routepath.AdminsTable, service.HandleAdminsTable)
	mux.HandleFunc(routepath.AdminsCreate, func(w http.ResponseWriter, r *http.Request) {
		if !sharedroute.RequireMethod(w, r, http.MethodPost) {
			return
		}
		service.HandleAdminCreate(w, r)
	})
}
