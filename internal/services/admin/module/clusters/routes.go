package clusters

import (
	"net/http"
	"strconv"
	"strings"

	sharedpath "github.com/louisbranch/venuedesk/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/venuedesk/internal/services/shared/route"
)

// Service defines cluster route handlers consumed by this route module.
type Service interface {
	HandleClustersPage(w http.ResponseWriter, r *http.Request)
	HandleClustersTable(w http.ResponseWriter, r *http.Request)
	HandleClusterCreate(w http.ResponseWriter, r *http.Request)
	HandleClusterDetail(w http.ResponseWriter, r *http.Request, clusterID int64)
}

// RegisterRoutes wires cluster routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Clusters, service.HandleClustersPage)
	mux.HandleFunc(routepath.ClustersTable, service.HandleClustersTable)
	mux.HandleFunc(routepath.ClustersCreate, func(w http.ResponseWriter, r *http.Request) {
		if !sharedroute.RequireMethod(w, r, http.MethodPost) {
			return
		}
		service.HandleClusterCreate(w, r)
	})
	mux.HandleFunc(routepath.ClustersPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleClusterPath(w, r, service)
	})
}

// HandleClusterPath parses cluster detail routes and dispatches to service handlers.
func HandleClusterPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.ClustersPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) != 1 {
		http.NotFound(w, r)
		return
	}
	clusterID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || clusterID <= 0 {
		http.NotFound(w, r)
		return
	}
	service.HandleClusterDetail(w, r, clusterID)
}
