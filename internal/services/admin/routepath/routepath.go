package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
)

const (
	DashboardContent = "/dashboard/content"
)

const (
	Clusters       = "/clusters"
	ClustersTable  = "/clusters/table"
	ClustersCreate = "/clusters/create"
	ClustersPrefix = "/clusters/"
)

const (
	Venues       = "/venues"
	VenuesTable  = "/venues/table"
	VenuesPrefix = "/venues/"
	VenueWizard  = "/venues/wizard"
)

// Wizard step actions, appended to a wizard run path.
const (
	WizardActionMode       = "mode"
	WizardActionVenue      = "venue"
	WizardActionZones      = "zones"
	WizardActionDelete     = "delete"
	WizardActionProceed    = "proceed"
	WizardActionFacilities = "facilities"
	WizardActionAmenities  = "amenities"
	WizardActionClose      = "close"
)

const (
	Admins       = "/admins"
	AdminsTable  = "/admins/table"
	AdminsCreate = "/admins/create"
)

const (
	Logout = "/logout"
)

// Query parameters shared by links and handlers.
const (
	QueryClusterID        = "cluster_id"
	QueryDefaultClusterID = "default_cluster_id"
	QueryPresetClusterID  = "preset_cluster_id"
	QueryPageToken        = "page_token"
	QueryModule           = "module"
)

func Cluster(clusterID int64) string {
	return Clusters + "/" + strconv.FormatInt(clusterID, 10)
}

func VenuesForCluster(clusterID int64) string {
	return withQuery(Venues, QueryClusterID, strconv.FormatInt(clusterID, 10))
}

func VenuesTablePage(clusterID *int64, pageToken string) string {
	values := url.Values{}
	if clusterID != nil {
		values.Set(QueryClusterID, strconv.FormatInt(*clusterID, 10))
	}
	if token := strings.TrimSpace(pageToken); token != "" {
		values.Set(QueryPageToken, token)
	}
	if len(values) == 0 {
		return VenuesTable
	}
	return VenuesTable + "?" + values.Encode()
}

// NewVenueWizard opens a wizard run; a preset cluster locks the cluster field.
func NewVenueWizard(defaultClusterID *int64, presetClusterID *int64) string {
	values := url.Values{}
	if defaultClusterID != nil {
		values.Set(QueryDefaultClusterID, strconv.FormatInt(*defaultClusterID, 10))
	}
	if presetClusterID != nil {
		values.Set(QueryPresetClusterID, strconv.FormatInt(*presetClusterID, 10))
	}
	if len(values) == 0 {
		return VenueWizard
	}
	return VenueWizard + "?" + values.Encode()
}

func WizardRun(runID string) string {
	return VenueWizard + "/" + escapeSegment(runID)
}

func WizardMode(runID string) string {
	return WizardRun(runID) + "/" + WizardActionMode
}

func WizardVenue(runID string) string {
	return WizardRun(runID) + "/" + WizardActionVenue
}

func WizardZones(runID string) string {
	return WizardRun(runID) + "/" + WizardActionZones
}

func WizardZoneDelete(runID string, zoneID string) string {
	return WizardZones(runID) + "/" + escapeSegment(zoneID) + "/" + WizardActionDelete
}

func WizardProceed(runID string) string {
	return WizardRun(runID) + "/" + WizardActionProceed
}

func WizardFacilities(runID string) string {
	return WizardRun(runID) + "/" + WizardActionFacilities
}

func WizardAmenities(runID string) string {
	return WizardRun(runID) + "/" + WizardActionAmenities
}

func WizardClose(runID string) string {
	return WizardRun(runID) + "/" + WizardActionClose
}

func AdminsForModule(module string) string {
	return withQuery(Admins, QueryModule, module)
}

func AdminsTableForModule(module string) string {
	return withQuery(AdminsTable, QueryModule, module)
}

func withQuery(path string, key string, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return path
	}
	return path + "?" + url.Values{key: []string{value}}.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
