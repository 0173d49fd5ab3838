package admin

import (
	"strconv"
	"strings"
	"time"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	"github.com/louisbranch/venuedesk/internal/services/admin/templates"
	"github.com/louisbranch/venuedesk/internal/services/admin/venue"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard/geofence"
	"golang.org/x/text/message"
)

// displayTimeLayout is used for created-at columns.
const displayTimeLayout = "2006-01-02 15:04"

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(displayTimeLayout)
}

// formatCount renders n with the locale's digit grouping.
func formatCount(loc *message.Printer, n int64) string {
	return loc.Sprintf("%d", n)
}

func formatGeofence(mode geofence.Mode, loc *message.Printer) string {
	return loc.Sprintf("wizard.mode." + mode.String())
}

func formatFacilityKind(kind venue.FacilityKind, loc *message.Printer) string {
	return loc.Sprintf("facilities.kind." + string(kind))
}

// parseOptionalClusterID reads a positive cluster id; blank means none.
func parseOptionalClusterID(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	clusterID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || clusterID <= 0 {
		return nil, platformerrors.WithMetadata(platformerrors.CodeClusterInvalid, "invalid cluster id", map[string]string{"cluster_id": raw})
	}
	return &clusterID, nil
}

func clusterOptions(clusters []venue.Cluster) []templates.Option {
	options := make([]templates.Option, 0, len(clusters))
	for _, cluster := range clusters {
		label := cluster.Name
		if region := strings.TrimSpace(cluster.Region); region != "" {
			label += " (" + region + ")"
		}
		options = append(options, templates.Option{Value: strconv.FormatInt(cluster.ID, 10), Label: label})
	}
	return options
}

func clusterNames(clusters []venue.Cluster) map[int64]string {
	names := make(map[int64]string, len(clusters))
	for _, cluster := range clusters {
		names[cluster.ID] = cluster.Name
	}
	return names
}

func formatClusterID(clusterID *int64) string {
	if clusterID == nil {
		return ""
	}
	return strconv.FormatInt(*clusterID, 10)
}
