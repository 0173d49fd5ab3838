// Package venue defines the directory entities managed by the console:
// clusters, venues, zones, amenities and facilities.
package venue
