// Package errors provides structured console errors with i18n message keys.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Venue errors
	CodeVenueNameEmpty        Code = "VENUE_NAME_EMPTY"
	CodeVenueInvalid          Code = "VENUE_INVALID"
	CodeVenueSubmissionFailed Code = "VENUE_SUBMISSION_FAILED"

	// Wizard errors
	CodeWizardInvalidTransition    Code = "WIZARD_INVALID_TRANSITION"
	CodeWizardSubmissionInProgress Code = "WIZARD_SUBMISSION_IN_PROGRESS"
	CodeWizardClosed               Code = "WIZARD_CLOSED"

	// Zone and facility errors
	CodeZoneInvalid      Code = "ZONE_INVALID"
	CodeFacilityInvalid  Code = "FACILITY_INVALID"
	CodeAmenityInvalid   Code = "AMENITY_INVALID"
	CodeAmenityDuplicate Code = "AMENITY_DUPLICATE"

	// Cluster and admin errors
	CodeClusterInvalid Code = "CLUSTER_INVALID"
	CodeAdminInvalid   Code = "ADMIN_INVALID"

	// Storage and collaborator errors
	CodeNotFound             Code = "NOT_FOUND"
	CodeAlreadyExists        Code = "ALREADY_EXISTS"
	CodeDirectoryUnavailable Code = "DIRECTORY_UNAVAILABLE"
)

// HTTPStatus maps domain codes to HTTP response statuses.
func (c Code) HTTPStatus() int {
	switch c {
	// Unprocessable - validation failures, bad input
	case CodeVenueNameEmpty,
		CodeVenueInvalid,
		CodeZoneInvalid,
		CodeFacilityInvalid,
		CodeAmenityInvalid,
		CodeClusterInvalid,
		CodeAdminInvalid:
		return http.StatusUnprocessableEntity

	// Conflict - state doesn't allow operation
	case CodeWizardInvalidTransition,
		CodeWizardSubmissionInProgress,
		CodeWizardClosed,
		CodeAmenityDuplicate,
		CodeAlreadyExists:
		return http.StatusConflict

	case CodeNotFound:
		return http.StatusNotFound

	// Bad gateway - the directory collaborator failed
	case CodeVenueSubmissionFailed,
		CodeDirectoryUnavailable:
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// MessageKey returns the catalog key holding the user-facing message.
func (c Code) MessageKey() string {
	if c == "" {
		c = CodeUnknown
	}
	return "error." + string(c)
}
