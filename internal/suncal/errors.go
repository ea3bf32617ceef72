package suncal

import "errors"

// Error kinds surfaced by the lookup pipeline. Call sites wrap these
// with %w and context; the API layer maps them to HTTP status codes and
// localized messages.
var (
	// ErrGeocodeFailed means the geocoding request itself failed
	// (transport error or non-success status).
	ErrGeocodeFailed = errors.New("geocoding request failed")

	// ErrGeocodeEmpty means the request succeeded but matched nothing.
	// Empty-query submissions short-circuit to this error before any
	// network call is made.
	ErrGeocodeEmpty = errors.New("no matching location")

	// ErrCalendarFailed means the forecast request failed.
	ErrCalendarFailed = errors.New("sun calendar request failed")

	// ErrMissingCalendarData means the forecast response lacks one of
	// the expected daily arrays (time, sunrise, sunset).
	ErrMissingCalendarData = errors.New("daily data missing from forecast response")
)
