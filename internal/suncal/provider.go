package suncal

import "context"

// Geocoder resolves a free-text place name to a location record.
type Geocoder interface {
	GeocodeLocation(ctx context.Context, query string) (LocationResult, error)
}

// CalendarFetcher retrieves a location's daily sunrise/sunset calendar
// for a past/future day window around today.
type CalendarFetcher interface {
	FetchSunCalendar(ctx context.Context, loc LocationResult, pastDays, futureDays int) ([]SunDay, error)
}
