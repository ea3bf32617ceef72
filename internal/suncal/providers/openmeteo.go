// Package providers holds the Open-Meteo API clients behind the
// suncal interfaces: the geocoding search and the daily sunrise/sunset
// forecast.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"github.com/sundial-app/sundial/internal/suncal"
)

const (
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL  = "https://api.open-meteo.com/v1/forecast"

	// Open-Meteo range limits for daily forecasts.
	maxPastDays   = 92
	maxFutureDays = 16
)

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// GeocoderClient resolves free-text place names against the Open-Meteo
// geocoding API.
type GeocoderClient struct {
	baseURL  string
	language string
	client   *http.Client
	circuit  *gobreaker.CircuitBreaker
}

// NewGeocoderClient builds a geocoder. baseURL may be empty to use the
// public endpoint; language selects the locale of returned names.
func NewGeocoderClient(client *http.Client, baseURL, language string) *GeocoderClient {
	if baseURL == "" {
		baseURL = defaultGeocodingURL
	}
	return &GeocoderClient{
		baseURL:  baseURL,
		language: language,
		client:   client,
		circuit:  newBreaker("openmeteo-geocoding"),
	}
}

// GeocodeLocation returns the best match for query. A blank query
// short-circuits to ErrGeocodeEmpty without touching the network.
func (g *GeocoderClient) GeocodeLocation(ctx context.Context, query string) (suncal.LocationResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return suncal.LocationResult{}, suncal.ErrGeocodeEmpty
	}

	values := url.Values{}
	values.Set("name", query)
	values.Set("count", "1")
	values.Set("language", g.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", g.baseURL, values.Encode()), nil)
	if err != nil {
		return suncal.LocationResult{}, fmt.Errorf("%w: %v", suncal.ErrGeocodeFailed, err)
	}

	resp, err := doRequest(ctx, g.client, g.circuit, req)
	if err != nil {
		return suncal.LocationResult{}, fmt.Errorf("%w: %v", suncal.ErrGeocodeFailed, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Timezone  string  `json:"timezone"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return suncal.LocationResult{}, fmt.Errorf("%w: %v", suncal.ErrGeocodeFailed, err)
	}

	if len(payload.Results) == 0 {
		return suncal.LocationResult{}, suncal.ErrGeocodeEmpty
	}

	best := payload.Results[0]
	return suncal.LocationResult{
		Name:      best.Name,
		Country:   best.Country,
		Timezone:  best.Timezone,
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
	}, nil
}

// ForecastClient fetches daily sunrise/sunset calendars from the
// Open-Meteo forecast API.
type ForecastClient struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
	now     func() time.Time
}

// NewForecastClient builds a forecast client. baseURL may be empty to
// use the public endpoint.
func NewForecastClient(client *http.Client, baseURL string) *ForecastClient {
	if baseURL == "" {
		baseURL = defaultForecastURL
	}
	return &ForecastClient{
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("openmeteo-forecast"),
		now:     time.Now,
	}
}

// FetchSunCalendar retrieves one SunDay per date in the inclusive
// window [today-pastDays, today+futureDays]. The window is silently
// clamped to the provider limits (92 days back, 16 forward) and
// anchored on the caller's local clock; the provider derives the
// location's timezone from the coordinates.
func (f *ForecastClient) FetchSunCalendar(ctx context.Context, loc suncal.LocationResult, pastDays, futureDays int) ([]suncal.SunDay, error) {
	now := f.now()
	start := now.AddDate(0, 0, -clampInt(pastDays, 0, maxPastDays))
	end := now.AddDate(0, 0, clampInt(futureDays, 0, maxFutureDays))

	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	values.Set("daily", "sunrise,sunset")
	values.Set("timezone", "auto")
	values.Set("start_date", start.Format("2006-01-02"))
	values.Set("end_date", end.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", f.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", suncal.ErrCalendarFailed, err)
	}

	resp, err := doRequest(ctx, f.client, f.circuit, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", suncal.ErrCalendarFailed, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Daily suncal.DailyArrays `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", suncal.ErrCalendarFailed, err)
	}

	return suncal.BuildSunDays(payload.Daily)
}
