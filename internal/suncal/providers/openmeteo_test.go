package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sundial-app/sundial/internal/suncal"
)

func TestGeocodeLocationParsesBestMatch(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"name":"Wrocław","country":"Polska","timezone":"Europe/Warsaw","latitude":51.1,"longitude":17.03}]}`))
	}))
	defer srv.Close()

	g := NewGeocoderClient(srv.Client(), srv.URL, "pl")
	loc, err := g.GeocodeLocation(context.Background(), "Wrocław")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.Name != "Wrocław" || loc.Country != "Polska" || loc.Timezone != "Europe/Warsaw" {
		t.Fatalf("unexpected location: %+v", loc)
	}
	if loc.Latitude != 51.1 || loc.Longitude != 17.03 {
		t.Fatalf("unexpected coordinates: %+v", loc)
	}

	if gotQuery.Get("name") != "Wrocław" {
		t.Fatalf("expected name=Wrocław, got %q", gotQuery.Get("name"))
	}
	if gotQuery.Get("count") != "1" {
		t.Fatalf("expected count=1, got %q", gotQuery.Get("count"))
	}
	if gotQuery.Get("language") != "pl" {
		t.Fatalf("expected language=pl, got %q", gotQuery.Get("language"))
	}
}

func TestGeocodeLocationEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	g := NewGeocoderClient(srv.Client(), srv.URL, "pl")
	_, err := g.GeocodeLocation(context.Background(), "Nowheresville")
	if !errors.Is(err, suncal.ErrGeocodeEmpty) {
		t.Fatalf("expected ErrGeocodeEmpty, got %v", err)
	}
}

func TestGeocodeLocationBlankQuerySkipsNetwork(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	g := NewGeocoderClient(srv.Client(), srv.URL, "pl")
	_, err := g.GeocodeLocation(context.Background(), "   ")
	if !errors.Is(err, suncal.ErrGeocodeEmpty) {
		t.Fatalf("expected ErrGeocodeEmpty, got %v", err)
	}
	if requests != 0 {
		t.Fatalf("expected no outbound request, got %d", requests)
	}
}

func TestGeocodeLocationServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGeocoderClient(srv.Client(), srv.URL, "pl")
	_, err := g.GeocodeLocation(context.Background(), "Wrocław")
	if !errors.Is(err, suncal.ErrGeocodeFailed) {
		t.Fatalf("expected ErrGeocodeFailed, got %v", err)
	}
}

func TestFetchSunCalendarBuildsClampedRange(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"daily":{"time":["2024-06-21"],"sunrise":["2024-06-21T04:50"],"sunset":["2024-06-21T21:10"]}}`))
	}))
	defer srv.Close()

	f := NewForecastClient(srv.Client(), srv.URL)
	now := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return now }

	loc := suncal.LocationResult{Timezone: "Europe/Warsaw", Latitude: 51.1, Longitude: 17.03}
	days, err := f.FetchSunCalendar(context.Background(), loc, 1000, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The requested window is silently clamped to provider limits.
	if got := gotQuery.Get("start_date"); got != "2024-03-21" {
		t.Fatalf("expected start_date 92 days back (2024-03-21), got %q", got)
	}
	if got := gotQuery.Get("end_date"); got != "2024-07-07" {
		t.Fatalf("expected end_date 16 days ahead (2024-07-07), got %q", got)
	}
	if gotQuery.Get("daily") != "sunrise,sunset" {
		t.Fatalf("expected daily=sunrise,sunset, got %q", gotQuery.Get("daily"))
	}
	if gotQuery.Get("timezone") != "auto" {
		t.Fatalf("expected timezone=auto, got %q", gotQuery.Get("timezone"))
	}

	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].DayLengthMinutes != 980 || days[0].NightLengthMinutes != 460 {
		t.Fatalf("unexpected lengths: %+v", days[0])
	}
}

func TestFetchSunCalendarNegativeWindowClampsToToday(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"daily":{"time":[],"sunrise":[],"sunset":[]}}`))
	}))
	defer srv.Close()

	f := NewForecastClient(srv.Client(), srv.URL)
	now := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return now }

	_, err := f.FetchSunCalendar(context.Background(), suncal.LocationResult{}, -5, -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Get("start_date") != "2024-06-21" || gotQuery.Get("end_date") != "2024-06-21" {
		t.Fatalf("expected both dates clamped to today, got %q..%q",
			gotQuery.Get("start_date"), gotQuery.Get("end_date"))
	}
}

func TestFetchSunCalendarMissingSunset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"daily":{"time":["2024-06-21"],"sunrise":["2024-06-21T04:50"]}}`))
	}))
	defer srv.Close()

	f := NewForecastClient(srv.Client(), srv.URL)
	_, err := f.FetchSunCalendar(context.Background(), suncal.LocationResult{}, 1, 1)
	if !errors.Is(err, suncal.ErrMissingCalendarData) {
		t.Fatalf("expected ErrMissingCalendarData, got %v", err)
	}
}

func TestFetchSunCalendarServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewForecastClient(srv.Client(), srv.URL)
	_, err := f.FetchSunCalendar(context.Background(), suncal.LocationResult{}, 1, 1)
	if !errors.Is(err, suncal.ErrCalendarFailed) {
		t.Fatalf("expected ErrCalendarFailed, got %v", err)
	}
}
