package suncal

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sundial-app/sundial/internal/tzclock"
)

// Service runs the geocode-then-fetch pipeline and assembles the
// display views. It holds no mutable state of its own; every lookup
// produces a fresh, fully derived view.
type Service struct {
	geocoder Geocoder
	fetcher  CalendarFetcher
	clock    *tzclock.Clock
}

// NewService creates a new Service.
func NewService(geocoder Geocoder, fetcher CalendarFetcher, clock *tzclock.Clock) *Service {
	return &Service{
		geocoder: geocoder,
		fetcher:  fetcher,
		clock:    clock,
	}
}

// DayView is a SunDay enriched with everything a client renders:
// localized labels and the derived photography windows.
type DayView struct {
	SunDay
	IsToday          bool             `json:"isToday"`
	DaylightNow      bool             `json:"daylightNow"`
	DateLabel        string           `json:"dateLabel"`
	SunriseLabel     string           `json:"sunriseLabel"`
	SunsetLabel      string           `json:"sunsetLabel"`
	DayLengthLabel   string           `json:"dayLengthLabel"`
	NightLengthLabel string           `json:"nightLengthLabel"`
	Photo            PhotoWindowsView `json:"photoWindows"`
}

// PhotoWindowsView carries the raw windows plus the combined
// "blue / golden" range labels shown next to each horizon event.
type PhotoWindowsView struct {
	PhotoWindows
	MorningLabel string `json:"morningLabel"`
	EveningLabel string `json:"eveningLabel"`
}

// CalendarView is one location's complete sun calendar, split around
// today as observed in the location's own timezone.
type CalendarView struct {
	Location    LocationResult `json:"location"`
	CurrentDate string         `json:"currentDate"`
	Days        []DayView      `json:"days"`
	Today       *DayView       `json:"today,omitempty"`
	Past        []DayView      `json:"pastDays"`
	Upcoming    []DayView      `json:"upcomingDays"`
}

// ComparisonRowView is a ComparisonRow with a signed display label.
type ComparisonRowView struct {
	ComparisonRow
	DateLabel  string `json:"dateLabel"`
	DeltaLabel string `json:"deltaLabel"`
}

// ComparisonView joins two locations' upcoming days by date.
type ComparisonView struct {
	Base  *CalendarView       `json:"base"`
	Other *CalendarView       `json:"other"`
	Rows  []ComparisonRowView `json:"rows"`
}

// Lookup geocodes query and fetches its sun calendar. The two network
// calls are strictly sequential: the forecast is never requested until
// geocoding has resolved.
func (s *Service) Lookup(ctx context.Context, query string, pastDays, futureDays int) (*CalendarView, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrGeocodeEmpty
	}

	loc, err := s.geocoder.GeocodeLocation(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}

	days, err := s.fetcher.FetchSunCalendar(ctx, loc, pastDays, futureDays)
	if err != nil {
		return nil, err
	}

	return s.buildView(loc, days)
}

// CompareLookup runs the pipeline for both place names and joins their
// upcoming days. The two pipelines are independent, so they run
// concurrently; neither sees the other's partial state.
func (s *Service) CompareLookup(ctx context.Context, baseQuery, otherQuery string, pastDays, futureDays int) (*ComparisonView, error) {
	var (
		wg                sync.WaitGroup
		base, other       *CalendarView
		baseErr, otherErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		base, baseErr = s.Lookup(ctx, baseQuery, pastDays, futureDays)
	}()
	go func() {
		defer wg.Done()
		other, otherErr = s.Lookup(ctx, otherQuery, pastDays, futureDays)
	}()
	wg.Wait()

	if baseErr != nil {
		return nil, baseErr
	}
	if otherErr != nil {
		return nil, otherErr
	}

	rows := Compare(sunDays(base.Upcoming), sunDays(other.Upcoming))

	views := make([]ComparisonRowView, 0, len(rows))
	for _, row := range rows {
		dateLabel, err := s.clock.FormatDate(row.Date, base.Location.Timezone)
		if err != nil {
			return nil, err
		}
		views = append(views, ComparisonRowView{
			ComparisonRow: row,
			DateLabel:     dateLabel,
			DeltaLabel:    fmt.Sprintf("%+d min", row.Delta),
		})
	}

	return &ComparisonView{Base: base, Other: other, Rows: views}, nil
}

func (s *Service) buildView(loc LocationResult, days []SunDay) (*CalendarView, error) {
	currentDate, err := s.clock.CurrentDateInZone(loc.Timezone)
	if err != nil {
		return nil, err
	}

	view := &CalendarView{
		Location:    loc,
		CurrentDate: currentDate,
		Days:        make([]DayView, 0, len(days)),
		Past:        []DayView{},
		Upcoming:    []DayView{},
	}

	for _, day := range days {
		dv, err := s.buildDayView(day, loc.Timezone, currentDate)
		if err != nil {
			return nil, err
		}

		view.Days = append(view.Days, dv)
		if dv.IsToday {
			today := dv
			view.Today = &today
		}
		if day.Date < currentDate {
			view.Past = append(view.Past, dv)
		} else {
			view.Upcoming = append(view.Upcoming, dv)
		}
	}

	return view, nil
}

func (s *Service) buildDayView(day SunDay, tz, currentDate string) (DayView, error) {
	windows, err := GetPhotoWindows(day, s.clock, tz)
	if err != nil {
		return DayView{}, err
	}

	morningBlue, err := s.clock.FormatRange(windows.MorningBlue.Start, windows.MorningBlue.End, tz)
	if err != nil {
		return DayView{}, err
	}
	morningGolden, err := s.clock.FormatRange(windows.MorningGolden.Start, windows.MorningGolden.End, tz)
	if err != nil {
		return DayView{}, err
	}
	eveningGolden, err := s.clock.FormatRange(windows.EveningGolden.Start, windows.EveningGolden.End, tz)
	if err != nil {
		return DayView{}, err
	}
	eveningBlue, err := s.clock.FormatRange(windows.EveningBlue.Start, windows.EveningBlue.End, tz)
	if err != nil {
		return DayView{}, err
	}

	dateLabel, err := s.clock.FormatDate(day.Date, tz)
	if err != nil {
		return DayView{}, err
	}
	sunriseLabel, err := s.clock.FormatTime(day.Sunrise, tz)
	if err != nil {
		return DayView{}, err
	}
	sunsetLabel, err := s.clock.FormatTime(day.Sunset, tz)
	if err != nil {
		return DayView{}, err
	}

	dv := DayView{
		SunDay:           day,
		IsToday:          day.Date == currentDate,
		DateLabel:        dateLabel,
		SunriseLabel:     sunriseLabel,
		SunsetLabel:      sunsetLabel,
		DayLengthLabel:   s.clock.LengthLabel(day.DayLengthMinutes),
		NightLengthLabel: s.clock.LengthLabel(day.NightLengthMinutes),
		Photo: PhotoWindowsView{
			PhotoWindows: windows,
			MorningLabel: fmt.Sprintf("%s / %s", morningBlue, morningGolden),
			EveningLabel: fmt.Sprintf("%s / %s", eveningGolden, eveningBlue),
		},
	}

	if dv.IsToday {
		daylight, err := s.clock.IsDaylightNow(day.Sunrise, day.Sunset, tz)
		if err != nil {
			return DayView{}, err
		}
		dv.DaylightNow = daylight
	}

	return dv, nil
}

func sunDays(views []DayView) []SunDay {
	days := make([]SunDay, 0, len(views))
	for _, v := range views {
		days = append(days, v.SunDay)
	}
	return days
}
