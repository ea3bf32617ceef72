package suncal

import (
	"fmt"

	"github.com/sundial-app/sundial/internal/tzclock"
)

// DailyArrays mirrors the forecast provider's parallel per-day arrays.
type DailyArrays struct {
	Time    []string `json:"time"`
	Sunrise []string `json:"sunrise"`
	Sunset  []string `json:"sunset"`
}

// BuildSunDays converts the provider's parallel arrays into SunDay
// records, preserving provider order (ascending by date).
//
// Day length is sunset minus sunrise on clock digits only; the date
// portions of the timestamps play no part. A provider row whose
// sunrise digits sort after its sunset digits therefore yields a
// negative day length, which is passed through unclamped. Night length
// is 1440 minus day length, so the two always sum to a full day.
func BuildSunDays(daily DailyArrays) ([]SunDay, error) {
	if daily.Time == nil || daily.Sunrise == nil || daily.Sunset == nil {
		return nil, ErrMissingCalendarData
	}
	if len(daily.Sunrise) < len(daily.Time) || len(daily.Sunset) < len(daily.Time) {
		return nil, fmt.Errorf("%w: sunrise/sunset shorter than time axis", ErrMissingCalendarData)
	}

	days := make([]SunDay, 0, len(daily.Time))
	for i, date := range daily.Time {
		sunrise := daily.Sunrise[i]
		sunset := daily.Sunset[i]

		riseMin, err := tzclock.MinutesOfDay(sunrise)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingCalendarData, err)
		}
		setMin, err := tzclock.MinutesOfDay(sunset)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingCalendarData, err)
		}

		dayLength := setMin - riseMin
		days = append(days, SunDay{
			Date:               date,
			Sunrise:            sunrise,
			Sunset:             sunset,
			DayLengthMinutes:   dayLength,
			NightLengthMinutes: 24*60 - dayLength,
		})
	}

	return days, nil
}
