package suncal

import (
	"fmt"
	"time"

	"github.com/sundial-app/sundial/internal/tzclock"
)

// photoOffset is the fixed width of each photography window.
const photoOffset = 60 * time.Minute

// GetPhotoWindows derives the four photography windows for one day:
// blue hour and golden hour around sunrise, then golden hour and blue
// hour around sunset. Offsets are applied to the instant in the
// location's zone, so a DST transition inside a window moves the wall
// clock exactly the way the time package moves it. Window boundaries
// that coincide with sunrise or sunset reuse the provider's timestamp
// text verbatim.
func GetPhotoWindows(day SunDay, clk *tzclock.Clock, tz string) (PhotoWindows, error) {
	loc, err := clk.Location(tz)
	if err != nil {
		return PhotoWindows{}, err
	}

	riseBefore, err := shiftTimestamp(day.Sunrise, -photoOffset, loc)
	if err != nil {
		return PhotoWindows{}, err
	}
	riseAfter, err := shiftTimestamp(day.Sunrise, photoOffset, loc)
	if err != nil {
		return PhotoWindows{}, err
	}
	setBefore, err := shiftTimestamp(day.Sunset, -photoOffset, loc)
	if err != nil {
		return PhotoWindows{}, err
	}
	setAfter, err := shiftTimestamp(day.Sunset, photoOffset, loc)
	if err != nil {
		return PhotoWindows{}, err
	}

	return PhotoWindows{
		MorningBlue:   Window{Start: riseBefore, End: day.Sunrise},
		MorningGolden: Window{Start: day.Sunrise, End: riseAfter},
		EveningGolden: Window{Start: setBefore, End: day.Sunset},
		EveningBlue:   Window{Start: day.Sunset, End: setAfter},
	}, nil
}

// shiftTimestamp moves a provider timestamp by offset and renders it
// back in the same zone-local minute-precision form the provider uses.
func shiftTimestamp(ts string, offset time.Duration, loc *time.Location) (string, error) {
	t, err := tzclock.ParseInZone(ts, loc)
	if err != nil {
		return "", fmt.Errorf("shift timestamp: %w", err)
	}
	return t.Add(offset).In(loc).Format("2006-01-02T15:04"), nil
}
