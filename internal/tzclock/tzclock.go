// Package tzclock provides timezone-aware date and clock-time helpers
// for sun calendars. A Clock owns its own zone cache and locale table,
// so there is no process-global mutable state; callers inject one
// Clock per service.
package tzclock

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sundial-app/sundial/internal/locale"
)

// Timestamp layouts accepted from the forecast provider. With
// timezone=auto Open-Meteo returns zone-local timestamps without an
// offset ("2006-01-02T15:04"); the offset variants cover providers
// that include one.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

const dateLayout = "2006-01-02"

// Clock resolves IANA zones and formats dates and times in them.
// Zone lookups are cached per Clock; the cache is purely a
// performance concern and never invalidated (zone data is static for
// the process lifetime).
type Clock struct {
	table *locale.Table
	now   func() time.Time

	mu    sync.RWMutex
	zones map[string]*time.Location
}

// New returns a Clock rendering dates with the given locale table.
func New(table *locale.Table) *Clock {
	return &Clock{
		table: table,
		now:   time.Now,
		zones: make(map[string]*time.Location),
	}
}

// Location resolves an IANA timezone id through the cache.
func (c *Clock) Location(tz string) (*time.Location, error) {
	c.mu.RLock()
	loc, ok := c.zones[tz]
	c.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}

	c.mu.Lock()
	c.zones[tz] = loc
	c.mu.Unlock()
	return loc, nil
}

// CurrentDateInZone returns today's calendar date as observed in tz.
func (c *Clock) CurrentDateInZone(tz string) (string, error) {
	loc, err := c.Location(tz)
	if err != nil {
		return "", err
	}
	return c.now().In(loc).Format(dateLayout), nil
}

// IsToday reports whether the YYYY-MM-DD date is today's date in tz.
func (c *Clock) IsToday(date, tz string) bool {
	today, err := c.CurrentDateInZone(tz)
	if err != nil {
		return false
	}
	return date == today
}

// IsDaylightNow reports whether the current time-of-day in tz falls in
// the half-open interval [sunrise, sunset), compared on minutes since
// midnight. The sunset minute itself already counts as night.
func (c *Clock) IsDaylightNow(sunrise, sunset, tz string) (bool, error) {
	loc, err := c.Location(tz)
	if err != nil {
		return false, err
	}

	riseMin, err := MinutesOfDay(sunrise)
	if err != nil {
		return false, err
	}
	setMin, err := MinutesOfDay(sunset)
	if err != nil {
		return false, err
	}

	now := c.now().In(loc)
	nowMin := now.Hour()*60 + now.Minute()
	return nowMin >= riseMin && nowMin < setMin, nil
}

// FormatDate renders a YYYY-MM-DD date as a localized long-form
// weekday/month/day label. The date is anchored at local noon so DST
// shifts and offset rounding never flip it to a neighboring day.
func (c *Clock) FormatDate(date, tz string) (string, error) {
	loc, err := c.Location(tz)
	if err != nil {
		return "", err
	}

	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", date, err)
	}

	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, loc)
	return c.table.DateLabel(noon.Weekday(), noon.Day(), noon.Month()), nil
}

// FormatTime renders a timestamp as HH:MM in tz.
func (c *Clock) FormatTime(ts, tz string) (string, error) {
	loc, err := c.Location(tz)
	if err != nil {
		return "", err
	}
	t, err := ParseInZone(ts, loc)
	if err != nil {
		return "", err
	}
	return t.In(loc).Format("15:04"), nil
}

// FormatRange renders "<start> – <end>" with both ends in tz.
func (c *Clock) FormatRange(start, end, tz string) (string, error) {
	from, err := c.FormatTime(start, tz)
	if err != nil {
		return "", err
	}
	to, err := c.FormatTime(end, tz)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s – %s", from, to), nil
}

// LengthLabel renders a minute count as a localized "H h MM min".
func (c *Clock) LengthLabel(minutes int) string {
	return c.table.LengthLabel(minutes)
}

// ParseInZone parses a provider timestamp. Offset-free layouts are
// interpreted in loc, which matches how the forecast provider reports
// zone-local wall times.
func ParseInZone(ts string, loc *time.Location) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, ts, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", ts)
}

// MinutesOfDay extracts the minutes-since-midnight value from the
// clock digits of an ISO timestamp, ignoring the date part and any
// offset. This is the day-length arithmetic base for sun calendars.
func MinutesOfDay(ts string) (int, error) {
	_, clock, ok := strings.Cut(ts, "T")
	if !ok {
		return 0, fmt.Errorf("timestamp %q has no time part", ts)
	}

	parts := strings.SplitN(clock, ":", 3)
	if len(parts) < 2 {
		return 0, fmt.Errorf("timestamp %q has no minute part", ts)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("timestamp %q: bad hour: %w", ts, err)
	}
	minutes, err := strconv.Atoi(parts[1][:min(2, len(parts[1]))])
	if err != nil {
		return 0, fmt.Errorf("timestamp %q: bad minute: %w", ts, err)
	}

	return hours*60 + minutes, nil
}
