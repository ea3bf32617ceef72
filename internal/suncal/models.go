package suncal

// LocationResult is a geocoding match. Values are immutable once
// fetched; a new search replaces the whole record.
type LocationResult struct {
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Timezone  string  `json:"timezone"` // IANA identifier, e.g. "Europe/Warsaw"
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SunDay is one calendar day's solar data for a location.
//
// Date is calendar-local to the location's timezone (YYYY-MM-DD).
// Sunrise and Sunset keep the provider's timestamp text. Day and night
// lengths are derived from the clock digits of those timestamps only,
// so DayLengthMinutes+NightLengthMinutes == 1440 by construction.
type SunDay struct {
	Date               string `json:"date"`
	Sunrise            string `json:"sunrise"`
	Sunset             string `json:"sunset"`
	DayLengthMinutes   int    `json:"dayLengthMinutes"`
	NightLengthMinutes int    `json:"nightLengthMinutes"`
}

// Window is a single {start, end} timestamp pair.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PhotoWindows are the four photography windows derived from one
// SunDay: blue and golden hour around sunrise, golden and blue hour
// around sunset. Recomputed on demand, never stored.
type PhotoWindows struct {
	MorningBlue   Window `json:"morningBlue"`
	MorningGolden Window `json:"morningGolden"`
	EveningGolden Window `json:"eveningGolden"`
	EveningBlue   Window `json:"eveningBlue"`
}

// ComparisonRow aligns two locations' records for one date.
// Delta is other minus base; positive means the other location has the
// longer day.
type ComparisonRow struct {
	Date  string `json:"date"`
	Base  SunDay `json:"base"`
	Other SunDay `json:"other"`
	Delta int    `json:"deltaMinutes"`
}
