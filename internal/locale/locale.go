package locale

import (
	"fmt"
	"time"
)

// Table holds the display strings for one UI language.
type Table struct {
	Lang string

	// Weekdays indexed by time.Weekday (Sunday = 0).
	Weekdays [7]string
	// Months indexed by time.Month - 1. Polish uses the genitive forms
	// because the names always follow a day number.
	Months [12]string

	ErrGeocodeFailed  string
	ErrGeocodeEmpty   string
	ErrCalendarFailed string
	ErrMissingDaily   string
	ErrUnknown        string

	hourUnit   string
	minuteUnit string
}

var polish = &Table{
	Lang: "pl",
	Weekdays: [7]string{
		"niedziela", "poniedziałek", "wtorek", "środa", "czwartek", "piątek", "sobota",
	},
	Months: [12]string{
		"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
		"lipca", "sierpnia", "września", "października", "listopada", "grudnia",
	},
	ErrGeocodeFailed:  "Błąd geokodowania lokalizacji.",
	ErrGeocodeEmpty:   "Nie znaleziono takiej miejscowości.",
	ErrCalendarFailed: "Nie udało się pobrać godzin wschodu i zachodu słońca.",
	ErrMissingDaily:   "Brak danych dziennych w odpowiedzi API.",
	ErrUnknown:        "Wystąpił nieoczekiwany błąd.",
	hourUnit:          "h",
	minuteUnit:        "min",
}

var english = &Table{
	Lang: "en",
	Weekdays: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	ErrGeocodeFailed:  "Failed to geocode the location.",
	ErrGeocodeEmpty:   "No matching place was found.",
	ErrCalendarFailed: "Could not fetch sunrise and sunset times.",
	ErrMissingDaily:   "Daily data missing from the API response.",
	ErrUnknown:        "An unexpected error occurred.",
	hourUnit:          "h",
	minuteUnit:        "min",
}

// ForLanguage returns the table for a language code. Polish is the
// default, matching the original UI language of the app.
func ForLanguage(lang string) *Table {
	switch lang {
	case "en":
		return english
	default:
		return polish
	}
}

// DateLabel renders a long-form date from its parts. Polish puts the
// day number before the month name, English the other way around.
func (t *Table) DateLabel(weekday time.Weekday, day int, month time.Month) string {
	if t.Lang == "en" {
		return fmt.Sprintf("%s, %s %d", t.Weekdays[weekday], t.Months[month-1], day)
	}
	return fmt.Sprintf("%s, %d %s", t.Weekdays[weekday], day, t.Months[month-1])
}

// LengthLabel renders a minute count as "H h MM min".
func (t *Table) LengthLabel(minutes int) string {
	return fmt.Sprintf("%d %s %02d %s", minutes/60, t.hourUnit, minutes%60, t.minuteUnit)
}
