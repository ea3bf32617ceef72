package suncal

// Compare aligns two calendars by date: an inner join that walks base
// in order and emits one row per date also present in other. Dates
// known to only one calendar are silently dropped. Since base is
// ascending by date, so is the result.
func Compare(base, other []SunDay) []ComparisonRow {
	byDate := make(map[string]SunDay, len(other))
	for _, day := range other {
		byDate[day.Date] = day
	}

	rows := make([]ComparisonRow, 0, len(base))
	for _, day := range base {
		match, ok := byDate[day.Date]
		if !ok {
			continue
		}
		rows = append(rows, ComparisonRow{
			Date:  day.Date,
			Base:  day,
			Other: match,
			Delta: match.DayLengthMinutes - day.DayLengthMinutes,
		})
	}

	return rows
}
