package suncal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sundial-app/sundial/internal/locale"
	"github.com/sundial-app/sundial/internal/tzclock"
)

func TestGetPhotoWindowsBoundaries(t *testing.T) {
	clk := tzclock.New(locale.ForLanguage("pl"))
	d := SunDay{
		Date:    "2024-06-21",
		Sunrise: "2024-06-21T04:50",
		Sunset:  "2024-06-21T21:10",
	}

	windows, err := GetPhotoWindows(d, clk, "Europe/Warsaw")
	require.NoError(t, err)

	// Boundaries shared with sunrise/sunset reuse the provider text.
	require.Equal(t, d.Sunrise, windows.MorningBlue.End)
	require.Equal(t, d.Sunrise, windows.MorningGolden.Start)
	require.Equal(t, d.Sunset, windows.EveningGolden.End)
	require.Equal(t, d.Sunset, windows.EveningBlue.Start)

	// Shifted boundaries are exactly sixty minutes away in local time.
	require.Equal(t, "2024-06-21T03:50", windows.MorningBlue.Start)
	require.Equal(t, "2024-06-21T05:50", windows.MorningGolden.End)
	require.Equal(t, "2024-06-21T20:10", windows.EveningGolden.Start)
	require.Equal(t, "2024-06-21T22:10", windows.EveningBlue.End)
}

func TestGetPhotoWindowsCrossesMidnight(t *testing.T) {
	clk := tzclock.New(locale.ForLanguage("pl"))
	d := SunDay{
		Date:    "2024-06-21",
		Sunrise: "2024-06-21T00:20",
		Sunset:  "2024-06-21T23:30",
	}

	windows, err := GetPhotoWindows(d, clk, "Europe/Oslo")
	require.NoError(t, err)

	require.Equal(t, "2024-06-20T23:20", windows.MorningBlue.Start)
	require.Equal(t, "2024-06-22T00:30", windows.EveningBlue.End)
}

func TestGetPhotoWindowsBadTimezone(t *testing.T) {
	clk := tzclock.New(locale.ForLanguage("pl"))
	_, err := GetPhotoWindows(SunDay{Sunrise: "2024-06-21T04:50", Sunset: "2024-06-21T21:10"}, clk, "Not/AZone")
	require.Error(t, err)
}
