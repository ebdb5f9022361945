package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursepulse/internal/analyzer"
)

func TestFormatHour(t *testing.T) {
	testCases := []struct {
		hour int
		want string
	}{
		{0, "12 AM"},
		{1, "1 AM"},
		{11, "11 AM"},
		{12, "12 PM"},
		{13, "1 PM"},
		{23, "11 PM"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, analyzer.FormatHour(tc.hour), "hour %d", tc.hour)
	}
}

func TestPeriodOfDay(t *testing.T) {
	testCases := []struct {
		hour int
		want string
	}{
		{0, analyzer.PeriodNight},
		{4, analyzer.PeriodNight},
		{5, analyzer.PeriodMorning},
		{11, analyzer.PeriodMorning},
		{12, analyzer.PeriodAfternoon},
		{16, analyzer.PeriodAfternoon},
		{17, analyzer.PeriodEvening},
		{21, analyzer.PeriodEvening},
		{22, analyzer.PeriodNight},
		{23, analyzer.PeriodNight},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, analyzer.PeriodOfDay(tc.hour), "hour %d", tc.hour)
	}
}

func TestHourlyStatsAllEventsAtMidnight(t *testing.T) {
	series := [][]analyzer.ViewEvent{
		{ev(1, at(2024, 1, 1, 0), 5), ev(1, at(2024, 1, 2, 0), 10)},
	}

	a, err := analyzer.NewAnalyzer(series, "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	breakdown := a.HourlyStats()
	require.Len(t, breakdown.Hours, 1, "empty hours are omitted")
	h := breakdown.Hours[0]
	assert.Equal(t, 0, h.Hour)
	assert.Equal(t, "12 AM", h.FormattedHour)
	assert.Equal(t, analyzer.PeriodNight, h.Period)
	assert.Equal(t, 15, h.TotalViews)
	assert.Equal(t, 1, h.UniqueUsers)
	assert.Equal(t, 2, h.UniqueDays)
	assert.InDelta(t, 100.0, h.Percentage, 0.001)

	require.Len(t, breakdown.Periods, 1, "empty periods are omitted")
	assert.Equal(t, analyzer.PeriodNight, breakdown.Periods[0].Period)
	assert.Equal(t, 15, breakdown.Periods[0].TotalViews)
	assert.InDelta(t, 100.0, breakdown.Periods[0].Percentage, 0.001)
}

func TestHourlyStatsOrderingAndShares(t *testing.T) {
	series := [][]analyzer.ViewEvent{
		{
			ev(1, at(2024, 1, 1, 9), 10),
			ev(1, at(2024, 1, 1, 14), 30),
		},
		{ev(2, at(2024, 1, 2, 9), 5)},
	}

	a, err := analyzer.NewAnalyzer(series, "2024-01-01", "2024-01-05")
	require.NoError(t, err)

	breakdown := a.HourlyStats()
	require.Len(t, breakdown.Hours, 2)

	// Descending by views.
	assert.Equal(t, 14, breakdown.Hours[0].Hour)
	assert.Equal(t, 30, breakdown.Hours[0].TotalViews)
	assert.Equal(t, 1, breakdown.Hours[0].UniqueUsers)
	assert.Equal(t, 1, breakdown.Hours[0].UniqueDays)
	assert.InDelta(t, 66.67, breakdown.Hours[0].Percentage, 0.001)
	assert.InDelta(t, 6.0, breakdown.Hours[0].AvgDailyViews, 0.001, "divides by range length")

	assert.Equal(t, 9, breakdown.Hours[1].Hour)
	assert.Equal(t, 15, breakdown.Hours[1].TotalViews)
	assert.Equal(t, 2, breakdown.Hours[1].UniqueUsers)
	assert.Equal(t, 2, breakdown.Hours[1].UniqueDays)
	assert.InDelta(t, 33.33, breakdown.Hours[1].Percentage, 0.001)

	// Period roll-up keeps fixed order regardless of views.
	require.Len(t, breakdown.Periods, 2)
	assert.Equal(t, analyzer.PeriodMorning, breakdown.Periods[0].Period)
	assert.Equal(t, 15, breakdown.Periods[0].TotalViews)
	assert.Equal(t, 2, breakdown.Periods[0].MaxHourlyUsers)
	assert.Equal(t, analyzer.PeriodAfternoon, breakdown.Periods[1].Period)
	assert.Equal(t, 30, breakdown.Periods[1].TotalViews)
}

func TestHourlyStatsTiesKeepHourOrder(t *testing.T) {
	series := [][]analyzer.ViewEvent{
		{
			ev(1, at(2024, 1, 1, 5), 10),
			ev(1, at(2024, 1, 1, 3), 10),
			ev(1, at(2024, 1, 1, 20), 10),
		},
	}

	a, err := analyzer.NewAnalyzer(series, "2024-01-01", "2024-01-01")
	require.NoError(t, err)

	breakdown := a.HourlyStats()
	require.Len(t, breakdown.Hours, 3)
	assert.Equal(t, 3, breakdown.Hours[0].Hour)
	assert.Equal(t, 5, breakdown.Hours[1].Hour)
	assert.Equal(t, 20, breakdown.Hours[2].Hour)
}
