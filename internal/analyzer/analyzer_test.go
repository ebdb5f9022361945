// Package analyzer_test contains tests for the analyzer package
package analyzer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursepulse/internal/analyzer"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func ev(user int64, ts time.Time, views int) analyzer.ViewEvent {
	return analyzer.ViewEvent{UserID: user, Timestamp: ts, Views: views}
}

// sevenDaySeries is the canonical one-user week: views 10/0/5/0/0/20/0 on
// 2024-01-01..2024-01-07.
func sevenDaySeries() [][]analyzer.ViewEvent {
	return [][]analyzer.ViewEvent{
		{
			ev(1, at(2024, 1, 1, 10), 10),
			ev(1, at(2024, 1, 3, 15), 5),
			ev(1, at(2024, 1, 6, 20), 20),
		},
	}
}

func TestNewAnalyzerValidation(t *testing.T) {
	testCases := []struct {
		name      string
		series    [][]analyzer.ViewEvent
		startDate string
		endDate   string
	}{
		{
			name:      "invalid start date",
			series:    sevenDaySeries(),
			startDate: "01/01/2024",
			endDate:   "2024-01-07",
		},
		{
			name:      "invalid end date",
			series:    sevenDaySeries(),
			startDate: "2024-01-01",
			endDate:   "not-a-date",
		},
		{
			name:      "start after end",
			series:    sevenDaySeries(),
			startDate: "2024-01-07",
			endDate:   "2024-01-01",
		},
		{
			name:      "no events at all",
			series:    [][]analyzer.ViewEvent{},
			startDate: "2024-01-01",
			endDate:   "2024-01-07",
		},
		{
			name: "all events outside range",
			series: [][]analyzer.ViewEvent{
				{ev(1, at(2023, 12, 25, 9), 5)},
			},
			startDate: "2024-01-01",
			endDate:   "2024-01-07",
		},
		{
			name: "zero timestamp",
			series: [][]analyzer.ViewEvent{
				{{UserID: 1, Views: 5}},
			},
			startDate: "2024-01-01",
			endDate:   "2024-01-07",
		},
		{
			name: "negative view count",
			series: [][]analyzer.ViewEvent{
				{ev(1, at(2024, 1, 2, 9), -1)},
			},
			startDate: "2024-01-01",
			endDate:   "2024-01-07",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := analyzer.NewAnalyzer(tc.series, tc.startDate, tc.endDate)
			require.Error(t, err)

			var dataErr *analyzer.DataError
			assert.ErrorAs(t, err, &dataErr)
		})
	}
}

func TestFilteringIncludesEntireEndDate(t *testing.T) {
	series := [][]analyzer.ViewEvent{
		{
			ev(1, at(2023, 12, 31, 23), 100), // day before range
			ev(1, at(2024, 1, 1, 0), 3),
			ev(1, time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC), 7), // last second of range
			ev(1, at(2024, 1, 8, 0), 50), // day after range
		},
	}

	a, err := analyzer.NewAnalyzer(series, "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	overview := a.OverviewStats()
	assert.Equal(t, 10, overview.TotalViews)
	assert.Equal(t, 2, overview.ActiveDays)
}

func TestOverviewStats(t *testing.T) {
	a, err := analyzer.NewAnalyzer(sevenDaySeries(), "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	overview := a.OverviewStats()
	assert.Equal(t, 35, overview.TotalViews)
	assert.Equal(t, 1, overview.UniqueUsers)
	assert.Equal(t, 7, overview.TotalDays)
	assert.Equal(t, 3, overview.ActiveDays)
	assert.InDelta(t, 5.0, overview.AvgViewsPerDay, 0.001)
}

func TestOverviewMultipleUsers(t *testing.T) {
	series := [][]analyzer.ViewEvent{
		{ev(1, at(2024, 3, 4, 9), 4), ev(1, at(2024, 3, 5, 9), 6)},
		{ev(2, at(2024, 3, 4, 11), 10)},
	}

	a, err := analyzer.NewAnalyzer(series, "2024-03-04", "2024-03-10")
	require.NoError(t, err)

	overview := a.OverviewStats()
	assert.Equal(t, 20, overview.TotalViews)
	assert.Equal(t, 2, overview.UniqueUsers)
	assert.Equal(t, 2, overview.ActiveDays)
	assert.InDelta(t, 2.86, overview.AvgViewsPerDay, 0.001)
}
