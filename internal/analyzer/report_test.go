package analyzer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursepulse/internal/analyzer"
)

func TestGenerateAggregatesAgree(t *testing.T) {
	series := [][]analyzer.ViewEvent{
		{
			ev(1, at(2024, 1, 5, 8), 12),
			ev(1, at(2024, 1, 20, 14), 7),
			ev(1, at(2024, 2, 3, 22), 9),
		},
		{
			ev(2, at(2024, 1, 5, 8), 4),
			ev(2, at(2024, 2, 10, 10), 18),
		},
	}

	a, err := analyzer.NewAnalyzer(series, "2024-01-01", "2024-02-15")
	require.NoError(t, err)

	report, err := a.Generate()
	require.NoError(t, err)
	require.NotNil(t, report)

	data := report.Data
	assert.Equal(t, 50, data.Overview.TotalViews)
	assert.Equal(t, 2, data.Overview.UniqueUsers)
	assert.Equal(t, 46, data.Overview.TotalDays)
	assert.Len(t, data.Daily.Series, 46)

	sumDaily := 0
	for _, d := range data.Daily.Series {
		sumDaily += d.TotalViews
	}
	assert.Equal(t, data.Overview.TotalViews, sumDaily)

	sumMonthly := 0
	for _, m := range data.Monthly {
		sumMonthly += m.TotalViews
	}
	assert.Equal(t, data.Overview.TotalViews, sumMonthly)

	sumHourly := 0
	for _, h := range data.Hourly.Hours {
		sumHourly += h.TotalViews
	}
	assert.Equal(t, data.Overview.TotalViews, sumHourly)

	sumWeekly := 0
	for _, w := range data.Weekly {
		sumWeekly += w.TotalViews
	}
	assert.Equal(t, data.Overview.TotalViews, sumWeekly)

	assert.Len(t, data.Daily.TopDays, 5)
	assert.Len(t, data.Daily.BottomDays, 5)
}

func TestGenerateSummaryText(t *testing.T) {
	a, err := analyzer.NewAnalyzer(sevenDaySeries(), "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	report, err := a.Generate()
	require.NoError(t, err)

	summary := report.Summary
	assert.True(t, strings.HasPrefix(summary, "Course Access Pattern Analysis (2024-01-01 to 2024-01-07)"))

	for _, want := range []string{
		"Overview:",
		"Total Views: 35",
		"Unique Users: 1",
		"Total Days: 7",
		"Active Days: 3",
		"Average Views/Day: 5.00",
		"Monthly Patterns:",
		"January:",
		"- Average Daily Users: 1",
		"Daily Patterns:",
		"Top 5 Page View Days:",
		"- 01/06 (20 views)",
		"Bottom 5 Page View Days:",
		"- 01/02 (0 views)",
		"Weekly Patterns:",
		"Week 1 (2024-01-01 to 2024-01-07):",
		"Hourly Patterns:",
		"Peak Hours (Top 5):",
		"8 PM (Evening): 20 views",
		"Time Period Distribution:",
	} {
		assert.Contains(t, summary, want)
	}
}

func TestGenerateSummarySectionOrder(t *testing.T) {
	a, err := analyzer.NewAnalyzer(sevenDaySeries(), "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	report, err := a.Generate()
	require.NoError(t, err)

	sections := []string{
		"Overview:",
		"Monthly Patterns:",
		"Daily Patterns:",
		"Weekly Patterns:",
		"Hourly Patterns:",
		"Time Period Distribution:",
	}
	prev := -1
	for _, s := range sections {
		idx := strings.Index(report.Summary, s)
		require.GreaterOrEqual(t, idx, 0, s)
		assert.Greater(t, idx, prev, "%s must come after the previous section", s)
		prev = idx
	}
}
