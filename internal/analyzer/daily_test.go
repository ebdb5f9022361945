package analyzer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursepulse/internal/analyzer"
)

func TestDailyStatsGapFilling(t *testing.T) {
	a, err := analyzer.NewAnalyzer(sevenDaySeries(), "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	daily := a.DailyStats()
	require.Len(t, daily, 7)

	wantViews := []int{10, 0, 5, 0, 0, 20, 0}
	for i, d := range daily {
		assert.Equal(t, wantViews[i], d.TotalViews, "day %d", i+1)
		assert.Equal(t, time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC), d.Date)
		assert.Equal(t, time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), d.DateLabel)
	}

	assert.Equal(t, 1, daily[0].UniqueUsers)
	assert.Equal(t, 0, daily[1].UniqueUsers)
	assert.Equal(t, 1, daily[0].ActivityCount)
	assert.Equal(t, 0, daily[4].ActivityCount)
}

func TestDailyStatsRollingAverage(t *testing.T) {
	a, err := analyzer.NewAnalyzer(sevenDaySeries(), "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	daily := a.DailyStats()
	require.Len(t, daily, 7)

	// Shrinking window until seven days are available.
	assert.InDelta(t, 10.0, daily[0].RollingAvg, 0.001)
	assert.InDelta(t, 5.0, daily[1].RollingAvg, 0.001)
	assert.InDelta(t, 5.0, daily[2].RollingAvg, 0.001)
	assert.InDelta(t, 3.75, daily[3].RollingAvg, 0.001)
	assert.InDelta(t, 3.0, daily[4].RollingAvg, 0.001)
	assert.InDelta(t, 5.83, daily[5].RollingAvg, 0.001)
	assert.InDelta(t, 5.0, daily[6].RollingAvg, 0.001)
}

func TestDailyStatsChangePct(t *testing.T) {
	a, err := analyzer.NewAnalyzer(sevenDaySeries(), "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	daily := a.DailyStats()
	require.Len(t, daily, 7)

	assert.InDelta(t, 0.0, daily[0].ChangePct, 0.001, "first day has no prior")
	assert.InDelta(t, -100.0, daily[1].ChangePct, 0.001)
	assert.InDelta(t, 0.0, daily[2].ChangePct, 0.001, "prior day zero yields zero")
	assert.InDelta(t, -100.0, daily[3].ChangePct, 0.001)
	assert.InDelta(t, 0.0, daily[4].ChangePct, 0.001)
	assert.InDelta(t, 0.0, daily[5].ChangePct, 0.001)
	assert.InDelta(t, -100.0, daily[6].ChangePct, 0.001)
}

func TestDailyStatsCoversEveryRangeDay(t *testing.T) {
	series := [][]analyzer.ViewEvent{
		{ev(1, at(2024, 2, 10, 12), 3)},
	}

	a, err := analyzer.NewAnalyzer(series, "2024-01-20", "2024-02-19")
	require.NoError(t, err)

	daily := a.DailyStats()
	require.Len(t, daily, 31)

	for i := 1; i < len(daily); i++ {
		assert.Equal(t, daily[i-1].Date.AddDate(0, 0, 1), daily[i].Date, "dates must be contiguous")
	}
}

func TestRankDays(t *testing.T) {
	a, err := analyzer.NewAnalyzer(sevenDaySeries(), "2024-01-01", "2024-01-07")
	require.NoError(t, err)

	daily := a.DailyStats()
	top, bottom := analyzer.RankDays(daily, 5)
	require.Len(t, top, 5)
	require.Len(t, bottom, 5)

	topLabels := make([]string, 0, len(top))
	for _, d := range top {
		topLabels = append(topLabels, d.DateLabel)
	}
	// Ties break by date order.
	assert.Equal(t, []string{"2024-01-06", "2024-01-01", "2024-01-03", "2024-01-02", "2024-01-04"}, topLabels)

	bottomLabels := make([]string, 0, len(bottom))
	for _, d := range bottom {
		bottomLabels = append(bottomLabels, d.DateLabel)
	}
	assert.Equal(t, []string{"2024-01-02", "2024-01-04", "2024-01-05", "2024-01-07", "2024-01-03"}, bottomLabels)
}

func TestRankDaysShortSeries(t *testing.T) {
	series := [][]analyzer.ViewEvent{
		{ev(1, at(2024, 1, 1, 9), 2), ev(1, at(2024, 1, 2, 9), 8)},
	}

	a, err := analyzer.NewAnalyzer(series, "2024-01-01", "2024-01-02")
	require.NoError(t, err)

	top, bottom := analyzer.RankDays(a.DailyStats(), 5)
	require.Len(t, top, 2)
	require.Len(t, bottom, 2)
	assert.Equal(t, 8, top[0].TotalViews)
	assert.Equal(t, 2, bottom[0].TotalViews)
}
