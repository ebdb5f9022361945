package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coursepulse/internal/pkg/async"
)

// rankedDays is how many days appear in each of the top/bottom lists and
// how many peak hours the text report shows.
const rankedDays = 5

// DailySeries bundles the gap-filled daily buckets with their ranking.
type DailySeries struct {
	Series     []DailyBucket `json:"series"`
	TopDays    []DailyBucket `json:"top_days"`
	BottomDays []DailyBucket `json:"bottom_days"`
}

// ReportData is the structured result nesting every aggregate.
type ReportData struct {
	Overview Overview        `json:"overview"`
	Daily    DailySeries     `json:"daily"`
	Weekly   []WeeklyBucket  `json:"weekly"`
	Monthly  []MonthlyBucket `json:"monthly"`
	Hourly   HourlyBreakdown `json:"hourly"`
}

// Report pairs the structured data with the human-readable text summary.
type Report struct {
	Summary string     `json:"summary"`
	Data    ReportData `json:"data"`
}

// Generate computes every aggregate and assembles the structured result and
// the text report. The independent passes (overview, monthly, hourly) fan
// out over a worker pool as pure functions of the normalized rows; the
// weekly pass runs after the daily one since it consumes the zero-filled
// daily series. Either a complete report is returned or an error; output is
// never partially populated.
func (a *Analyzer) Generate() (*Report, error) {
	daily := a.DailyStats()
	if len(daily) != a.totalDays {
		return nil, NewDataError("daily series has %d buckets, expected %d", len(daily), a.totalDays)
	}
	weekly := a.WeeklyStats(daily)

	tasks := []async.Task{
		{
			Name: "overview",
			Run: func(ctx context.Context) (interface{}, error) {
				return a.OverviewStats(), nil
			},
		},
		{
			Name: "monthly",
			Run: func(ctx context.Context) (interface{}, error) {
				return a.MonthlyStats(), nil
			},
		},
		{
			Name: "hourly",
			Run: func(ctx context.Context) (interface{}, error) {
				return a.HourlyStats(), nil
			},
		},
	}

	pool := async.NewPool(len(tasks))
	results := pool.Execute(context.Background(), tasks)
	for _, name := range []string{"overview", "monthly", "hourly"} {
		result, ok := results[name]
		if !ok {
			return nil, NewDataError("aggregation %q did not complete", name)
		}
		if result.Err != nil {
			return nil, result.Err
		}
	}

	overview := results["overview"].Data.(Overview)
	monthly := results["monthly"].Data.([]MonthlyBucket)
	hourly := results["hourly"].Data.(HourlyBreakdown)

	top, bottom := RankDays(daily, rankedDays)
	data := ReportData{
		Overview: overview,
		Daily: DailySeries{
			Series:     daily,
			TopDays:    top,
			BottomDays: bottom,
		},
		Weekly:  weekly,
		Monthly: monthly,
		Hourly:  hourly,
	}

	return &Report{
		Summary: a.composeSummary(data),
		Data:    data,
	}, nil
}

// composeSummary renders the multi-section text report with fixed section
// order: overview, monthly, daily top/bottom, weekly, hourly.
func (a *Analyzer) composeSummary(data ReportData) string {
	sep := strings.Repeat("-", 50)

	lines := []string{
		fmt.Sprintf("Course Access Pattern Analysis (%s to %s)\n",
			a.start.Format(DateLayout), a.end.Format(DateLayout)),
		"Overview:",
		sep,
		fmt.Sprintf("Total Views: %d", data.Overview.TotalViews),
		fmt.Sprintf("Unique Users: %d", data.Overview.UniqueUsers),
		fmt.Sprintf("Total Days: %d", data.Overview.TotalDays),
		fmt.Sprintf("Active Days: %d", data.Overview.ActiveDays),
		fmt.Sprintf("Average Views/Day: %.2f", data.Overview.AvgViewsPerDay),
	}

	lines = append(lines, "Monthly Patterns:", sep)
	maxUsers := maxDailyUsersByMonth(data.Daily.Series)
	for _, m := range data.Monthly {
		lines = append(lines, fmt.Sprintf("%s:\n- Total Views: %d\n- Average Daily Users: %d",
			m.MonthName, m.TotalViews, maxUsers[time.Month(m.Month)]))
	}

	lines = append(lines, "\nDaily Patterns:", sep, "Top 5 Page View Days:")
	for _, d := range data.Daily.TopDays {
		lines = append(lines, fmt.Sprintf("- %s (%d views)", d.Date.Format("01/02"), d.TotalViews))
	}
	lines = append(lines, "\nBottom 5 Page View Days:")
	for _, d := range data.Daily.BottomDays {
		lines = append(lines, fmt.Sprintf("- %s (%d views)", d.Date.Format("01/02"), d.TotalViews))
	}

	lines = append(lines, "\nWeekly Patterns:", sep)
	for _, w := range data.Weekly {
		lines = append(lines, fmt.Sprintf("Week %d (%s to %s):\n- Total Views: %d\n- Average Users: %d",
			w.WeekNumber, w.StartLabel, w.EndLabel, w.TotalViews, w.MaxDailyUsers))
	}

	lines = append(lines, "\nHourly Patterns:", sep, "Peak Hours (Top 5):")
	for i, h := range data.Hourly.Hours {
		if i == rankedDays {
			break
		}
		lines = append(lines, fmt.Sprintf("%s (%s): %d views (%.2f%% of total, %.2f views/day)",
			h.FormattedHour, h.Period, h.TotalViews, h.Percentage, h.AvgDailyViews))
	}

	lines = append(lines, "\nTime Period Distribution:")
	for _, p := range data.Hourly.Periods {
		lines = append(lines, fmt.Sprintf("%s: %d views (%.2f%% of total)",
			p.Period, p.TotalViews, p.Percentage))
	}

	return strings.Join(lines, "\n")
}

// maxDailyUsersByMonth gives, per month, the peak single-day distinct user
// count out of the zero-filled daily series.
func maxDailyUsersByMonth(daily []DailyBucket) map[time.Month]int {
	peak := make(map[time.Month]int)
	for _, d := range daily {
		m := d.Date.Month()
		if d.UniqueUsers > peak[m] {
			peak[m] = d.UniqueUsers
		}
	}
	return peak
}
