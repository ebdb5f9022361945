package analyzer

import "time"

// Overview is the whole-range scalar summary.
type Overview struct {
	TotalViews     int     `json:"total_views"`
	UniqueUsers    int     `json:"unique_users"`
	TotalDays      int     `json:"total_days"`
	ActiveDays     int     `json:"active_days"`
	AvgViewsPerDay float64 `json:"avg_views_per_day"`
}

// OverviewStats summarizes the normalized row set. Total days is the
// inclusive range length; active days counts distinct dates with at least
// one event.
func (a *Analyzer) OverviewStats() Overview {
	users := make(map[int64]struct{})
	days := make(map[time.Time]struct{})
	total := 0
	for _, r := range a.rows {
		total += r.views
		users[r.userID] = struct{}{}
		days[r.date] = struct{}{}
	}

	return Overview{
		TotalViews:     total,
		UniqueUsers:    len(users),
		TotalDays:      a.totalDays,
		ActiveDays:     len(days),
		AvgViewsPerDay: round2(float64(total) / float64(a.totalDays)),
	}
}
