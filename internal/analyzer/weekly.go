package analyzer

import "time"

// WeeklyBucket aggregates a fixed 7-day span. The first bucket starts at the
// Monday on or before the range start, so it may begin before the requested
// range; the last one may extend past it.
type WeeklyBucket struct {
	WeekNumber int       `json:"week"`
	WeekStart  time.Time `json:"-"`
	WeekEnd    time.Time `json:"-"`
	StartLabel string    `json:"week_start"`
	EndLabel   string    `json:"week_end"`
	TotalViews int       `json:"total_views"`
	// MaxDailyUsers is the maximum of per-day distinct user counts inside
	// the week. This approximates weekly reach and can understate the true
	// weekly distinct-user count; kept as-is for dashboard compatibility.
	MaxDailyUsers int     `json:"max_daily_users"`
	ChangePct     float64 `json:"view_change_pct"`
}

// WeeklyStats tiles the requested range with Monday-anchored 7-day buckets
// and assigns each day of the zero-filled daily series to exactly one of
// them. Generation stops once a bucket would start after the range end.
func (a *Analyzer) WeeklyStats(daily []DailyBucket) []WeeklyBucket {
	firstMonday := mondayOnOrBefore(a.start)

	var weeks []WeeklyBucket
	num := 1
	for cur := firstMonday; !cur.After(a.end); cur = cur.AddDate(0, 0, 7) {
		weekEnd := cur.AddDate(0, 0, 6)
		weeks = append(weeks, WeeklyBucket{
			WeekNumber: num,
			WeekStart:  cur,
			WeekEnd:    weekEnd,
			StartLabel: cur.Format(DateLayout),
			EndLabel:   weekEnd.Format(DateLayout),
		})
		num++
	}

	for _, d := range daily {
		idx := int(d.Date.Sub(firstMonday).Hours()) / 24 / 7
		if idx < 0 || idx >= len(weeks) {
			continue
		}
		w := &weeks[idx]
		w.TotalViews += d.TotalViews
		if d.UniqueUsers > w.MaxDailyUsers {
			w.MaxDailyUsers = d.UniqueUsers
		}
	}

	for i := 1; i < len(weeks); i++ {
		weeks[i].ChangePct = pctChange(weeks[i].TotalViews, weeks[i-1].TotalViews)
	}
	return weeks
}

func mondayOnOrBefore(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
