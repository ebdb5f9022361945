package analyzer

import (
	"sort"
	"time"
)

// DailyBucket aggregates one calendar day. Days without any event are
// synthesized with zero values so the series always spans the full range.
type DailyBucket struct {
	Date          time.Time `json:"-"`
	DateLabel     string    `json:"date"`
	TotalViews    int       `json:"total_views"`
	ActivityCount int       `json:"activity_count"`
	UniqueUsers   int       `json:"unique_users"`
	RollingAvg    float64   `json:"rolling_7day_avg"`
	ChangePct     float64   `json:"view_change_pct"`
}

type dayAgg struct {
	views int
	count int
	users map[int64]struct{}
}

// DailyStats returns one bucket per calendar day in the requested range,
// ascending by date. The rolling average is the mean of total views over the
// trailing 7-day window, which shrinks at the range start; there is no
// look-back before the range. Percent change is 0 for the first day and
// whenever the prior day had zero views.
func (a *Analyzer) DailyStats() []DailyBucket {
	byDay := make(map[time.Time]*dayAgg)
	for _, r := range a.rows {
		agg := byDay[r.date]
		if agg == nil {
			agg = &dayAgg{users: make(map[int64]struct{})}
			byDay[r.date] = agg
		}
		agg.views += r.views
		agg.count++
		agg.users[r.userID] = struct{}{}
	}

	buckets := make([]DailyBucket, 0, a.totalDays)
	window := make([]int, 0, 7)
	windowSum := 0
	prior := 0
	for d := a.start; !d.After(a.end); d = d.AddDate(0, 0, 1) {
		total, count, users := 0, 0, 0
		if agg, ok := byDay[d]; ok {
			total = agg.views
			count = agg.count
			users = len(agg.users)
		}

		window = append(window, total)
		windowSum += total
		if len(window) > 7 {
			windowSum -= window[0]
			window = window[1:]
		}

		b := DailyBucket{
			Date:          d,
			DateLabel:     d.Format(DateLayout),
			TotalViews:    total,
			ActivityCount: count,
			UniqueUsers:   users,
			RollingAvg:    round2(float64(windowSum) / float64(len(window))),
		}
		if len(buckets) > 0 {
			b.ChangePct = pctChange(total, prior)
		}
		prior = total
		buckets = append(buckets, b)
	}
	return buckets
}

// RankDays returns the top and bottom n days by total views, computed over
// the zero-filled series so empty days can appear in either list. Ties
// resolve to the earlier date.
func RankDays(daily []DailyBucket, n int) (top, bottom []DailyBucket) {
	desc := make([]DailyBucket, len(daily))
	copy(desc, daily)
	sort.SliceStable(desc, func(i, j int) bool {
		return desc[i].TotalViews > desc[j].TotalViews
	})

	asc := make([]DailyBucket, len(daily))
	copy(asc, daily)
	sort.SliceStable(asc, func(i, j int) bool {
		return asc[i].TotalViews < asc[j].TotalViews
	})

	if n > len(daily) {
		n = len(daily)
	}
	return desc[:n], asc[:n]
}
