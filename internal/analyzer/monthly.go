package analyzer

import (
	"sort"
	"time"
)

// MonthlyBucket aggregates one calendar month within the requested range.
// RequestedDays counts only the range's days falling in that month, not the
// month's full length, and AvgDailyViews is scaled by it.
type MonthlyBucket struct {
	Month         int     `json:"month"`
	MonthName     string  `json:"month_name"`
	TotalViews    int     `json:"total_views"`
	AvgViews      float64 `json:"avg_views"`
	ActivityCount int     `json:"activity_count"`
	ActiveDays    int     `json:"active_days"`
	RequestedDays int     `json:"total_days"`
	AvgDailyViews float64 `json:"avg_daily_views"`
	ChangePct     float64 `json:"view_change_pct"`
}

type monthAgg struct {
	views int
	count int
	days  map[time.Time]struct{}
}

// MonthlyStats groups the normalized rows by calendar month, ordered by
// month number, with the zero-safe percent-change rule applied on that
// ordering. Months without any event in range are omitted.
func (a *Analyzer) MonthlyStats() []MonthlyBucket {
	byMonth := make(map[time.Month]*monthAgg)
	for _, r := range a.rows {
		agg := byMonth[r.month]
		if agg == nil {
			agg = &monthAgg{days: make(map[time.Time]struct{})}
			byMonth[r.month] = agg
		}
		agg.views += r.views
		agg.count++
		agg.days[r.date] = struct{}{}
	}

	months := make([]time.Month, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	requestedDays := a.requestedDaysByMonth()

	buckets := make([]MonthlyBucket, 0, len(months))
	for _, m := range months {
		agg := byMonth[m]
		b := MonthlyBucket{
			Month:         int(m),
			MonthName:     m.String(),
			TotalViews:    agg.views,
			ActivityCount: agg.count,
			ActiveDays:    len(agg.days),
			RequestedDays: requestedDays[m],
		}
		if agg.count > 0 {
			b.AvgViews = round2(float64(agg.views) / float64(agg.count))
		}
		if b.RequestedDays > 0 {
			b.AvgDailyViews = round2(float64(agg.views) / float64(b.RequestedDays))
		}
		if len(buckets) > 0 {
			b.ChangePct = pctChange(b.TotalViews, buckets[len(buckets)-1].TotalViews)
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// requestedDaysByMonth counts, per month, the calendar days of the requested
// range that fall in it.
func (a *Analyzer) requestedDaysByMonth() map[time.Month]int {
	days := make(map[time.Month]int)
	for d := a.start; !d.After(a.end); d = d.AddDate(0, 0, 1) {
		days[d.Month()]++
	}
	return days
}
