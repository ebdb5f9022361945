package analyzer

import (
	"fmt"
	"sort"
	"time"
)

// Day periods, in their fixed display order.
const (
	PeriodMorning   = "Morning"
	PeriodAfternoon = "Afternoon"
	PeriodEvening   = "Evening"
	PeriodNight     = "Night"
)

var periodOrder = []string{PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodNight}

// HourlyBucket aggregates one hour of day across the whole range. Unlike the
// daily series, hours with zero events are omitted rather than zero-filled;
// downstream consumers rely on this asymmetry.
type HourlyBucket struct {
	Hour          int     `json:"hour"`
	FormattedHour string  `json:"formatted_hour"`
	Period        string  `json:"period"`
	TotalViews    int     `json:"views"`
	UniqueUsers   int     `json:"unique_users"`
	UniqueDays    int     `json:"unique_days"`
	AvgDailyViews float64 `json:"avg_daily_views"`
	Percentage    float64 `json:"percentage"`
}

// PeriodSummary rolls hourly buckets up into one of the four fixed day
// periods. MaxHourlyUsers takes the maximum over the period's hours rather
// than a true distinct count across hours.
type PeriodSummary struct {
	Period         string  `json:"period"`
	TotalViews     int     `json:"views"`
	MaxHourlyUsers int     `json:"unique_users"`
	Percentage     float64 `json:"percentage"`
}

// HourlyBreakdown bundles the per-hour buckets (descending by views) with
// the period roll-up (fixed Morning/Afternoon/Evening/Night order).
type HourlyBreakdown struct {
	Hours   []HourlyBucket  `json:"hourly_data"`
	Periods []PeriodSummary `json:"period_summary"`
}

// FormatHour renders an hour of day on a 12-hour clock: "12 AM".."11 PM".
func FormatHour(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// PeriodOfDay maps an hour to its fixed day period band: Morning 5-11,
// Afternoon 12-16, Evening 17-21, Night otherwise.
func PeriodOfDay(hour int) string {
	switch {
	case hour >= 5 && hour <= 11:
		return PeriodMorning
	case hour >= 12 && hour <= 16:
		return PeriodAfternoon
	case hour >= 17 && hour <= 21:
		return PeriodEvening
	default:
		return PeriodNight
	}
}

type hourAgg struct {
	views int
	users map[int64]struct{}
	days  map[time.Time]struct{}
}

// HourlyStats groups all rows by hour of day irrespective of date. The
// average daily views divide by the whole range length, not active days, and
// percentages are relative to the range's total views. Ties in the
// descending sort keep the original hour-ascending order.
func (a *Analyzer) HourlyStats() HourlyBreakdown {
	var byHour [24]*hourAgg
	for _, r := range a.rows {
		agg := byHour[r.hour]
		if agg == nil {
			agg = &hourAgg{
				users: make(map[int64]struct{}),
				days:  make(map[time.Time]struct{}),
			}
			byHour[r.hour] = agg
		}
		agg.views += r.views
		agg.users[r.userID] = struct{}{}
		agg.days[r.date] = struct{}{}
	}

	totalViews := a.totalViews()

	hours := make([]HourlyBucket, 0, 24)
	for hour := 0; hour < 24; hour++ {
		agg := byHour[hour]
		if agg == nil {
			continue
		}
		b := HourlyBucket{
			Hour:          hour,
			FormattedHour: FormatHour(hour),
			Period:        PeriodOfDay(hour),
			TotalViews:    agg.views,
			UniqueUsers:   len(agg.users),
			UniqueDays:    len(agg.days),
			AvgDailyViews: round2(float64(agg.views) / float64(a.totalDays)),
		}
		if totalViews > 0 {
			b.Percentage = round2(float64(agg.views) / float64(totalViews) * 100)
		}
		hours = append(hours, b)
	}

	periods := summarizePeriods(hours, totalViews)

	sort.SliceStable(hours, func(i, j int) bool {
		return hours[i].TotalViews > hours[j].TotalViews
	})

	return HourlyBreakdown{Hours: hours, Periods: periods}
}

// summarizePeriods rolls up the hour-ascending buckets into the periods
// present in the data, in the fixed period order. Periods with no hours are
// absent rather than zero-filled.
func summarizePeriods(hours []HourlyBucket, totalViews int) []PeriodSummary {
	byPeriod := make(map[string]*PeriodSummary)
	for _, h := range hours {
		p := byPeriod[h.Period]
		if p == nil {
			p = &PeriodSummary{Period: h.Period}
			byPeriod[h.Period] = p
		}
		p.TotalViews += h.TotalViews
		if h.UniqueUsers > p.MaxHourlyUsers {
			p.MaxHourlyUsers = h.UniqueUsers
		}
	}

	periods := make([]PeriodSummary, 0, len(byPeriod))
	for _, name := range periodOrder {
		p, ok := byPeriod[name]
		if !ok {
			continue
		}
		if totalViews > 0 {
			p.Percentage = round2(float64(p.TotalViews) / float64(totalViews) * 100)
		}
		periods = append(periods, *p)
	}
	return periods
}
