// Package analyzer turns raw per-user page-view events for a course into
// multi-granularity engagement statistics: a whole-range overview, a
// gap-filled daily series, Monday-aligned weekly buckets, monthly roll-ups,
// an hour-of-day breakdown, and a formatted text report.
//
// The package is organized into focused modules:
//   - analyzer.go: event normalization and shared helpers
//   - daily.go: per-day aggregation with gap-filling and top/bottom ranking
//   - weekly.go: fixed 7-day buckets anchored to Mondays
//   - monthly.go: per-month roll-ups scaled by requested days
//   - hourly.go: hour-of-day and day-period breakdowns
//   - overview.go: whole-range scalar summary
//   - report.go: structured result and text report composition
//
// Everything here is a pure computation over in-memory rows; storage access
// and transport concerns belong to the calling layer.
package analyzer

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the textual format for all date inputs and series labels.
const DateLayout = "2006-01-02"

// DataError is the only error kind raised by the analyzer. It covers empty
// or out-of-range event sets, malformed timestamps, and invalid date-range
// ordering. Aggregation is deterministic, so a DataError is never retryable.
type DataError struct {
	msg string
}

func (e *DataError) Error() string {
	return e.msg
}

// NewDataError creates a DataError with a formatted message.
func NewDataError(format string, args ...any) *DataError {
	return &DataError{msg: fmt.Sprintf(format, args...)}
}

// ViewEvent is a single per-user page-view record as delivered by the
// data-access collaborator.
type ViewEvent struct {
	UserID    int64
	Timestamp time.Time
	Views     int
}

// row is a normalized event with calendar fields derived exactly once.
type row struct {
	userID int64
	date   time.Time // midnight UTC of the event's calendar day
	hour   int
	month  time.Month
	views  int
}

// Analyzer computes engagement statistics over an inclusive date range.
// Instances are built per request and hold no shared mutable state; all
// aggregation methods are pure functions of the normalized row set.
type Analyzer struct {
	start     time.Time // midnight UTC
	end       time.Time // midnight UTC
	totalDays int
	rows      []row
}

// NewAnalyzer flattens the per-user event series, filters them to the
// inclusive range [startDate 00:00:00, endDate 23:59:59], and derives the
// calendar fields every aggregation pass reads. Dates use "YYYY-MM-DD".
func NewAnalyzer(series [][]ViewEvent, startDate, endDate string) (*Analyzer, error) {
	start, err := time.ParseInLocation(DateLayout, startDate, time.UTC)
	if err != nil {
		return nil, NewDataError("invalid start date %q: expected YYYY-MM-DD", startDate)
	}
	end, err := time.ParseInLocation(DateLayout, endDate, time.UTC)
	if err != nil {
		return nil, NewDataError("invalid end date %q: expected YYYY-MM-DD", endDate)
	}
	if start.After(end) {
		return nil, NewDataError("start date %s is after end date %s", startDate, endDate)
	}

	a := &Analyzer{
		start:     start,
		end:       end,
		totalDays: int(end.Sub(start).Hours()/24) + 1,
	}
	if err := a.loadRows(series); err != nil {
		return nil, err
	}
	return a, nil
}

// loadRows flattens and filters the raw events into the normalized row set.
// The filter is inclusive of the entire end date regardless of the
// time-of-day component on raw timestamps.
func (a *Analyzer) loadRows(series [][]ViewEvent) error {
	total := 0
	for _, events := range series {
		total += len(events)
	}
	if total == 0 {
		return NewDataError("no events provided")
	}

	cutoff := a.end.AddDate(0, 0, 1) // exclusive upper bound
	a.rows = make([]row, 0, total)
	for _, events := range series {
		for _, e := range events {
			if e.Timestamp.IsZero() {
				return NewDataError("event for user %d has an invalid timestamp", e.UserID)
			}
			if e.Views < 0 {
				return NewDataError("event for user %d has a negative view count", e.UserID)
			}
			ts := e.Timestamp.UTC()
			if ts.Before(a.start) || !ts.Before(cutoff) {
				continue
			}
			a.rows = append(a.rows, row{
				userID: e.UserID,
				date:   time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
				hour:   ts.Hour(),
				month:  ts.Month(),
				views:  e.Views,
			})
		}
	}

	if len(a.rows) == 0 {
		return NewDataError("no data found between %s and %s",
			a.start.Format(DateLayout), a.end.Format(DateLayout))
	}
	return nil
}

// TotalDays returns the inclusive length of the requested range in days.
func (a *Analyzer) TotalDays() int {
	return a.totalDays
}

func (a *Analyzer) totalViews() int {
	total := 0
	for _, r := range a.rows {
		total += r.views
	}
	return total
}

// round2 rounds half away from zero to 2 decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// pctChange computes the percent change from prior to current, rounded to
// 2 decimals. A zero prior yields 0 rather than an undefined value.
func pctChange(current, prior int) float64 {
	if prior == 0 {
		return 0
	}
	return round2(float64(current-prior) / float64(prior) * 100)
}
