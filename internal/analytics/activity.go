package analytics

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// GetWeeklyActivity returns the per-student engagement rows for a course,
// optionally narrowed to a single student.
func GetWeeklyActivity(db *gorm.DB, courseID int64, studentID *int64) ([]ActivitySummary, error) {
	query := db.Where("course_id = ?", courseID)
	if studentID != nil {
		query = query.Where("student_id = ?", *studentID)
	}

	var rows []ActivitySummary
	if err := query.Order("student_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("error fetching weekly activity for course %d: %w", courseID, err)
	}
	return rows, nil
}

// GetDetailedWeeklyActivity returns the engagement rows for a selection of
// students, for side-by-side comparison on the dashboard.
func GetDetailedWeeklyActivity(db *gorm.DB, courseID int64, studentIDs []int64) ([]ActivitySummary, error) {
	var rows []ActivitySummary
	err := db.Where("course_id = ? AND student_id IN ?", courseID, studentIDs).
		Order("student_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error fetching detailed weekly activity for course %d: %w", courseID, err)
	}
	return rows, nil
}

// ExportHeader is the column order of the activity CSV export.
var ExportHeader = []string{
	"student_id",
	"total_pageviews",
	"active_days",
	"avg_daily_views",
	"avg_weekly_views",
	"engagement_rate",
	"morning_pct",
	"afternoon_pct",
	"evening_pct",
	"night_pct",
	"total_gaps_4days",
	"longest_gap_days",
	"total_gap_days",
}

// ExportRows fetches every activity row of the course as CSV records in
// ExportHeader column order.
func ExportRows(db *gorm.DB, courseID int64) ([][]string, error) {
	rows, err := GetWeeklyActivity(db, courseID, nil)
	if err != nil {
		return nil, err
	}

	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{
			strconv.FormatInt(r.StudentID, 10),
			strconv.Itoa(r.TotalPageviews),
			strconv.Itoa(r.ActiveDays),
			strconv.FormatFloat(r.AvgDailyViews, 'f', 2, 64),
			strconv.FormatFloat(r.AvgWeeklyViews, 'f', 2, 64),
			strconv.FormatFloat(r.EngagementRate, 'f', 2, 64),
			strconv.FormatFloat(r.MorningPct, 'f', 2, 64),
			strconv.FormatFloat(r.AfternoonPct, 'f', 2, 64),
			strconv.FormatFloat(r.EveningPct, 'f', 2, 64),
			strconv.FormatFloat(r.NightPct, 'f', 2, 64),
			strconv.Itoa(r.TotalGaps4Days),
			strconv.Itoa(r.LongestGapDays),
			strconv.Itoa(r.TotalGapDays),
		}
	}
	return records, nil
}
