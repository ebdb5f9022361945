// Package pageviews owns the raw page-view event rows and the fetch query
// feeding the analyzer.
package pageviews

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"coursepulse/internal/analyzer"
)

// PageView is one per-user, per-timestamp view record for a course.
type PageView struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CourseID  int64     `gorm:"index:idx_course_timestamp;not null"`
	UserID    int64     `gorm:"index;not null"`
	Timestamp time.Time `gorm:"index:idx_course_timestamp;not null"`
	Views     int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// FetchUserSeries loads the course's events between start and end inclusive
// of the entire end date, grouped per user and ordered by time within each
// user, which is the shape the analyzer ingests.
func FetchUserSeries(db *gorm.DB, courseID int64, start, end time.Time) ([][]analyzer.ViewEvent, error) {
	cutoff := end.AddDate(0, 0, 1)

	var rows []PageView
	err := db.
		Where("course_id = ? AND timestamp >= ? AND timestamp < ?", courseID, start.UTC(), cutoff.UTC()).
		Order("user_id, timestamp").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error fetching page views for course %d: %w", courseID, err)
	}

	var series [][]analyzer.ViewEvent
	var current []analyzer.ViewEvent
	var currentUser int64
	for _, r := range rows {
		if len(current) > 0 && r.UserID != currentUser {
			series = append(series, current)
			current = nil
		}
		currentUser = r.UserID
		current = append(current, analyzer.ViewEvent{
			UserID:    r.UserID,
			Timestamp: r.Timestamp,
			Views:     r.Views,
		})
	}
	if len(current) > 0 {
		series = append(series, current)
	}

	return series, nil
}
