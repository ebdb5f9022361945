// Package analytics provides the per-course statistic queries consumed by
// the dashboard next to the main access-pattern report: device distribution,
// video engagement, discussion activity, and per-student weekly activity.
// These are single-pass SQL aggregations; the multi-granularity time-series
// engine lives in the analyzer package.
package analytics

import "time"

// DetailedPageView is an enriched page-view row carrying the client device
// class, used for the device distribution breakdown.
type DetailedPageView struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	CourseID   int64     `gorm:"index;not null"`
	UserID     int64     `gorm:"index;not null"`
	DeviceType string    `gorm:"index;not null"`
	Timestamp  time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// VideoStat is one aggregated video-analytics row per course video.
type VideoStat struct {
	ID                uint    `gorm:"primaryKey;autoIncrement"`
	CourseID          int64   `gorm:"index;not null"`
	ObjectID          string  `gorm:"index;not null"`
	EntryName         string  `gorm:"not null"`
	CountPlays        int     `gorm:"not null;default:0"`
	UniqueViewers     int     `gorm:"not null;default:0"`
	AvgCompletionRate float64 `gorm:"not null;default:0"`
	EngagementRanking float64 `gorm:"not null;default:0"`
	SumTimeViewed     float64 `gorm:"not null;default:0"` // seconds
	DurationSecs      float64 `gorm:"not null;default:0"`
	AvgViewDropOff    float64 `gorm:"not null;default:0"`
}

// DiscussionEntry is a top-level discussion post.
type DiscussionEntry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CourseID  int64     `gorm:"index;not null"`
	UserID    int64     `gorm:"index;not null"`
	Message   string    `gorm:"type:text"`
	Date      time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// DiscussionReply is a reply to a discussion entry.
type DiscussionReply struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CourseID  int64     `gorm:"index;not null"`
	EntryID   uint      `gorm:"index;not null"`
	UserID    int64     `gorm:"index;not null"`
	Date      time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// ActivitySummary is a precomputed per-student engagement row for a course,
// the source of the weekly-activity endpoints and the CSV export.
type ActivitySummary struct {
	ID             uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	CourseID       int64   `gorm:"index:idx_activity_course_student;not null" json:"-"`
	StudentID      int64   `gorm:"index:idx_activity_course_student;not null" json:"student_id"`
	TotalPageviews int     `gorm:"not null;default:0" json:"total_pageviews"`
	ActiveDays     int     `gorm:"not null;default:0" json:"active_days"`
	AvgDailyViews  float64 `gorm:"not null;default:0" json:"avg_daily_views"`
	AvgWeeklyViews float64 `gorm:"not null;default:0" json:"avg_weekly_views"`
	EngagementRate float64 `gorm:"not null;default:0" json:"engagement_rate"`
	MorningPct     float64 `gorm:"not null;default:0" json:"morning_pct"`
	AfternoonPct   float64 `gorm:"not null;default:0" json:"afternoon_pct"`
	EveningPct     float64 `gorm:"not null;default:0" json:"evening_pct"`
	NightPct       float64 `gorm:"not null;default:0" json:"night_pct"`
	TotalGaps4Days int     `gorm:"not null;default:0" json:"total_gaps_4days"`
	LongestGapDays int     `gorm:"not null;default:0" json:"longest_gap_days"`
	TotalGapDays   int     `gorm:"not null;default:0" json:"total_gap_days"`
}
