package analytics

import (
	"fmt"

	"gorm.io/gorm"
)

// VideoOverview summarizes all videos of a course.
type VideoOverview struct {
	TotalVideos       int64   `json:"total_videos"`
	TotalPlays        int64   `json:"total_plays"`
	TotalViewers      int64   `json:"total_viewers"`
	AvgCompletionRate float64 `json:"avg_completion_rate"`
	AvgEngagement     float64 `json:"avg_engagement"`
	TotalHoursViewed  float64 `json:"total_hours_viewed"`
	AvgDropOff        float64 `json:"avg_drop_off"`
}

// TopVideo is one of the course's most played videos.
type TopVideo struct {
	Title          string  `json:"title"`
	Views          int64   `json:"views"`
	UniqueViewers  int64   `json:"unique_viewers"`
	CompletionRate float64 `json:"completion_rate"`
	DurationMins   float64 `json:"duration_mins"`
	DropOffRate    float64 `json:"drop_off_rate"`
}

// VideoStatsResult bundles the overview with the top videos by plays.
type VideoStatsResult struct {
	Overview  VideoOverview `json:"overview"`
	TopVideos []TopVideo    `json:"top_videos"`
}

// GetVideoStats aggregates the course's video analytics: a whole-course
// overview plus the five most played videos.
func GetVideoStats(db *gorm.DB, courseID int64) (*VideoStatsResult, error) {
	var overview VideoOverview

	overviewQuery := `
    SELECT
        COUNT(DISTINCT object_id) as total_videos,
        COALESCE(SUM(count_plays), 0) as total_plays,
        COALESCE(SUM(unique_viewers), 0) as total_viewers,
        ROUND(COALESCE(AVG(avg_completion_rate), 0), 2) as avg_completion_rate,
        ROUND(COALESCE(AVG(engagement_ranking), 0), 2) as avg_engagement,
        ROUND(COALESCE(SUM(sum_time_viewed), 0) / 3600.0, 2) as total_hours_viewed,
        ROUND(COALESCE(AVG(avg_view_drop_off), 0), 2) as avg_drop_off
    FROM video_stats
    WHERE course_id = ?
    `

	if err := db.Raw(overviewQuery, courseID).Scan(&overview).Error; err != nil {
		return nil, fmt.Errorf("error fetching video overview: %w", err)
	}

	var topVideos []TopVideo

	topQuery := `
    SELECT
        entry_name as title,
        count_plays as views,
        unique_viewers,
        ROUND(avg_completion_rate, 2) as completion_rate,
        ROUND(duration_secs / 60.0, 2) as duration_mins,
        ROUND(avg_view_drop_off, 2) as drop_off_rate
    FROM video_stats
    WHERE course_id = ?
    ORDER BY count_plays DESC
    LIMIT 5
    `

	if err := db.Raw(topQuery, courseID).Scan(&topVideos).Error; err != nil {
		return nil, fmt.Errorf("error fetching top videos: %w", err)
	}

	return &VideoStatsResult{
		Overview:  overview,
		TopVideos: topVideos,
	}, nil
}
