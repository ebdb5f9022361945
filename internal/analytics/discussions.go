package analytics

import (
	"fmt"

	"gorm.io/gorm"
)

// titleMaxLen caps discussion titles in the top list; longer messages are
// truncated with an ellipsis.
const titleMaxLen = 100

// DiscussionOverview summarizes the course's discussion activity.
type DiscussionOverview struct {
	TotalEntries      int64 `json:"total_entries"`
	TotalReplies      int64 `json:"total_replies"`
	UniquePosters     int64 `json:"unique_posters"`
	TotalInteractions int64 `json:"total_interactions"`
}

// TopDiscussion is one of the course's most replied-to threads.
type TopDiscussion struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	ReplyCount int64  `json:"reply_count"`
	PostedDate string `json:"posted_date"`
}

// DiscussionStatsResult bundles the discussion flag, overview, and the most
// replied-to threads.
type DiscussionStatsResult struct {
	HasDiscussions bool               `json:"has_discussions"`
	Overview       DiscussionOverview `json:"overview"`
	TopDiscussions []TopDiscussion    `json:"top_discussions"`
}

// GetDiscussionStats aggregates discussion activity for the course. Courses
// without any discussion content get a zeroed result rather than an error.
func GetDiscussionStats(db *gorm.DB, courseID int64) (*DiscussionStatsResult, error) {
	var entryCount int64
	if err := db.Model(&DiscussionEntry{}).Where("course_id = ?", courseID).Count(&entryCount).Error; err != nil {
		return nil, fmt.Errorf("error counting discussion entries: %w", err)
	}
	var replyCount int64
	if err := db.Model(&DiscussionReply{}).Where("course_id = ?", courseID).Count(&replyCount).Error; err != nil {
		return nil, fmt.Errorf("error counting discussion replies: %w", err)
	}

	if entryCount == 0 && replyCount == 0 {
		return &DiscussionStatsResult{
			HasDiscussions: false,
			TopDiscussions: []TopDiscussion{},
		}, nil
	}

	var uniquePosters int64
	err := db.Raw(`
    SELECT COUNT(DISTINCT user_id)
    FROM discussion_entries
    WHERE course_id = ?
    `, courseID).Scan(&uniquePosters).Error
	if err != nil {
		return nil, fmt.Errorf("error counting unique posters: %w", err)
	}

	var rawTop []struct {
		ID         uint
		Message    string
		ReplyCount int64
		Date       string
	}
	err = db.Raw(`
    SELECT
        e.id,
        e.message,
        COUNT(r.id) as reply_count,
        strftime('%Y-%m-%d', e.date) as date
    FROM discussion_entries e
    LEFT JOIN discussion_replies r ON e.id = r.entry_id
    WHERE e.course_id = ?
    GROUP BY e.id, e.message, e.date
    ORDER BY reply_count DESC
    LIMIT 5
    `, courseID).Scan(&rawTop).Error
	if err != nil {
		return nil, fmt.Errorf("error fetching top discussions: %w", err)
	}

	topDiscussions := make([]TopDiscussion, len(rawTop))
	for i, t := range rawTop {
		title := t.Message
		if len(title) > titleMaxLen {
			title = title[:titleMaxLen] + "..."
		}
		topDiscussions[i] = TopDiscussion{
			ID:         t.ID,
			Title:      title,
			ReplyCount: t.ReplyCount,
			PostedDate: t.Date,
		}
	}

	return &DiscussionStatsResult{
		HasDiscussions: true,
		Overview: DiscussionOverview{
			TotalEntries:      entryCount,
			TotalReplies:      replyCount,
			UniquePosters:     uniquePosters,
			TotalInteractions: entryCount + replyCount,
		},
		TopDiscussions: topDiscussions,
	}, nil
}
