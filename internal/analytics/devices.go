package analytics

import (
	"fmt"

	"gorm.io/gorm"
)

// DeviceCountResult is one device class with its share of detailed views.
type DeviceCountResult struct {
	DeviceType string  `json:"device_type"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// GetDeviceDistribution returns per-device view counts and percentages for
// the course, ordered by count descending.
func GetDeviceDistribution(db *gorm.DB, courseID int64) ([]DeviceCountResult, error) {
	var results []DeviceCountResult

	query := `
    SELECT
        device_type,
        COUNT(*) as count,
        ROUND(COUNT(*) * 100.0 / SUM(COUNT(*)) OVER (), 2) as percentage
    FROM detailed_page_views
    WHERE course_id = ?
    GROUP BY device_type
    ORDER BY count DESC
    `

	err := db.Raw(query, courseID).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("error fetching device distribution: %w", err)
	}

	return results, nil
}
