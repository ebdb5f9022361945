// Package testsupport provides shared helpers for database-backed tests.
package testsupport

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coursepulse/internal/analytics"
	"coursepulse/internal/courses"
	"coursepulse/internal/pageviews"
)

// allModels returns every coursepulse model for migration.
func allModels() []any {
	return []any{
		&courses.Course{},
		&courses.Participation{},
		&pageviews.PageView{},
		&analytics.DetailedPageView{},
		&analytics.VideoStat{},
		&analytics.DiscussionEntry{},
		&analytics.DiscussionReply{},
		&analytics.ActivitySummary{},
	}
}

// SetupTestDB creates an in-memory database with all models migrated. The
// database is named after the test so parallel tests stay isolated while
// multiple connections within one test share state.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(allModels()...))

	return db
}

// NewTestLogger returns a logger that swallows output.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CreatePageView inserts one page-view row.
func CreatePageView(t *testing.T, db *gorm.DB, courseID, userID int64, ts time.Time, views int) pageviews.PageView {
	t.Helper()
	pv := pageviews.PageView{
		CourseID:  courseID,
		UserID:    userID,
		Timestamp: ts,
		Views:     views,
	}
	require.NoError(t, db.Create(&pv).Error)
	return pv
}

// CreateCourse inserts a course row.
func CreateCourse(t *testing.T, db *gorm.DB, id int64, name string) courses.Course {
	t.Helper()
	course := courses.Course{ID: id, Name: name}
	require.NoError(t, db.Create(&course).Error)
	return course
}
