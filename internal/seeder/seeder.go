// Package seeder generates development fixtures: a demo course with
// students, page views following a plausible diurnal rhythm, device rows,
// video analytics, and discussion threads.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"coursepulse/internal/analytics"
	"coursepulse/internal/courses"
	"coursepulse/internal/pageviews"
)

// Hour-of-day sampling weights; activity peaks in the evening.
var hourWeights = [24]int{
	2, 1, 1, 1, 1, 2, 3, 5, 8, 10, 10, 9,
	8, 9, 10, 10, 9, 10, 12, 14, 14, 10, 6, 3,
}

var deviceTypes = []string{"desktop", "mobile", "tablet"}
var deviceWeights = []int{60, 30, 10}

// Seeder handles the data seeding process.
type Seeder struct {
	db       *gorm.DB
	logger   *slog.Logger
	students int
	days     int
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, logger *slog.Logger, students, days int) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{db: db, logger: logger, students: students, days: days}
}

// SeedCourse populates one course with demo data across the trailing
// s.days days. Per-student event batches are generated concurrently and
// inserted in one pass.
func (s *Seeder) SeedCourse(ctx context.Context, courseID int64, name string) error {
	start := time.Now()
	s.logger.Info("Seeding course...",
		slog.Int64("courseID", courseID),
		slog.String("name", name),
		slog.Int("students", s.students),
		slog.Int("days", s.days),
	)

	course := courses.Course{ID: courseID, Name: name}
	if err := s.db.Save(&course).Error; err != nil {
		return fmt.Errorf("failed to seed course: %w", err)
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	first := end.AddDate(0, 0, -(s.days - 1))

	batches := make([][]pageviews.PageView, s.students)
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := 0; i < s.students; i++ {
		g.Go(func() error {
			batches[i] = s.generateStudentViews(courseID, int64(1000+i), first)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var views []pageviews.PageView
	for _, batch := range batches {
		views = append(views, batch...)
	}
	if err := s.db.CreateInBatches(views, 500).Error; err != nil {
		return fmt.Errorf("failed to seed page views: %w", err)
	}

	if err := s.seedDetailedViews(views); err != nil {
		return err
	}
	if err := s.seedVideoStats(courseID); err != nil {
		return err
	}
	if err := s.seedDiscussions(courseID); err != nil {
		return err
	}
	if err := s.seedActivitySummaries(courseID, views); err != nil {
		return err
	}

	s.logger.Info("Seeding complete",
		slog.Int("pageViews", len(views)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// generateStudentViews produces a student's views: most days active, a few
// skipped, view counts between 1 and 30.
func (s *Seeder) generateStudentViews(courseID, userID int64, first time.Time) []pageviews.PageView {
	var views []pageviews.PageView
	for d := 0; d < s.days; d++ {
		if rand.IntN(10) < 3 { // inactive day
			continue
		}
		sessions := 1 + rand.IntN(3)
		for i := 0; i < sessions; i++ {
			day := first.AddDate(0, 0, d)
			ts := day.Add(time.Duration(sampleHour()) * time.Hour).
				Add(time.Duration(rand.IntN(60)) * time.Minute)
			views = append(views, pageviews.PageView{
				CourseID:  courseID,
				UserID:    userID,
				Timestamp: ts,
				Views:     1 + rand.IntN(30),
			})
		}
	}
	return views
}

func sampleHour() int {
	total := 0
	for _, w := range hourWeights {
		total += w
	}
	n := rand.IntN(total)
	for hour, w := range hourWeights {
		n -= w
		if n < 0 {
			return hour
		}
	}
	return 23
}

func sampleDevice() string {
	n := rand.IntN(100)
	for i, w := range deviceWeights {
		n -= w
		if n < 0 {
			return deviceTypes[i]
		}
	}
	return deviceTypes[0]
}

func (s *Seeder) seedDetailedViews(views []pageviews.PageView) error {
	detailed := make([]analytics.DetailedPageView, len(views))
	for i, v := range views {
		detailed[i] = analytics.DetailedPageView{
			CourseID:   v.CourseID,
			UserID:     v.UserID,
			DeviceType: sampleDevice(),
			Timestamp:  v.Timestamp,
		}
	}
	if err := s.db.CreateInBatches(detailed, 500).Error; err != nil {
		return fmt.Errorf("failed to seed detailed page views: %w", err)
	}
	return nil
}

func (s *Seeder) seedVideoStats(courseID int64) error {
	stats := make([]analytics.VideoStat, 0, 8)
	for i := 0; i < 8; i++ {
		plays := 20 + rand.IntN(300)
		stats = append(stats, analytics.VideoStat{
			CourseID:          courseID,
			ObjectID:          fmt.Sprintf("video-%d", i+1),
			EntryName:         fmt.Sprintf("Lecture %d", i+1),
			CountPlays:        plays,
			UniqueViewers:     plays / 2,
			AvgCompletionRate: 40 + rand.Float64()*55,
			EngagementRanking: rand.Float64() * 10,
			SumTimeViewed:     float64(plays) * (300 + rand.Float64()*900),
			DurationSecs:      600 + rand.Float64()*2400,
			AvgViewDropOff:    rand.Float64() * 50,
		})
	}
	if err := s.db.Create(&stats).Error; err != nil {
		return fmt.Errorf("failed to seed video stats: %w", err)
	}
	return nil
}

func (s *Seeder) seedDiscussions(courseID int64) error {
	for i := 0; i < 6; i++ {
		entry := analytics.DiscussionEntry{
			CourseID: courseID,
			UserID:   int64(1000 + rand.IntN(s.students)),
			Message:  fmt.Sprintf("Question about assignment %d", i+1),
			Date:     time.Now().UTC().AddDate(0, 0, -rand.IntN(s.days)),
		}
		if err := s.db.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to seed discussion entry: %w", err)
		}
		replies := rand.IntN(6)
		for j := 0; j < replies; j++ {
			reply := analytics.DiscussionReply{
				CourseID: courseID,
				EntryID:  entry.ID,
				UserID:   int64(1000 + rand.IntN(s.students)),
				Date:     entry.Date.Add(time.Duration(j+1) * time.Hour),
			}
			if err := s.db.Create(&reply).Error; err != nil {
				return fmt.Errorf("failed to seed discussion reply: %w", err)
			}
		}
	}
	return nil
}

// seedActivitySummaries derives the precomputed per-student engagement rows
// from the seeded views.
func (s *Seeder) seedActivitySummaries(courseID int64, views []pageviews.PageView) error {
	type agg struct {
		total int
		days  map[string]struct{}
	}
	byStudent := make(map[int64]*agg)
	for _, v := range views {
		a := byStudent[v.UserID]
		if a == nil {
			a = &agg{days: make(map[string]struct{})}
			byStudent[v.UserID] = a
		}
		a.total += v.Views
		a.days[v.Timestamp.Format("2006-01-02")] = struct{}{}
	}

	summaries := make([]analytics.ActivitySummary, 0, len(byStudent))
	for studentID, a := range byStudent {
		activeDays := len(a.days)
		summaries = append(summaries, analytics.ActivitySummary{
			CourseID:       courseID,
			StudentID:      studentID,
			TotalPageviews: a.total,
			ActiveDays:     activeDays,
			AvgDailyViews:  float64(a.total) / float64(s.days),
			AvgWeeklyViews: float64(a.total) / (float64(s.days) / 7),
			EngagementRate: float64(activeDays) / float64(s.days) * 100,
			MorningPct:     25, AfternoonPct: 30, EveningPct: 35, NightPct: 10,
			TotalGaps4Days: rand.IntN(3),
			LongestGapDays: rand.IntN(6),
			TotalGapDays:   s.days - activeDays,
		})
	}
	if err := s.db.CreateInBatches(summaries, 200).Error; err != nil {
		return fmt.Errorf("failed to seed activity summaries: %w", err)
	}
	return nil
}
