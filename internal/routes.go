package internal

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"coursepulse/internal/config"
	coursehttp "coursepulse/internal/http"
	"coursepulse/internal/http/middleware"
)

// MountAppRoutes registers the middleware stack and the dashboard API
// routes on the fiber app.
func MountAppRoutes(app *fiber.App, db *gorm.DB, logger *slog.Logger, cfg *config.Config) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.DashboardOrigin,
		AllowMethods: "GET,POST",
		AllowHeaders: "Content-Type",
	}))
	app.Use(middleware.RequestID(logger))

	handler := coursehttp.NewHandler(db, logger)

	api := app.Group("/api")
	api.Get("/courses", handler.GetCourses)
	api.Get("/students", handler.GetStudents)
	api.Get("/course-summary", handler.GetCourseSummary)
	api.Get("/course-participations", handler.GetCourseParticipations)
	api.Get("/course-device-stats", handler.GetCourseDeviceStats)
	api.Get("/course-video-stats", handler.GetCourseVideoStats)
	api.Get("/course-discussion-stats", handler.GetCourseDiscussionStats)
	api.Get("/weekly-activity", handler.GetWeeklyActivity)
	api.Get("/detailed-weekly-activity", handler.GetDetailedWeeklyActivity)
	api.Get("/download-report", handler.DownloadReport)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
