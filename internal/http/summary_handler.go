package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"coursepulse/internal/analyzer"
	"coursepulse/internal/pageviews"
)

// GetCourseSummary runs the access-pattern analyzer over the course's
// events for the requested inclusive date range and returns both the text
// summary and the structured report data.
func (h *Handler) GetCourseSummary(c *fiber.Ctx) error {
	courseID, err := courseIDFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	start, err := dateFromQuery(c, "start_date")
	if err != nil {
		return badRequest(c, err.Error())
	}
	end, err := dateFromQuery(c, "end_date")
	if err != nil {
		return badRequest(c, err.Error())
	}

	series, err := pageviews.FetchUserSeries(h.db, courseID, start, end)
	if err != nil {
		return h.respondError(c, err)
	}

	a, err := analyzer.NewAnalyzer(series, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return h.respondError(c, err)
	}

	report, err := a.Generate()
	if err != nil {
		return h.respondError(c, err)
	}

	h.logger.Debug("Generated course summary",
		slog.Int64("courseID", courseID),
		slog.Int("totalViews", report.Data.Overview.TotalViews),
		slog.Int("totalDays", report.Data.Overview.TotalDays),
	)

	return c.JSON(fiber.Map{
		"success": true,
		"summary": report.Summary,
		"data":    report.Data,
	})
}
