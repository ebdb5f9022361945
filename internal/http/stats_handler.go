package http

import (
	"github.com/gofiber/fiber/v2"

	"coursepulse/internal/analytics"
)

// GetCourseDeviceStats returns the device-type distribution of the course's
// detailed page views.
func (h *Handler) GetCourseDeviceStats(c *fiber.Ctx) error {
	courseID, err := courseIDFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	stats, err := analytics.GetDeviceDistribution(h.db, courseID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"course_id":    courseID,
		"device_stats": stats,
	})
}

// GetCourseVideoStats returns the course's video engagement overview and its
// most played videos.
func (h *Handler) GetCourseVideoStats(c *fiber.Ctx) error {
	courseID, err := courseIDFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	stats, err := analytics.GetVideoStats(h.db, courseID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetCourseDiscussionStats returns the course's discussion activity summary.
func (h *Handler) GetCourseDiscussionStats(c *fiber.Ctx) error {
	courseID, err := courseIDFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	stats, err := analytics.GetDiscussionStats(h.db, courseID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"course_id":        courseID,
		"discussion_stats": stats,
	})
}
