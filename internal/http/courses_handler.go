package http

import (
	"github.com/gofiber/fiber/v2"

	"coursepulse/internal/courses"
)

// GetCourses lists the course catalog.
func (h *Handler) GetCourses(c *fiber.Ctx) error {
	result, err := courses.GetAllCourses(h.db)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"courses": result})
}

// GetStudents lists the students with recorded activity in a course.
func (h *Handler) GetStudents(c *fiber.Ctx) error {
	courseID, err := courseIDFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	students, err := courses.GetStudentsInCourse(h.db, courseID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"course_id": courseID,
		"students":  students,
	})
}

// GetCourseParticipations lists a course's module assignments.
func (h *Handler) GetCourseParticipations(c *fiber.Ctx) error {
	courseID, err := courseIDFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	result, err := courses.GetParticipations(h.db, courseID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"summary": result,
	})
}
