package http

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"coursepulse/internal/analytics"
	"coursepulse/internal/courses"
)

// GetWeeklyActivity returns the per-student engagement rows for a course,
// optionally narrowed by student_id.
func (h *Handler) GetWeeklyActivity(c *fiber.Ctx) error {
	courseID, err := courseIDFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var studentID *int64
	if raw := c.Query("student_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(c, "invalid student_id parameter")
		}
		studentID = &id
	}

	rows, err := analytics.GetWeeklyActivity(h.db, courseID, studentID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"course_id":          courseID,
		"student_id":         c.Query("student_id"),
		"week_wise_activity": rows,
	})
}

// GetDetailedWeeklyActivity returns the engagement rows for a comma-separated
// selection of students.
func (h *Handler) GetDetailedWeeklyActivity(c *fiber.Ctx) error {
	courseID, err := courseIDFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	rawIDs := c.Query("student_ids")
	if rawIDs == "" {
		return badRequest(c, "missing student_ids parameter")
	}

	parts := strings.Split(rawIDs, ",")
	studentIDs := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return badRequest(c, "invalid student_ids parameter")
		}
		studentIDs = append(studentIDs, id)
	}

	rows, err := analytics.GetDetailedWeeklyActivity(h.db, courseID, studentIDs)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"course_id":   courseID,
		"student_ids": studentIDs,
		"data":        rows,
	})
}

// DownloadReport streams the course's activity rows as a CSV attachment.
func (h *Handler) DownloadReport(c *fiber.Ctx) error {
	courseID, err := courseIDFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	courseName, err := courses.GetCourseName(h.db, courseID)
	if err != nil {
		return h.respondError(c, err)
	}

	records, err := analytics.ExportRows(h.db, courseID)
	if err != nil {
		return h.respondError(c, err)
	}
	if len(records) == 0 {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "No data found for this course",
		})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(analytics.ExportHeader); err != nil {
		return h.respondError(c, err)
	}
	if err := w.WriteAll(records); err != nil {
		return h.respondError(c, err)
	}

	filename := fmt.Sprintf("%s_activity_report_%s.csv",
		exportFileStem(courseName), time.Now().Format("20060102_150405"))

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment;filename=%s", filename))
	return c.Send(buf.Bytes())
}

// exportFileStem turns a course name into a safe filename stem: title-cased,
// stripped to alphanumerics, words joined with underscores.
func exportFileStem(name string) string {
	titled := cases.Title(language.English).String(name)

	var b strings.Builder
	for _, r := range titled {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	stem := strings.Trim(b.String(), "_")
	if stem == "" {
		return "course"
	}
	return stem
}
