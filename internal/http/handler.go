// Package http contains the fiber handlers exposing the course analytics
// API to the dashboard.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursepulse/internal/analyzer"
)

// Handler bundles the dependencies every route needs.
type Handler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHandler creates the API handler set.
func NewHandler(db *gorm.DB, logger *slog.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// courseIDFromQuery parses the mandatory course_id query parameter.
func courseIDFromQuery(c *fiber.Ctx) (int64, error) {
	raw := c.Query("course_id")
	if raw == "" {
		return 0, errors.New("missing course_id parameter")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("invalid course_id parameter")
	}
	return id, nil
}

// dateFromQuery parses a YYYY-MM-DD query parameter as a UTC midnight time.
func dateFromQuery(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, errors.New("missing " + name + " parameter")
	}
	t, err := time.ParseInLocation(analyzer.DateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, errors.New("invalid " + name + " parameter, expected YYYY-MM-DD")
	}
	return t, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// respondError translates an error into the matching transport response.
// Analyzer DataErrors are client-visible data problems; everything else is
// an internal failure.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	var dataErr *analyzer.DataError
	if errors.As(err, &dataErr) {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   dataErr.Error(),
		})
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "not found",
		})
	}

	h.logger.Error("Request failed",
		slog.String("path", c.Path()),
		slog.Any("error", err),
	)
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
