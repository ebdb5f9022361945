// Package courses owns the course catalog models and queries.
package courses

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Course is a row of the course catalog.
type Course struct {
	ID        int64  `gorm:"primaryKey" json:"course_id"`
	Name      string `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Participation is a module assignment a course's students can complete.
type Participation struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	CourseID     int64  `gorm:"index;not null" json:"-"`
	ModuleID     int64  `gorm:"not null" json:"module_id"`
	ModuleName   string `gorm:"not null" json:"module_name"`
	AssignmentID int64  `gorm:"not null" json:"assignment_id"`
	Title        string `json:"title"`
	Status       string `json:"status"`
}

// Student is a course member as exposed to the dashboard. Real names are
// never stored; students get stable positional display aliases.
type Student struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
}

// GetAllCourses lists the course catalog.
func GetAllCourses(db *gorm.DB) ([]Course, error) {
	var result []Course
	if err := db.Order("id").Find(&result).Error; err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}
	return result, nil
}

// GetCourseName resolves a course's display name, falling back to a
// placeholder when the course is unknown.
func GetCourseName(db *gorm.DB, courseID int64) (string, error) {
	var course Course
	err := db.First(&course, courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Sprintf("course_%d", courseID), nil
	}
	if err != nil {
		return "", fmt.Errorf("error fetching course %d: %w", courseID, err)
	}
	return course.Name, nil
}

// GetStudentsInCourse lists the distinct students with page-view activity in
// the course, ordered by their identifier, aliased "Student N" in that order.
func GetStudentsInCourse(db *gorm.DB, courseID int64) ([]Student, error) {
	var ids []int64
	err := db.Raw(`
    SELECT user_id
    FROM page_views
    WHERE course_id = ?
    GROUP BY user_id
    ORDER BY user_id
    `, courseID).Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("error fetching students for course %d: %w", courseID, err)
	}

	students := make([]Student, len(ids))
	for i, id := range ids {
		students[i] = Student{
			StudentID: fmt.Sprintf("%d", id),
			Name:      fmt.Sprintf("Student %d", i+1),
		}
	}
	return students, nil
}

// GetParticipations lists the course's module assignments.
func GetParticipations(db *gorm.DB, courseID int64) ([]Participation, error) {
	var result []Participation
	err := db.Where("course_id = ?", courseID).
		Order("module_id, assignment_id").
		Find(&result).Error
	if err != nil {
		return nil, fmt.Errorf("error fetching participations for course %d: %w", courseID, err)
	}
	return result, nil
}
