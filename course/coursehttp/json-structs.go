package coursehttp

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/skilldev/backend/course"
)

type courseRequest struct {
	Title         *string     `json:"title"`
	Category      *string     `json:"category"`
	DurationHours *int        `json:"durationHours"`
	Description   *string     `json:"description"`
	StartDate     *civil.Date `json:"startDate"`
	EndDate       *civil.Date `json:"endDate"`
	TrainerID     *int64      `json:"trainerId"`
	Active        *bool       `json:"active"`
}

type Course struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Category      *string     `json:"category"`
	DurationHours *int        `json:"durationHours"`
	Description   *string     `json:"description"`
	StartDate     *civil.Date `json:"startDate"`
	EndDate       *civil.Date `json:"endDate"`
	TrainerID     *int64      `json:"trainerId"`
	Active        bool        `json:"active"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func mapCourse(c course.Course) Course {
	return Course{
		ID:            c.ID,
		Title:         c.Title,
		Category:      c.Category,
		DurationHours: c.DurationHours,
		Description:   c.Description,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		TrainerID:     c.TrainerID,
		Active:        c.Active,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func mapCourses(cs []course.Course) []Course {
	res := make([]Course, 0, len(cs))
	for _, c := range cs {
		res = append(res, mapCourse(c))
	}
	return res
}
