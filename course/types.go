package course

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

type Course struct {
	ID            int64
	Title         string
	Category      *string
	DurationHours *int
	Description   *string
	StartDate     *civil.Date
	EndDate       *civil.Date
	TrainerID     *int64
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CourseUpdate carries a partial update; nil fields are left untouched.
type CourseUpdate struct {
	Title         *string
	Category      *string
	DurationHours *int
	Description   *string
	StartDate     *civil.Date
	EndDate       *civil.Date
	TrainerID     *int64
	Active        *bool
}

func (c *Course) Apply(u CourseUpdate, now time.Time) {
	if u.Title != nil {
		c.Title = strings.TrimSpace(*u.Title)
	}
	if u.Category != nil {
		c.Category = u.Category
	}
	if u.DurationHours != nil {
		c.DurationHours = u.DurationHours
	}
	if u.Description != nil {
		c.Description = u.Description
	}
	if u.StartDate != nil {
		c.StartDate = u.StartDate
	}
	if u.EndDate != nil {
		c.EndDate = u.EndDate
	}
	if u.TrainerID != nil {
		c.TrainerID = u.TrainerID
	}
	if u.Active != nil {
		c.Active = *u.Active
	}
	c.UpdatedAt = now
}

func (u CourseUpdate) touchesRules() bool {
	return u.DurationHours != nil || u.StartDate != nil || u.EndDate != nil ||
		u.TrainerID != nil || u.Category != nil
}
