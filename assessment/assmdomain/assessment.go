package assmdomain

import (
	"time"

	"cloud.google.com/go/civil"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusClosed    Status = "CLOSED"
)

func (s Status) IsKnown() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusClosed:
		return true
	}
	return false
}

type Assessment struct {
	ID                 int64
	Title              string
	CourseID           *int64
	PassingScore       *int
	MaxScore           *int
	DueDate            *civil.Date
	CreatedByTrainerID *int64
	Status             Status
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AssessmentUpdate holds the fields of a partial update. Nil fields are left
// unchanged.
type AssessmentUpdate struct {
	Title        *string
	CourseID     *int64
	PassingScore *int
	MaxScore     *int
	DueDate      *civil.Date
	Status       *Status
}

func (a *Assessment) Apply(u AssessmentUpdate, now time.Time) {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.CourseID != nil {
		a.CourseID = u.CourseID
	}
	if u.PassingScore != nil {
		a.PassingScore = u.PassingScore
	}
	if u.MaxScore != nil {
		a.MaxScore = u.MaxScore
	}
	if u.DueDate != nil {
		a.DueDate = u.DueDate
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	a.UpdatedAt = now
}

type Question struct {
	ID               int64
	AssessmentID     int64
	Prompt           string
	Options          []string
	CorrectOption    *string
	MarksPerQuestion *int
}

// Marks is the weight of the question, one unless configured otherwise.
func (q Question) Marks() int {
	if q.MarksPerQuestion == nil {
		return 1
	}
	return *q.MarksPerQuestion
}
