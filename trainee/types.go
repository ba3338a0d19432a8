package trainee

import (
	"strings"
	"time"
)

type Trainee struct {
	ID               int64
	Name             string
	Email            *string
	Contact          *string
	Qualification    *string
	SkillPreferences *string
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TraineeUpdate carries a partial update; nil fields are left untouched.
type TraineeUpdate struct {
	Name             *string
	Email            *string
	Contact          *string
	Qualification    *string
	SkillPreferences *string
	Active           *bool
}

func (t *Trainee) Apply(u TraineeUpdate, now time.Time) {
	if u.Name != nil {
		t.Name = strings.TrimSpace(*u.Name)
	}
	if u.Email != nil {
		t.Email = u.Email
	}
	if u.Contact != nil {
		t.Contact = u.Contact
	}
	if u.Qualification != nil {
		t.Qualification = u.Qualification
	}
	if u.SkillPreferences != nil {
		t.SkillPreferences = u.SkillPreferences
	}
	if u.Active != nil {
		t.Active = *u.Active
	}
	t.UpdatedAt = now
}

type EnrollmentStatus string

const (
	EnrollmentEnrolled  EnrollmentStatus = "ENROLLED"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentWithdrawn EnrollmentStatus = "WITHDRAWN"
)

func (s EnrollmentStatus) IsKnown() bool {
	switch s {
	case EnrollmentEnrolled, EnrollmentCompleted, EnrollmentWithdrawn:
		return true
	}
	return false
}

type Enrollment struct {
	ID         int64
	TraineeID  int64
	CourseID   int64
	Status     EnrollmentStatus
	EnrolledAt time.Time
}
