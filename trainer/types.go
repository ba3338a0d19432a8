package trainer

import (
	"strings"
	"time"
)

type Trainer struct {
	ID              int64
	Name            string
	Specialization  *string
	ExperienceYears *int
	Available       bool
	Contact         *string
	Email           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TrainerUpdate carries a partial update; nil fields are left untouched.
type TrainerUpdate struct {
	Name            *string
	Specialization  *string
	ExperienceYears *int
	Available       *bool
	Contact         *string
	Email           *string
}

func (t *Trainer) Apply(u TrainerUpdate, now time.Time) {
	if u.Name != nil {
		t.Name = strings.TrimSpace(*u.Name)
	}
	if u.Specialization != nil {
		t.Specialization = u.Specialization
	}
	if u.ExperienceYears != nil {
		t.ExperienceYears = u.ExperienceYears
	}
	if u.Available != nil {
		t.Available = *u.Available
	}
	if u.Contact != nil {
		t.Contact = u.Contact
	}
	if u.Email != nil {
		t.Email = u.Email
	}
	t.UpdatedAt = now
}
