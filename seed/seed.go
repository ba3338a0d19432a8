// Package seed loads demo trainers, courses and trainees through the regular
// services, so every record passes the same validation as API traffic.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pelletier/go-toml/v2"
	"github.com/skilldev/backend/course"
	"github.com/skilldev/backend/logger"
	"github.com/skilldev/backend/trainee"
	"github.com/skilldev/backend/trainer"
)

//go:embed default.toml
var defaultData []byte

type Data struct {
	Trainers []Trainer `toml:"trainers"`
	Courses  []Course  `toml:"courses"`
	Trainees []Trainee `toml:"trainees"`
}

type Trainer struct {
	Name            string  `toml:"name"`
	Specialization  *string `toml:"specialization"`
	ExperienceYears *int    `toml:"experience_years"`
	Available       *bool   `toml:"available"`
	Contact         *string `toml:"contact"`
	Email           *string `toml:"email"`
}

type Course struct {
	Title         string  `toml:"title"`
	Category      *string `toml:"category"`
	DurationHours *int    `toml:"duration_hours"`
	Description   *string `toml:"description"`
	// dates are relative to the day the seed runs
	StartOffsetDays *int    `toml:"start_offset_days"`
	LengthMonths    *int    `toml:"length_months"`
	Trainer         *string `toml:"trainer"`
}

type Trainee struct {
	Name             string  `toml:"name"`
	Email            *string `toml:"email"`
	Contact          *string `toml:"contact"`
	Qualification    *string `toml:"qualification"`
	SkillPreferences *string `toml:"skill_preferences"`
}

// Parse decodes seed data, rejecting keys the format does not know.
func Parse(raw []byte) (Data, error) {
	var d Data
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return Data{}, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return d, nil
}

func Default() (Data, error) {
	return Parse(defaultData)
}

func Load(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

type Services struct {
	Trainers *trainer.TrainerSrvc
	Courses  *course.CourseSrvc
	Trainees *trainee.TraineeSrvc
}

type Report struct {
	Trainers int
	Courses  int
	Trainees int
}

// Apply seeds each entity kind only while its table is empty, so running it
// twice is harmless. Trainers go first because courses refer to them.
func Apply(ctx context.Context, d Data, s Services, today civil.Date) (Report, error) {
	var rep Report
	log := logger.FromContext(ctx)

	trainerIDs, err := seedTrainers(ctx, d.Trainers, s.Trainers, &rep)
	if err != nil {
		return rep, err
	}

	courses, err := s.Courses.ListCourses(ctx)
	if err != nil {
		return rep, err
	}
	if len(courses) == 0 {
		for _, c := range d.Courses {
			p := course.CreateCourseParams{
				Title:         c.Title,
				Category:      c.Category,
				DurationHours: c.DurationHours,
				Description:   c.Description,
			}
			if c.StartOffsetDays != nil {
				start := today.AddDays(*c.StartOffsetDays)
				p.StartDate = &start
				if c.LengthMonths != nil {
					end := civil.DateOf(start.In(time.UTC).AddDate(0, *c.LengthMonths, 0))
					p.EndDate = &end
				}
			}
			if c.Trainer != nil {
				id, ok := trainerIDs[*c.Trainer]
				if !ok {
					return rep, fmt.Errorf("course %q refers to unknown trainer %q", c.Title, *c.Trainer)
				}
				p.TrainerID = &id
			}
			if _, err := s.Courses.CreateCourse(ctx, p); err != nil {
				return rep, fmt.Errorf("failed to seed course %q: %w", c.Title, err)
			}
			rep.Courses++
		}
	} else {
		log.Info("courses already present, skipping", "count", len(courses))
	}

	trainees, err := s.Trainees.ListTrainees(ctx)
	if err != nil {
		return rep, err
	}
	if len(trainees) == 0 {
		for _, t := range d.Trainees {
			_, err := s.Trainees.CreateTrainee(ctx, trainee.CreateTraineeParams{
				Name:             t.Name,
				Email:            t.Email,
				Contact:          t.Contact,
				Qualification:    t.Qualification,
				SkillPreferences: t.SkillPreferences,
			})
			if err != nil {
				return rep, fmt.Errorf("failed to seed trainee %q: %w", t.Name, err)
			}
			rep.Trainees++
		}
	} else {
		log.Info("trainees already present, skipping", "count", len(trainees))
	}

	return rep, nil
}

// seedTrainers returns name to id for every trainer in the database, seeded
// or pre-existing.
func seedTrainers(ctx context.Context, seeds []Trainer, srvc *trainer.TrainerSrvc, rep *Report) (map[string]int64, error) {
	existing, err := srvc.ListTrainers(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		for _, t := range seeds {
			created, err := srvc.CreateTrainer(ctx, trainer.CreateTrainerParams{
				Name:            t.Name,
				Specialization:  t.Specialization,
				ExperienceYears: t.ExperienceYears,
				Available:       t.Available,
				Contact:         t.Contact,
				Email:           t.Email,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to seed trainer %q: %w", t.Name, err)
			}
			existing = append(existing, created)
			rep.Trainers++
		}
	} else {
		logger.FromContext(ctx).Info("trainers already present, skipping", "count", len(existing))
	}

	ids := make(map[string]int64, len(existing))
	for _, t := range existing {
		ids[t.Name] = t.ID
	}
	return ids, nil
}
