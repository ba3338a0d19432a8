package course

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/skilldev/backend/logger"
	"github.com/skilldev/backend/trainer"
	"github.com/skilldev/backend/validation"
)

type CourseRepo interface {
	CreateCourse(ctx context.Context, c Course) (Course, error)
	UpdateCourse(ctx context.Context, c Course) error
	DeleteCourse(ctx context.Context, id int64) error
	GetCourse(ctx context.Context, id int64) (Course, error)
	ListCourses(ctx context.Context) ([]Course, error)
	ListActiveCourses(ctx context.Context) ([]Course, error)
	ListCoursesByTrainer(ctx context.Context, trainerID int64) ([]Course, error)
}

// TrainerSrvcFacade is the part of the trainer service a course needs to
// check a trainer assignment.
type TrainerSrvcFacade interface {
	GetTrainer(ctx context.Context, id int64) (trainer.Trainer, error)
}

type CourseSrvc struct {
	repo      CourseRepo
	trainers  TrainerSrvcFacade
	validator validation.Client
	now       func() time.Time
}

func NewCourseSrvc(repo CourseRepo, trainers TrainerSrvcFacade, validator validation.Client) *CourseSrvc {
	return &CourseSrvc{repo: repo, trainers: trainers, validator: validator, now: time.Now}
}

type CreateCourseParams struct {
	Title         string
	Category      *string
	DurationHours *int
	Description   *string
	StartDate     *civil.Date
	EndDate       *civil.Date
	TrainerID     *int64
}

func (s *CourseSrvc) CreateCourse(ctx context.Context, p CreateCourseParams) (Course, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return Course{}, ErrTitleRequired()
	}
	now := s.now()
	c := Course{
		Title:         title,
		Category:      p.Category,
		DurationHours: p.DurationHours,
		Description:   p.Description,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		TrainerID:     p.TrainerID,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.validate(ctx, c, true); err != nil {
		return Course{}, err
	}
	created, err := s.repo.CreateCourse(ctx, c)
	if err != nil {
		return Course{}, err
	}
	logger.FromContext(ctx).Info("created course", "course_id", created.ID, "trainer_id", created.TrainerID)
	return created, nil
}

// UpdateCourse merges u into the stored course. Course rules run on the
// merged course only when u touches a field they check, so a running course
// can still be renamed. The trainer assignment is re-checked only when u
// names a trainer.
func (s *CourseSrvc) UpdateCourse(ctx context.Context, id int64, u CourseUpdate) (Course, error) {
	c, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return Course{}, err
	}
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return Course{}, ErrTitleRequired()
	}
	c.Apply(u, s.now())
	if u.touchesRules() {
		if err := s.validate(ctx, c, u.TrainerID != nil); err != nil {
			return Course{}, err
		}
	}
	if err := s.repo.UpdateCourse(ctx, c); err != nil {
		return Course{}, err
	}
	return c, nil
}

func (s *CourseSrvc) validate(ctx context.Context, c Course, checkTrainer bool) error {
	err := validation.Require(ctx, s.validator, validation.CourseRequest{
		DurationHours: c.DurationHours,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		TrainerID:     c.TrainerID,
		Category:      c.Category,
	})
	if err != nil {
		return err
	}
	if !checkTrainer || c.TrainerID == nil {
		return nil
	}
	t, err := s.trainers.GetTrainer(ctx, *c.TrainerID)
	if err != nil {
		return err
	}
	return validation.Require(ctx, s.validator, validation.TrainerRequest{
		Specialization: t.Specialization,
		CourseCategory: c.Category,
		Available:      t.Available,
	})
}

func (s *CourseSrvc) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCourse(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("deleted course", "course_id", id)
	return nil
}

// DeactivateCourse is a soft delete: the course stays readable but drops out
// of the active listing.
func (s *CourseSrvc) DeactivateCourse(ctx context.Context, id int64) (Course, error) {
	c, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return Course{}, err
	}
	inactive := false
	c.Apply(CourseUpdate{Active: &inactive}, s.now())
	if err := s.repo.UpdateCourse(ctx, c); err != nil {
		return Course{}, err
	}
	return c, nil
}

func (s *CourseSrvc) GetCourse(ctx context.Context, id int64) (Course, error) {
	return s.repo.GetCourse(ctx, id)
}

func (s *CourseSrvc) ListCourses(ctx context.Context) ([]Course, error) {
	return s.repo.ListCourses(ctx)
}

func (s *CourseSrvc) ListActiveCourses(ctx context.Context) ([]Course, error) {
	return s.repo.ListActiveCourses(ctx)
}

func (s *CourseSrvc) ListCoursesByTrainer(ctx context.Context, trainerID int64) ([]Course, error) {
	return s.repo.ListCoursesByTrainer(ctx, trainerID)
}
