package course_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/skilldev/backend/course"
	"github.com/skilldev/backend/srvcerror"
	"github.com/skilldev/backend/trainer"
	"github.com/skilldev/backend/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

var today = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

func day(m time.Month, d int) *civil.Date {
	return &civil.Date{Year: 2026, Month: m, Day: d}
}

type fixture struct {
	srvc     *course.CourseSrvc
	trainers *trainer.TrainerSrvc
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	trainers := trainer.NewTrainerSrvc(trainer.NewInMemTrainerRepo())
	validator := validation.NewLocalClient(validation.NewEngineWithClock(func() time.Time { return today }))
	return fixture{
		srvc:     course.NewCourseSrvc(course.NewInMemCourseRepo(), trainers, validator),
		trainers: trainers,
	}
}

func validationDetails(t *testing.T, err error) []string {
	t.Helper()
	require.True(t, srvcerror.HasCode(err, validation.ErrCodeValidationRejected), "got %v", err)
	srvcErr := err.(*srvcerror.Error)
	return srvcErr.Details()
}

func TestCreateCourse(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c, err := f.srvc.CreateCourse(ctx, course.CreateCourseParams{
		Title:         " Go basics ",
		Category:      ptr("Go"),
		DurationHours: ptr(40),
		StartDate:     day(time.April, 1),
		EndDate:       day(time.May, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "Go basics", c.Title)
	assert.True(t, c.Active)

	_, err = f.srvc.CreateCourse(ctx, course.CreateCourseParams{Title: "", DurationHours: ptr(1)})
	assert.True(t, srvcerror.HasCode(err, course.ErrCodeTitleRequired))

	_, err = f.srvc.CreateCourse(ctx, course.CreateCourseParams{
		Title:     "Broken",
		StartDate: day(time.February, 1),
		EndDate:   day(time.January, 1),
	})
	assert.Equal(t, []string{
		validation.MsgCourseDurationNotPositive,
		validation.MsgCourseEndBeforeStart,
		validation.MsgCourseStartInPast,
	}, validationDetails(t, err))
}

func TestCreateCourseChecksTrainer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	javaTrainer, err := f.trainers.CreateTrainer(ctx, trainer.CreateTrainerParams{
		Name: "Ada", Specialization: ptr("Java, Spring"),
	})
	require.NoError(t, err)
	busy, err := f.trainers.CreateTrainer(ctx, trainer.CreateTrainerParams{
		Name: "Bob", Specialization: ptr("Go"), Available: ptr(false),
	})
	require.NoError(t, err)

	c, err := f.srvc.CreateCourse(ctx, course.CreateCourseParams{
		Title: "Spring", Category: ptr("spring"), DurationHours: ptr(10), TrainerID: &javaTrainer.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, javaTrainer.ID, *c.TrainerID)

	_, err = f.srvc.CreateCourse(ctx, course.CreateCourseParams{
		Title: "Go", Category: ptr("Go"), DurationHours: ptr(10), TrainerID: &javaTrainer.ID,
	})
	assert.Equal(t, []string{validation.MsgTrainerSpecializationMismatch}, validationDetails(t, err))

	_, err = f.srvc.CreateCourse(ctx, course.CreateCourseParams{
		Title: "Go", Category: ptr("Go"), DurationHours: ptr(10), TrainerID: &busy.ID,
	})
	assert.Equal(t, []string{validation.MsgTrainerUnavailable}, validationDetails(t, err))

	_, err = f.srvc.CreateCourse(ctx, course.CreateCourseParams{
		Title: "Go", DurationHours: ptr(10), TrainerID: ptr(int64(404)),
	})
	assert.True(t, srvcerror.HasCode(err, trainer.ErrCodeTrainerNotFound))

	byTrainer, err := f.srvc.ListCoursesByTrainer(ctx, javaTrainer.ID)
	require.NoError(t, err)
	assert.Len(t, byTrainer, 1)
}

func TestUpdateCourse(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c, err := f.srvc.CreateCourse(ctx, course.CreateCourseParams{Title: "Go", DurationHours: ptr(10)})
	require.NoError(t, err)

	updated, err := f.srvc.UpdateCourse(ctx, c.ID, course.CourseUpdate{Description: ptr("intro")})
	require.NoError(t, err)
	assert.Equal(t, "intro", *updated.Description)
	assert.Equal(t, 10, *updated.DurationHours)

	_, err = f.srvc.UpdateCourse(ctx, c.ID, course.CourseUpdate{DurationHours: ptr(0)})
	assert.Equal(t, []string{validation.MsgCourseDurationNotPositive}, validationDetails(t, err))

	got, err := f.srvc.GetCourse(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, *got.DurationHours, "rejected update must not be stored")

	_, err = f.srvc.UpdateCourse(ctx, 99, course.CourseUpdate{})
	assert.True(t, srvcerror.HasCode(err, course.ErrCodeCourseNotFound))
}

func TestDeactivateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, err := f.srvc.CreateCourse(ctx, course.CreateCourseParams{Title: "A", DurationHours: ptr(1)})
	require.NoError(t, err)
	b, err := f.srvc.CreateCourse(ctx, course.CreateCourseParams{Title: "B", DurationHours: ptr(1)})
	require.NoError(t, err)

	deactivated, err := f.srvc.DeactivateCourse(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)

	active, err := f.srvc.ListActiveCourses(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)

	all, err := f.srvc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, f.srvc.DeleteCourse(ctx, b.ID))
	assert.True(t, srvcerror.HasCode(f.srvc.DeleteCourse(ctx, b.ID), course.ErrCodeCourseNotFound))
}
