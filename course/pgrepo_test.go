package course_test

import (
	"context"
	"testing"
	"time"

	"github.com/skilldev/backend/course"
	"github.com/skilldev/backend/pgdb/pgdbtest"
	"github.com/skilldev/backend/srvcerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgCourseRepo(t *testing.T) {
	ctx := context.Background()
	repo := course.NewPgCourseRepo(pgdbtest.NewDB(t))
	now := time.Now().UTC().Truncate(time.Microsecond)

	created, err := repo.CreateCourse(ctx, course.Course{
		Title:         "Go basics",
		Category:      ptr("Go"),
		DurationHours: ptr(40),
		StartDate:     day(time.April, 1),
		TrainerID:     ptr(int64(7)),
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, *day(time.April, 1), *created.StartDate)
	assert.Nil(t, created.EndDate)

	created.Active = false
	require.NoError(t, repo.UpdateCourse(ctx, created))

	active, err := repo.ListActiveCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	byTrainer, err := repo.ListCoursesByTrainer(ctx, 7)
	require.NoError(t, err)
	require.Len(t, byTrainer, 1)
	assert.False(t, byTrainer[0].Active)

	require.NoError(t, repo.DeleteCourse(ctx, created.ID))
	_, err = repo.GetCourse(ctx, created.ID)
	assert.True(t, srvcerror.HasCode(err, course.ErrCodeCourseNotFound))
}
