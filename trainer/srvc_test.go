package trainer_test

import (
	"context"
	"testing"

	"github.com/skilldev/backend/srvcerror"
	"github.com/skilldev/backend/trainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateTrainer(t *testing.T) {
	ctx := context.Background()
	srvc := trainer.NewTrainerSrvc(trainer.NewInMemTrainerRepo())

	created, err := srvc.CreateTrainer(ctx, trainer.CreateTrainerParams{
		Name:           "  Ada  ",
		Specialization: ptr("Backend Go"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", created.Name)
	assert.True(t, created.Available, "trainers are available by default")
	assert.NotZero(t, created.ID)

	_, err = srvc.CreateTrainer(ctx, trainer.CreateTrainerParams{Name: "   "})
	assert.True(t, srvcerror.HasCode(err, trainer.ErrCodeNameRequired))

	_, err = srvc.CreateTrainer(ctx, trainer.CreateTrainerParams{Name: "Bob", ExperienceYears: ptr(-1)})
	assert.True(t, srvcerror.HasCode(err, trainer.ErrCodeInvalidExperience))
}

func TestUpdateTrainerIsPartial(t *testing.T) {
	ctx := context.Background()
	srvc := trainer.NewTrainerSrvc(trainer.NewInMemTrainerRepo())
	created, err := srvc.CreateTrainer(ctx, trainer.CreateTrainerParams{
		Name:           "Ada",
		Specialization: ptr("Java"),
		Contact:        ptr("+1-555-0100"),
	})
	require.NoError(t, err)

	updated, err := srvc.UpdateTrainer(ctx, created.ID, trainer.TrainerUpdate{Available: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Available)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, "Java", *updated.Specialization)

	_, err = srvc.UpdateTrainer(ctx, created.ID, trainer.TrainerUpdate{Name: ptr("")})
	assert.True(t, srvcerror.HasCode(err, trainer.ErrCodeNameRequired))

	_, err = srvc.UpdateTrainer(ctx, 99, trainer.TrainerUpdate{})
	assert.True(t, srvcerror.HasCode(err, trainer.ErrCodeTrainerNotFound))
}

func TestListAvailableAndDelete(t *testing.T) {
	ctx := context.Background()
	srvc := trainer.NewTrainerSrvc(trainer.NewInMemTrainerRepo())
	a, err := srvc.CreateTrainer(ctx, trainer.CreateTrainerParams{Name: "A"})
	require.NoError(t, err)
	_, err = srvc.CreateTrainer(ctx, trainer.CreateTrainerParams{Name: "B", Available: ptr(false)})
	require.NoError(t, err)

	all, err := srvc.ListTrainers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	available, err := srvc.ListAvailableTrainers(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, a.ID, available[0].ID)

	require.NoError(t, srvc.DeleteTrainer(ctx, a.ID))
	_, err = srvc.GetTrainer(ctx, a.ID)
	assert.True(t, srvcerror.HasCode(err, trainer.ErrCodeTrainerNotFound))
	assert.True(t, srvcerror.HasCode(srvc.DeleteTrainer(ctx, a.ID), trainer.ErrCodeTrainerNotFound))
}
