package main

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog/log"
	"github.com/skilldev/backend/conf"
	"github.com/skilldev/backend/course"
	"github.com/skilldev/backend/pgdb"
	"github.com/skilldev/backend/seed"
	"github.com/skilldev/backend/trainee"
	"github.com/skilldev/backend/trainer"
	"github.com/skilldev/backend/validation"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var file string

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Create demo trainers, courses and trainees in an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := loadSeedData(file)
			if err != nil {
				return err
			}

			cfg, err := conf.Load()
			if err != nil {
				return err
			}
			connStr, err := cfg.ConnString(ctx)
			if err != nil {
				return err
			}
			pool, err := pgdb.NewPool(ctx, connStr)
			if err != nil {
				return err
			}
			defer pool.Close()

			validator := validation.NewLocalClient(validation.NewEngine())
			trainers := trainer.NewTrainerSrvc(trainer.NewPgTrainerRepo(pool))
			srvcs := seed.Services{
				Trainers: trainers,
				Courses:  course.NewCourseSrvc(course.NewPgCourseRepo(pool), trainers, validator),
				Trainees: trainee.NewTraineeSrvc(
					trainee.NewPgTraineeRepo(pool),
					trainee.NewPgEnrollmentRepo(pool),
					validator,
				),
			}

			rep, err := seed.Apply(ctx, data, srvcs, civil.DateOf(time.Now()))
			if err != nil {
				return err
			}
			log.Info().
				Int("trainers", rep.Trainers).
				Int("courses", rep.Courses).
				Int("trainees", rep.Trainees).
				Msg("seeding finished")
			return nil
		},
	}
	seedCmd.Flags().StringVarP(&file, "file", "f", "", "Seed TOML file (defaults to the built-in demo data)")
	return seedCmd
}

func loadSeedData(file string) (seed.Data, error) {
	if file == "" {
		log.Info().Msg("using built-in seed data")
		return seed.Default()
	}
	data, err := seed.Load(file)
	if err != nil {
		return seed.Data{}, fmt.Errorf("seed file %s: %w", file, err)
	}
	return data, nil
}
