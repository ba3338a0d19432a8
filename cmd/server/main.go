package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/skilldev/backend/assessment/assmhttp"
	"github.com/skilldev/backend/assessment/assmpgrepo"
	"github.com/skilldev/backend/assessment/assmsrvc"
	"github.com/skilldev/backend/cert/certevents"
	"github.com/skilldev/backend/cert/certhttp"
	"github.com/skilldev/backend/cert/certpgrepo"
	"github.com/skilldev/backend/cert/certsrvc"
	"github.com/skilldev/backend/conf"
	"github.com/skilldev/backend/course"
	"github.com/skilldev/backend/course/coursehttp"
	"github.com/skilldev/backend/feedback"
	"github.com/skilldev/backend/feedback/feedbackhttp"
	"github.com/skilldev/backend/migrate"
	"github.com/skilldev/backend/pgdb"
	"github.com/skilldev/backend/server"
	"github.com/skilldev/backend/trainee"
	"github.com/skilldev/backend/trainee/traineehttp"
	"github.com/skilldev/backend/trainer"
	"github.com/skilldev/backend/trainer/trainerhttp"
	"github.com/skilldev/backend/validation"
	"github.com/skilldev/backend/validation/valclient"
	"github.com/skilldev/backend/validation/valhttp"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := conf.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := newLogger(cfg)
	slog.SetDefault(log)

	if cfg.JwtKey == "" {
		log.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg conf.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.Env == "dev" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func run(ctx context.Context, cfg conf.Config, log *slog.Logger) error {
	migrateURL, err := cfg.MigrateURL(ctx)
	if err != nil {
		return err
	}
	if err := migrate.Up(migrateURL); err != nil {
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

	engine := validation.NewEngine()
	var validator validation.Client = validation.NewLocalClient(engine)
	if cfg.ValidationURL != "" {
		log.Info("using remote validation service", "url", cfg.ValidationURL)
		validator = valclient.NewClient(cfg.ValidationURL, cfg.ValidationTimeout)
	}

	var publisher certevents.Publisher = certevents.LogPublisher{}
	if cfg.CertEventsQueueURL != "" {
		sqsClient, err := certevents.NewSqsClient(ctx, cfg.AwsRegion)
		if err != nil {
			return err
		}
		publisher = certevents.NewSqsPublisher(sqsClient, cfg.CertEventsQueueURL)
	}

	trainerSrvc := trainer.NewTrainerSrvc(trainer.NewPgTrainerRepo(pool))
	courseSrvc := course.NewCourseSrvc(course.NewPgCourseRepo(pool), trainerSrvc, validator)
	traineeSrvc := trainee.NewTraineeSrvc(
		trainee.NewPgTraineeRepo(pool),
		trainee.NewPgEnrollmentRepo(pool),
		validator,
	)
	certSrvc := certsrvc.NewCertSrvc(certpgrepo.NewPgCertRepo(pool), validator, publisher)
	assmSrvc := assmsrvc.NewAssmSrvc(
		assmpgrepo.NewPgAssessmentRepo(pool),
		assmpgrepo.NewPgSubmissionRepo(pool),
		validator,
		certSrvc.IssueCert.Handle,
		assmsrvc.WithCourseTitles(func(ctx context.Context, courseID int64) (string, error) {
			c, err := courseSrvc.GetCourse(ctx, courseID)
			return c.Title, err
		}),
	)
	feedbackSrvc := feedback.NewFeedbackSrvc(feedback.NewPgFeedbackRepo(pool))

	httpServer := server.NewHttpServer(
		server.Options{
			CorsOrigins: cfg.CorsOrigins,
			JwtKey:      []byte(cfg.JwtKey),
			LogLevel:    cfg.LogLevel,
			Env:         cfg.Env,
			Version:     version,
		},
		valhttp.NewValidationHttpHandler(engine),
		trainerhttp.NewTrainerHttpHandler(trainerSrvc),
		coursehttp.NewCourseHttpHandler(courseSrvc),
		traineehttp.NewTraineeHttpHandler(traineeSrvc),
		assmhttp.NewAssmHttpHandler(assmSrvc),
		certhttp.NewCertHttpHandler(certSrvc),
		feedbackhttp.NewFeedbackHttpHandler(feedbackSrvc),
	)

	return httpServer.Start(ctx, cfg.HttpAddr, cfg.ShutdownTimeout)
}
