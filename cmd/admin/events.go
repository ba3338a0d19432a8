package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/skilldev/backend/cert/certarchive"
	"github.com/skilldev/backend/cert/certevents"
	"github.com/skilldev/backend/conf"
	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Consume certificate events from the queue",
	}
	eventsCmd.AddCommand(newEventsTailCmd())
	eventsCmd.AddCommand(newEventsArchiveCmd())
	return eventsCmd
}

func newEventsTailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tail",
		Short: "Print certificate events until interrupted (acknowledges them)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := conf.Load()
			if err != nil {
				return err
			}
			return consumeEvents(cmd.Context(), cfg, func(ctx context.Context, ev certevents.CertificateIssued) error {
				log.Info().
					Str("code", ev.CertificateCode).
					Int64("trainee_id", ev.TraineeID).
					Int64("course_id", ev.CourseID).
					Str("course", ev.CourseName).
					Str("valid_until", ev.ValidUntil).
					Msg("certificate issued")
				return nil
			})
		},
	}
}

func newEventsArchiveCmd() *cobra.Command {
	var bucket string

	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Store every received certificate as JSON in S3",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := conf.Load()
			if err != nil {
				return err
			}
			if bucket == "" {
				bucket = cfg.CertArchiveBucket
			}
			if bucket == "" {
				return errors.New("no bucket: pass --bucket or set CERT_ARCHIVE_BUCKET")
			}

			client, err := certarchive.NewS3Client(cmd.Context(), cfg.AwsRegion)
			if err != nil {
				return err
			}
			archive := certarchive.NewS3Archive(client, bucket, cfg.AwsRegion)

			return consumeEvents(cmd.Context(), cfg, func(ctx context.Context, ev certevents.CertificateIssued) error {
				url, err := archive.Store(ctx, ev)
				if err != nil {
					return err
				}
				log.Info().Str("code", ev.CertificateCode).Str("url", url).Msg("certificate archived")
				return nil
			})
		},
	}
	archiveCmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (defaults to CERT_ARCHIVE_BUCKET)")
	return archiveCmd
}

func consumeEvents(ctx context.Context, cfg conf.Config, handle func(context.Context, certevents.CertificateIssued) error) error {
	if cfg.CertEventsQueueURL == "" {
		return errors.New("CERT_EVENTS_QUEUE_URL is not set")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := certevents.NewSqsClient(ctx, cfg.AwsRegion)
	if err != nil {
		return fmt.Errorf("sqs client: %w", err)
	}

	log.Info().Str("queue", cfg.CertEventsQueueURL).Msg("waiting for certificate events")
	// the consumer logs through slog; keep it on stderr next to zerolog
	slogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return certevents.Consume(ctx, client, cfg.CertEventsQueueURL, handle, slogger)
}
