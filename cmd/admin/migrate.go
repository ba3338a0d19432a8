package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/skilldev/backend/conf"
	"github.com/skilldev/backend/migrate"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the postgres schema",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := migrateURL(cmd)
			if err != nil {
				return err
			}
			if err := migrate.Up(url); err != nil {
				return err
			}
			log.Info().Int("latest", migrate.LatestVersion).Msg("schema is up to date")
			return nil
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive, got %d", steps)
			}
			url, err := migrateURL(cmd)
			if err != nil {
				return err
			}
			if err := migrate.Down(url, steps); err != nil {
				return err
			}
			log.Info().Int("steps", steps).Msg("rolled back")
			return nil
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := migrateURL(cmd)
			if err != nil {
				return err
			}
			version, dirty, err := migrate.Version(url)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t latest=%d\n",
				version, dirty, migrate.LatestVersion)
			return nil
		},
	}

	migrateCmd.AddCommand(upCmd, downCmd, versionCmd)
	return migrateCmd
}

func migrateURL(cmd *cobra.Command) (string, error) {
	cfg, err := conf.Load()
	if err != nil {
		return "", err
	}
	return cfg.MigrateURL(cmd.Context())
}
