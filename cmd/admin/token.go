package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/skilldev/backend/auth"
	"github.com/skilldev/backend/conf"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		subject   string
		role      string
		trainerID int64
		traineeID int64
		ttl       time.Duration
	)

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := conf.Load()
			if err != nil {
				return err
			}
			if cfg.JwtKey == "" {
				return errors.New("JWT_KEY is not set")
			}

			var trainerPtr, traineePtr *int64
			if trainerID > 0 {
				trainerPtr = &trainerID
			}
			if traineeID > 0 {
				traineePtr = &traineeID
			}
			switch role {
			case auth.RoleAdmin:
			case auth.RoleTrainer:
				if trainerPtr == nil {
					return errors.New("--trainer-id is required for the trainer role")
				}
			case auth.RoleTrainee:
				if traineePtr == nil {
					return errors.New("--trainee-id is required for the trainee role")
				}
			default:
				return fmt.Errorf("unknown role %q", role)
			}

			token, err := auth.GenerateJWT(subject, role, trainerPtr, traineePtr, ttl, []byte(cfg.JwtKey))
			if err != nil {
				return err
			}
			log.Debug().Str("subject", subject).Str("role", role).Dur("ttl", ttl).Msg("minted token")
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	tokenCmd.Flags().StringVar(&subject, "subject", "dev", "Token subject")
	tokenCmd.Flags().StringVar(&role, "role", auth.RoleAdmin, "Role [admin, trainer, trainee]")
	tokenCmd.Flags().Int64Var(&trainerID, "trainer-id", 0, "Trainer id claim")
	tokenCmd.Flags().Int64Var(&traineeID, "trainee-id", 0, "Trainee id claim")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return tokenCmd
}
