package main

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/pizza-service/internal/config"
	"github.com/SergeyBogomolovv/pizza-service/internal/migrations"
	"github.com/SergeyBogomolovv/pizza-service/internal/postgres"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Provision or drop the database tables",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withRunner(cmd.Context(), (*migrations.Runner).Up)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withRunner(cmd.Context(), (*migrations.Runner).Down)
			},
		},
	)
	return cmd
}

func withRunner(ctx context.Context, fn func(*migrations.Runner) error) error {
	conf := config.New()
	logger := newLogger(conf.Env)
	if err := conf.Postgres.Validate(); err != nil {
		return err
	}

	db, err := postgres.New(ctx, conf.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	runner, err := migrations.NewRunner(logger, db, conf.Postgres.DBName)
	if err != nil {
		return err
	}
	if err := fn(runner); err != nil {
		return err
	}

	version, dirty, err := runner.Version()
	if err != nil {
		return err
	}
	logger.Info("schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	return nil
}
