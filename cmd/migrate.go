package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shenikar/pop_field_ops/internal/config"
	"github.com/shenikar/pop_field_ops/pkg/logger"
	pgclient "github.com/shenikar/pop_field_ops/pkg/postgres"
)

type migrateDirection string

const (
	migrateUp   migrateDirection = "up"
	migrateDown migrateDirection = "down"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(migrateUp), string(migrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL environment variable is required for migrations")
			}
			return runMigrations(cfg, logger.New(cfg.LogLevel), migrateDirection(args[0]))
		},
	}
}

func runMigrations(cfg *config.Config, log *logrus.Logger, direction migrateDirection) error {
	log.WithField("direction", direction).Info("Running database migrations...")

	m, err := migrate.New("file://"+cfg.MigrationsDir, pgclient.MigrationURL(cfg.DatabaseURL))
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	switch direction {
	case migrateUp:
		err = m.Up()
	case migrateDown:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}
