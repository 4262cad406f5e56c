package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/shenikar/pop_field_ops/internal/config"
	v1 "github.com/shenikar/pop_field_ops/internal/handler/http/v1"
	"github.com/shenikar/pop_field_ops/internal/service"
	"github.com/shenikar/pop_field_ops/pkg/logger"
)

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML fixture into the postgres storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.StorageDriver != config.StoragePostgres {
				return errors.New("seed command requires STORAGE_DRIVER=postgres, in-memory storage is seeded by serve via SEED_FILE")
			}
			if file == "" {
				file = cfg.SeedFile
			}
			if file == "" {
				return errors.New("fixture file is required: pass --file or set SEED_FILE")
			}

			log := logger.New(cfg.LogLevel)
			ctx := cmd.Context()

			st, err := openStorage(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer st.Close()

			fixture, err := service.LoadFixture(file)
			if err != nil {
				return err
			}
			services := service.New(st.sources, service.Deps{Logger: log})
			if err := services.Seed(ctx, fixture, v1.NewRecordValidator(nil)); err != nil {
				return err
			}
			log.WithField("file", file).Info("Fixture loaded")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to YAML fixture (defaults to SEED_FILE)")
	return cmd
}
