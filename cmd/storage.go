package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/pop_field_ops/internal/config"
	"github.com/shenikar/pop_field_ops/internal/repository/memory"
	"github.com/shenikar/pop_field_ops/internal/repository/postgres"
	"github.com/shenikar/pop_field_ops/internal/service"
	pgclient "github.com/shenikar/pop_field_ops/pkg/postgres"
)

// storage - выбранный бэкенд хранилища и пул (только для postgres)
type storage struct {
	sources service.Sources
	pool    *pgxpool.Pool
}

func (s *storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// openStorage поднимает хранилище по STORAGE_DRIVER, для postgres сначала применяет миграции
func openStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*storage, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		if err := runMigrations(cfg, log, migrateUp); err != nil {
			return nil, err
		}
		pool, err := pgclient.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.PoolOptions())
		if err != nil {
			return nil, err
		}
		log.Info("Successfully connected to PostgreSQL")
		st := postgres.NewStore(pool)
		return &storage{
			pool: pool,
			sources: service.Sources{
				POPs:        st.POPs,
				Activities:  st.Activities,
				Technicians: st.Technicians,
				Supplies:    st.Supplies,
				Generators:  st.Generators,
				Checklists:  st.Checklists,
			},
		}, nil
	case config.StorageMemory:
		log.Info("Using in-memory storage")
		st := memory.NewStore()
		return &storage{
			sources: service.Sources{
				POPs:        st.POPs,
				Activities:  st.Activities,
				Technicians: st.Technicians,
				Supplies:    st.Supplies,
				Generators:  st.Generators,
				Checklists:  st.Checklists,
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
