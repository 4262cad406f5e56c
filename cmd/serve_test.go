package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/pop_field_ops/internal/config"
	"github.com/shenikar/pop_field_ops/internal/service"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestSeedOnStart_SkipsNonEmptyStorage(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger()

	st, err := openStorage(ctx, &config.Config{StorageDriver: config.StorageMemory}, log)
	require.NoError(t, err)
	defer st.Close()

	file := filepath.Join("..", "seed", "seed.yaml")

	// первый старт заполняет хранилище
	services := service.New(st.sources, service.Deps{Logger: log})
	require.NoError(t, seedOnStart(ctx, services, file, log))
	first, err := services.POPs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, first)

	// рестарт поверх тех же данных не падает на уникальном коде POP
	restarted := service.New(st.sources, service.Deps{Logger: log})
	require.NoError(t, seedOnStart(ctx, restarted, file, log))
	again, err := restarted.POPs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, again)
}

func TestSeedOnStart_NoFile(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger()

	st, err := openStorage(ctx, &config.Config{StorageDriver: config.StorageMemory}, log)
	require.NoError(t, err)

	services := service.New(st.sources, service.Deps{Logger: log})
	require.NoError(t, seedOnStart(ctx, services, "", log))

	empty, err := services.Empty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestSeedOnStart_MissingFile(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger()

	st, err := openStorage(ctx, &config.Config{StorageDriver: config.StorageMemory}, log)
	require.NoError(t, err)

	services := service.New(st.sources, service.Deps{Logger: log})
	assert.Error(t, seedOnStart(ctx, services, filepath.Join(t.TempDir(), "absent.yaml"), log))
}
