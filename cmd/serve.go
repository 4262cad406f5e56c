package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shenikar/pop_field_ops/docs"
	"github.com/shenikar/pop_field_ops/internal/config"
	v1 "github.com/shenikar/pop_field_ops/internal/handler/http/v1"
	"github.com/shenikar/pop_field_ops/internal/repository/cache"
	"github.com/shenikar/pop_field_ops/internal/service"
	"github.com/shenikar/pop_field_ops/internal/webhook"
	"github.com/shenikar/pop_field_ops/pkg/logger"
	redisclient "github.com/shenikar/pop_field_ops/pkg/redis"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.HTTPPort = port
			}
			return serve(cmd.Context(), cfg, logger.New(cfg.LogLevel))
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP port (overrides HTTP_PORT)")
	return cmd
}

func serve(parent context.Context, cfg *config.Config, log *logrus.Logger) error {
	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer st.Close()

	deps := service.Deps{
		Logger:       log,
		DefaultLimit: cfg.DefaultPageLimit,
		MaxLimit:     cfg.MaxPageLimit,
	}

	// Redis опционален: кэш записей и очередь вебхуков
	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = redisclient.NewRedisClient(ctx, redisclient.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
			PoolSize: cfg.RedisPoolSize,
		})
		if err != nil {
			return err
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		deps.Cache = cache.NewRedisRecordCache(redisClient, cfg.CacheTTL)
		deps.Publisher = webhook.NewRedisWebhookPublisher(redisClient)
		webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	} else {
		log.Info("REDIS_ADDR is not set, record cache and webhooks are disabled")
	}

	services := service.New(st.sources, deps)

	if err := seedOnStart(ctx, services, cfg.SeedFile, log); err != nil {
		return err
	}

	handler := v1.NewHandler(services, log, cfg)
	if st.pool != nil {
		handler.WithHealthCheck("postgres", st.pool.Ping)
	}
	if redisClient != nil {
		handler.WithHealthCheck("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter()
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
	case <-ctx.Done():
		log.Info("Received shutdown signal, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server gracefully stopped")
	return nil
}

// seedOnStart загружает SEED_FILE только в пустое хранилище, после рестарта с postgres данные уже на месте
func seedOnStart(ctx context.Context, services *service.Services, file string, log *logrus.Logger) error {
	if file == "" {
		return nil
	}
	fixture, err := service.LoadFixture(file)
	if err != nil {
		return err
	}
	seeded, err := services.SeedIfEmpty(ctx, fixture, v1.NewRecordValidator(nil))
	if err != nil {
		return err
	}
	if !seeded {
		log.WithField("file", file).Info("Storage is not empty, skipping seed")
		return nil
	}
	log.WithField("file", file).Info("Seed data loaded")
	return nil
}
