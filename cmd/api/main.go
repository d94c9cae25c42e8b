package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kudoshq/recognition-api/internal/api"
	"github.com/kudoshq/recognition-api/internal/infrastructure/db/mongo"
	"github.com/kudoshq/recognition-api/internal/infrastructure/db/redis"
	"github.com/kudoshq/recognition-api/internal/infrastructure/notifier"
	"github.com/kudoshq/recognition-api/internal/pkg/config"
	"github.com/kudoshq/recognition-api/pkg/logger"
)

// @title        Employee Recognition API
// @version      1.0
// @description  REST API for sending, browsing and analysing employee recognitions.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to disconnect mongodb")
		}
	}()

	if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := mongo.NewRecognitionRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create recognition indexes")
	}
	if err := mongo.NewNotificationRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create notification indexes")
	}

	if cfg.Env == "development" {
		if err := mongo.Seed(ctx, db, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:    cfg.Redis.Addr,
		DB:      cfg.Redis.DB,
		Timeout: cfg.Redis.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis")
		}
	}()

	bus := notifier.NewBus(log)
	defer bus.Close()

	slack := notifier.NewSlackNotifier(cfg.Slack.WebhookURL, cfg.Slack.Timeout, log)

	e := api.NewRouter(db, rdb, api.RouterConfig{
		JWTSecret:     cfg.JWTSecret,
		Bus:           bus,
		External:      slack,
		NotifyTimeout: cfg.Slack.Timeout,
		Logger:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
