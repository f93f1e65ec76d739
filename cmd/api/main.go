package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beyond-platform/content-api/internal/api"
	"github.com/beyond-platform/content-api/internal/core/service"
	"github.com/beyond-platform/content-api/internal/infrastructure/config"
	"github.com/beyond-platform/content-api/internal/infrastructure/db/mysql"
	redisdb "github.com/beyond-platform/content-api/internal/infrastructure/db/redis"
	"github.com/beyond-platform/content-api/internal/infrastructure/secret"
	"github.com/beyond-platform/content-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	signingSecret, err := secret.LoadOrCreate(cfg.SecretFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SecretFile).Msg("failed to load signing secret")
	}

	db, err := mysql.Connect(mysql.Config{
		DSN:          cfg.MySQL.DSN,
		MaxOpenConns: cfg.MySQL.MaxOpenConns,
		MaxIdleConns: cfg.MySQL.MaxIdleConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mysql")
	}
	if err := mysql.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}
	if err := mysql.Seed(db, service.NewPasswordHasher(), cfg.AdminPassword, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed defaults")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(db, rdb, signingSecret, cfg.TokenTTL, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
