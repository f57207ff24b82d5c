package main

import (
	"context"
	"fmt"

	"github.com/finbank/finbank-api/internal/config"
	httpHandler "github.com/finbank/finbank-api/internal/handler/http"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/queue"
	"github.com/finbank/finbank-api/internal/server"
	"github.com/finbank/finbank-api/internal/service"
	"github.com/finbank/finbank-api/internal/store"
	"github.com/finbank/finbank-api/internal/utils"
	"github.com/finbank/finbank-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println("finbank-server", build)

	log := logger.NewLogger("finbank-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.IsLocal() {
		log = logger.NewConsoleLogger("finbank-server")
	}
	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	log.Info().
		Str("environment", string(cfg.App.Environment)).
		Str("version", build.Version).
		Str("commit", build.Commit).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	redisClient, err := queue.NewRedisClient(ctx, cfg.Storage.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to redis")
	}
	defer redisClient.Close()

	jobs := queue.NewRedisQueue(redisClient, utils.NewUUIDGenerator(), cfg.Workers.ResultTTL)

	services, err := service.NewServices(store.NewRepositories(db, log), jobs, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := httpHandler.NewHandler(services, *cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
