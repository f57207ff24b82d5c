package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/finbank/finbank-api/internal/adapter"
	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/queue"
	"github.com/finbank/finbank-api/internal/service"
	"github.com/finbank/finbank-api/internal/utils"
	"github.com/finbank/finbank-api/internal/workers"
)

func main() {
	log := logger.NewLogger("finbank-worker")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.IsLocal() {
		log = logger.NewConsoleLogger("finbank-worker")
	}
	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	redisClient, err := queue.NewRedisClient(ctx, cfg.Storage.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to redis")
	}
	defer redisClient.Close()

	host, err := adapter.NewCloudinaryImageHost(cfg.ImageHost, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating image host client")
	}
	mailer := adapter.NewSMTPMailer(cfg.Mail, log)

	handlers := make(map[queue.Kind]workers.Handler)
	for kind, h := range service.NewTaskHandlers(host, mailer, *cfg) {
		handlers[kind] = h
	}

	consumer := queue.NewRedisQueue(redisClient, utils.NewUUIDGenerator(), cfg.Workers.ResultTTL)
	pool := workers.NewJobWorkers(consumer, handlers, cfg.Workers, log).
		With(workers.NewStaleJobReaper(consumer, cfg.Workers, log))

	log.Info().Int("concurrency", cfg.Workers.Concurrency).Msg("workers started")
	if err = pool.Run(ctx); err != nil {
		log.Error().Err(err).Msg("workers stopped with error")
		return
	}
	log.Info().Msg("workers stopped gracefully")
}
