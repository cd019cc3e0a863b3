package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/asglabs/mission-control/internal/api"
	"github.com/asglabs/mission-control/internal/core/command"
	"github.com/asglabs/mission-control/internal/core/domain"
	"github.com/asglabs/mission-control/internal/core/service"
	"github.com/asglabs/mission-control/internal/infrastructure/config"
	mongodb "github.com/asglabs/mission-control/internal/infrastructure/db/mongo"
	redisdb "github.com/asglabs/mission-control/internal/infrastructure/db/redis"
	"github.com/asglabs/mission-control/internal/infrastructure/llm"
	"github.com/asglabs/mission-control/internal/infrastructure/notify"
	"github.com/asglabs/mission-control/pkg/logger"
)

// @title        Mission Control API
// @version      1.0
// @description  Streaming tax-advisor chat relay with a time ledger and engagement analytics.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "mission-control",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// Change notifications flow redis pub/sub → hub → SSE subscribers, so
	// every replica sees mutations made on any of them.
	hub := notify.NewHub()
	redisdb.Bridge(ctx, rdb, hub, log)

	ledgerRepo := mongodb.NewLedgerRepository(db)
	notifier := redisdb.NewNotifier(rdb, log)
	ledger := service.NewLedgerService(ledgerRepo, notifier, log)
	if err := ledger.EnsureSeeded(ctx); err != nil {
		log.Warn().Err(err).Msg("ledger seeding failed")
	}

	generator := llm.NewClient(llm.Config{
		BaseURL:     cfg.Anthropic.BaseURL,
		APIKey:      cfg.Anthropic.APIKey,
		Model:       cfg.Anthropic.Model,
		MaxTokens:   cfg.Anthropic.MaxTokens,
		Temperature: cfg.Anthropic.Temperature,
	})
	history := redisdb.NewHistoryStore(rdb)
	parser := command.NewParser(domain.ClientAliases, domain.ClientNames())
	chat := service.NewChatService(parser, ledger, generator, history, log)

	e := api.NewRouter(api.RouterConfig{
		Mongo:  db,
		Redis:  rdb,
		Ledger: ledger,
		Chat:   chat,
		Hub:    hub,
		Logger: log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("mission-control listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
