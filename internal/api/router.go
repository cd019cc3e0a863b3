package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/asglabs/mission-control/docs"
	"github.com/asglabs/mission-control/internal/api/handler"
	"github.com/asglabs/mission-control/internal/core/ports"
	"github.com/asglabs/mission-control/internal/infrastructure/notify"
)

// RouterConfig carries the wired dependencies the HTTP layer needs.
type RouterConfig struct {
	Mongo  *mongo.Database
	Redis  *redis.Client
	Ledger ports.LedgerService
	Chat   ports.ChatService
	Hub    *notify.Hub
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("mission_control"))

	// --- Handlers ---
	ledgerHandler := handler.NewLedgerHandler(cfg.Ledger, cfg.Hub)
	chatHandler := handler.NewChatHandler(cfg.Chat, cfg.Logger)
	analyticsHandler := handler.NewAnalyticsHandler(cfg.Ledger)

	// --- Chat relay ---
	e.POST("/v1/chat", chatHandler.Stream)
	e.GET("/v1/chat/history", chatHandler.History)
	e.DELETE("/v1/chat/history", chatHandler.ClearHistory)

	// --- Time ledger ---
	e.GET("/v1/entries", ledgerHandler.List)
	e.POST("/v1/entries", ledgerHandler.Create)
	e.GET("/v1/entries/aggregate", ledgerHandler.Aggregate)
	e.GET("/v1/entries/updates", ledgerHandler.Updates)
	e.PATCH("/v1/entries/:id", ledgerHandler.UpdateStatus)
	e.DELETE("/v1/entries/:id", ledgerHandler.Delete)

	// --- Analytics ---
	e.GET("/v1/analytics/utilization", analyticsHandler.Utilization)
	e.GET("/v1/analytics/disparities", analyticsHandler.Disparities)
	e.GET("/v1/analytics/wip", analyticsHandler.WIP)
	e.GET("/v1/clients", analyticsHandler.Clients)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
