package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledger-engine/internal/config"
	"ledger-engine/internal/database"
	"ledger-engine/internal/handlers"
	custommw "ledger-engine/internal/middleware"
	"ledger-engine/internal/repositories"
	"ledger-engine/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		slog.Error("failed to access underlying database handle", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := database.RunMigrationsIfEnabled(sqlDB); err != nil {
		slog.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Repositories
	statementRepo := repositories.NewStatementRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	ruleRepo := repositories.NewCategoryRuleRepository(db.DB)
	rateRepo := repositories.NewExchangeRateRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	categorizer := services.NewRemoteCategorizer(cfg.Categorizer, metrics)
	parser := services.NewStatementParser(
		services.NewExtractorRegistry(),
		transactionRepo,
		ruleRepo,
		categorizer,
		metrics,
	)
	resolver := services.NewRateResolver(rateRepo)
	converter := services.NewCurrencyConverter(
		rateRepo,
		resolver,
		cfg.RatesJob.BaseCurrency,
		cfg.RatesJob.Source,
		metrics,
	)

	// Handlers
	statementHandler := handlers.NewStatementHandler(statementRepo, transactionRepo, parser, cfg.Parser.TmpDir)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, converter)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.RateLimiter())
	e.Use(echomw.Logger())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/statements", statementHandler.UploadStatement)
	api.GET("/statements", statementHandler.ListStatements)
	api.GET("/statements/:id/transactions", statementHandler.GetStatementTransactions)
	api.GET("/transactions", transactionHandler.ListTransactions)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server",
			slog.String("addr", server.Addr),
			slog.String("environment", cfg.Server.Environment))
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", slog.String("error", err.Error()))
	}
}
