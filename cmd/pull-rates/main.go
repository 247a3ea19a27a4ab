package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"ledger-engine/internal/config"
	"ledger-engine/internal/database"
	"ledger-engine/internal/repositories"
	"ledger-engine/internal/services"

	"github.com/joho/godotenv"
)

// pull-rates fetches the latest FX rates from the configured provider and
// writes the idempotent daily snapshot. Meant to run on a schedule (cron);
// re-running within the same UTC day is a no-op unless rates changed.
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

	fetcher := services.NewRateFetcher(cfg.RatesJob)
	writer := services.NewSnapshotWriter(
		repositories.NewExchangeRateRepository(db.DB),
		services.NewPrometheusMetrics(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rates, err := fetcher.FetchLatest(ctx)
	if err != nil {
		slog.Error("failed to fetch latest rates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	inserted, updated, err := writer.WriteDailySnapshot(services.SnapshotInput{
		Timestamp: rates.Timestamp,
		Base:      rates.Base,
		Source:    cfg.RatesJob.Source,
		Rates:     rates.Rates,
	})
	if err != nil {
		slog.Error("failed to write daily snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("daily rate snapshot complete",
		slog.String("base", rates.Base),
		slog.Int("pairs", len(rates.Rates)),
		slog.Int("inserted", inserted),
		slog.Int("updated", updated))
}
