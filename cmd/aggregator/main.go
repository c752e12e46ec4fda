package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"match_fetcher/internal/config"
	"match_fetcher/internal/domain"
	"match_fetcher/internal/emitter"
	"match_fetcher/internal/service"
	"match_fetcher/internal/source/drmlive"
	"match_fetcher/internal/source/fancode"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (optional)")
	flag.Parse()

	// stdout carries the emitted JSON array, so all logging goes to stderr.
	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		emit(nil, logger)
		return
	}

	logger = setupLogger(cfg.LogLevel)

	primary := drmlive.New(drmlive.Config{
		URL:     cfg.Sources.PrimaryURL,
		Timeout: cfg.HTTP.Timeout,
	}, logger)

	secondary := fancode.New(fancode.Config{
		URL:     cfg.Sources.SecondaryURL,
		Timeout: cfg.HTTP.Timeout,
	}, logger)

	svc := service.NewAggregateService(primary, secondary, logger)

	emit(collect(context.Background(), svc, logger), logger)
}

// collect runs one aggregation pass. A panic anywhere in the pipeline degrades
// to the empty result instead of a non-zero exit; the caller must always
// receive a valid JSON array.
func collect(ctx context.Context, svc *service.AggregateService, logger *slog.Logger) (records []domain.MatchRecord) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("aggregation panicked", "panic", r)
			records = nil
		}
	}()

	var stats *domain.RunStats
	records, stats = svc.Aggregate(ctx)

	logger.Info("run finished",
		"emitted", stats.Emitted,
		"duplicates", stats.Duplicates,
		"source_errors", stats.SourceErrors,
		"duration", stats.Duration,
	)

	return records
}

func emit(records []domain.MatchRecord, logger *slog.Logger) {
	if err := emitter.New(os.Stdout, logger).Emit(records); err != nil {
		// Whatever reached stdout is what the collaborator persists; there is
		// nothing left to recover here.
		logger.Error("failed to emit records", "error", err)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
