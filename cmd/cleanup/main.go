// Command cleanup permanently deletes abandoned exercise sessions older than
// the retention period. Their session vocabulary rows go with them via the
// foreign key cascade. It is meant to be run by an external cron job.
//
// Usage:
//
//	cleanup [--retention=720h]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/rbradwell/language-learning/internal/adapter/postgres"
	"github.com/rbradwell/language-learning/internal/adapter/postgres/session"
	"github.com/rbradwell/language-learning/internal/app"
	"github.com/rbradwell/language-learning/internal/config"
)

func main() {
	retention := flag.Duration("retention", 0, "override exercise.abandoned_retention")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *retention > 0 {
		cfg.Exercise.AbandonedRetention = *retention
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	threshold := time.Now().UTC().Add(-cfg.Exercise.AbandonedRetention)

	deleted, err := session.New(pool).DeleteAbandonedBefore(ctx, threshold)
	if err != nil {
		return fmt.Errorf("delete abandoned sessions before %s: %w", threshold.Format(time.RFC3339), err)
	}

	logger.Info("abandoned sessions deleted",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
	return nil
}
