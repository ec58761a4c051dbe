// Command session-sweeper periodically marks expired in-progress exercise
// sessions as abandoned. It runs until SIGINT or SIGTERM.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rbradwell/language-learning/internal/adapter/postgres"
	"github.com/rbradwell/language-learning/internal/adapter/postgres/session"
	"github.com/rbradwell/language-learning/internal/app"
	"github.com/rbradwell/language-learning/internal/config"
	"github.com/rbradwell/language-learning/internal/sweeper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := sweeper.New(logger)
	if err := s.Add(sweeper.ExpireSessions(session.New(pool), cfg.Sweeper.Interval, time.Now)); err != nil {
		logger.Error("register sweeper task", slog.String("error", err.Error()))
		os.Exit(1)
	}

	s.Start(ctx)
	<-ctx.Done()
	s.Stop()
}
