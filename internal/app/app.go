package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rbradwell/language-learning/internal/adapter/postgres"
	exerciserepo "github.com/rbradwell/language-learning/internal/adapter/postgres/exercise"
	progressrepo "github.com/rbradwell/language-learning/internal/adapter/postgres/progress"
	"github.com/rbradwell/language-learning/internal/adapter/postgres/sentence"
	"github.com/rbradwell/language-learning/internal/adapter/postgres/session"
	"github.com/rbradwell/language-learning/internal/adapter/postgres/trail"
	"github.com/rbradwell/language-learning/internal/adapter/postgres/vocabulary"
	"github.com/rbradwell/language-learning/internal/auth"
	"github.com/rbradwell/language-learning/internal/config"
	"github.com/rbradwell/language-learning/internal/service/exercise"
	"github.com/rbradwell/language-learning/internal/service/progress"
	"github.com/rbradwell/language-learning/internal/sweeper"
	"github.com/rbradwell/language-learning/internal/transport/middleware"
	"github.com/rbradwell/language-learning/internal/transport/rest"
)

// Run loads configuration, wires the exercise API and serves it until ctx
// is cancelled, then shuts the HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	exercises := exerciserepo.New(pool)
	trails := trail.New(pool)
	sessions := session.New(pool)

	progressSvc := progress.NewService(logger, exercises, trails, sessions, progressrepo.New(pool))
	exerciseSvc := exercise.NewService(
		logger,
		exercises,
		trails,
		vocabulary.New(pool),
		sentence.New(pool),
		sessions,
		progressSvc,
		txm,
		cfg.Exercise,
	)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, 2*cfg.RateLimit.CleanupInterval)

	maintenance := sweeper.New(logger)
	if err := maintenance.Add(sweeper.Task{
		Name:     "rate_limit_buckets",
		Interval: cfg.RateLimit.CleanupInterval,
		Run: func(context.Context) (int64, error) {
			return int64(limiter.Sweep()), nil
		},
	}); err != nil {
		return err
	}
	maintenance.Start(ctx)
	defer maintenance.Stop()

	api := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager, logger),
		middleware.Logger(logger),
		limiter.Limit(),
	)
	router := newRouter(
		rest.NewHealthHandler(pool, BuildVersion()),
		rest.NewExerciseHandler(exerciseSvc, progressSvc, logger),
		api,
	)

	srv := &http.Server{
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	logger.Info("http server listening", slog.String("addr", ln.Addr().String()))

	return serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv on ln until ctx is done or the server fails. On
// cancellation in-flight requests get up to shutdownTimeout to finish.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
