package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/leojp04/drarea/internal/config"
	"github.com/leojp04/drarea/internal/handler"
	"github.com/leojp04/drarea/internal/logging"
	"github.com/leojp04/drarea/internal/middleware"
	"github.com/leojp04/drarea/internal/store"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	st, cleanup, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("store", zap.Error(err))
	}
	defer cleanup()

	h := handler.New(st, logger)
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h.Router(rl),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http", zap.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

// openStore picks Postgres when a DSN is configured, the in-memory
// json-server stand-in otherwise.
func openStore(cfg *config.Server, logger *zap.Logger) (store.Store, func(), error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("using in-memory store")
		return store.NewMemory(), func() {}, nil
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, nil, err
	}
	logger.Info("connected to postgres")

	// run migrations
	path := cfg.MigrationsDir + "/001_init.sql"
	if migration, err := os.ReadFile(path); err != nil {
		logger.Warn("migration file not found, skipping", zap.Error(err))
	} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
		logger.Warn("migration", zap.Error(err))
	} else {
		logger.Info("migration applied")
	}

	return store.NewPostgres(pool), pool.Close, nil
}
