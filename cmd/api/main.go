package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/keivanh/keepwarm/internal/config"
	"github.com/keivanh/keepwarm/internal/engine"
	"github.com/keivanh/keepwarm/internal/httpapi"
	apimw "github.com/keivanh/keepwarm/internal/httpapi/middleware"
	"github.com/keivanh/keepwarm/internal/kv"
	"github.com/keivanh/keepwarm/internal/kv/memory"
	"github.com/keivanh/keepwarm/internal/kv/postgres"
	"github.com/keivanh/keepwarm/internal/kv/sqlite"
	"github.com/keivanh/keepwarm/internal/logging"
	"github.com/keivanh/keepwarm/internal/probe"
	"github.com/keivanh/keepwarm/internal/repo"
	"github.com/keivanh/keepwarm/internal/scheduler"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("store_open_error", zap.Error(err))
	}
	defer closeStore()

	state := repo.NewState(store)
	if cfg.SeedFile != "" {
		if err := applySeed(ctx, state, cfg.SeedFile); err != nil {
			logger.Fatal("seed_error", zap.Error(err))
		}
	}

	loc, err := time.LoadLocation(cfg.DisplayTZ)
	if err != nil {
		logger.Warn("bad_display_tz", zap.String("tz", cfg.DisplayTZ), zap.Error(err))
		loc = time.UTC
	}

	eng := engine.New(logger, state, probe.NewHTTPChecker(cfg.HTTPTimeout), loc)
	cron := scheduler.New(logger, eng, cfg.CronInterval)
	go cron.Run(ctx)

	api := httpapi.NewServer(logger, state, eng)
	keys := apimw.Keys{Public: cfg.PublicAPIKeys, Admin: cfg.AdminAPIKeys}
	limits := httpapi.RateLimits{
		PublicRPM:   cfg.PublicRPM,
		PublicBurst: cfg.PublicBurst,
		AdminRPM:    cfg.AdminRPM,
		AdminBurst:  cfg.AdminBurst,
	}

	srv := &http.Server{Addr: cfg.Addr, Handler: api.Router(keys, limits)}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("api_listen",
		zap.String("addr", cfg.Addr),
		zap.Duration("cron_interval", cfg.CronInterval),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("api_serve_error", zap.Error(err))
	}

	// let scheduled runs already in flight finish before exiting
	cron.Wait()
	logger.Info("shutdown_complete")
}

func openStore(ctx context.Context, dsn string, logger *zap.Logger) (kv.Store, func(), error) {
	switch {
	case dsn == "":
		logger.Info("store_memory")
		return memory.New(), func() {}, nil
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		s, err := postgres.New(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("store_postgres")
		return s, s.Close, nil
	default:
		path := strings.TrimPrefix(dsn, "sqlite://")
		s, err := sqlite.New(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("store_sqlite", zap.String("path", path))
		return s, func() { _ = s.Close() }, nil
	}
}

func applySeed(ctx context.Context, state *repo.State, path string) error {
	seed, err := config.LoadSeed(path)
	if err != nil {
		return err
	}
	if seed.Settings != nil {
		p := seed.Settings.Policy()
		return state.Seed(ctx, seed.Targets, &p)
	}
	return state.Seed(ctx, seed.Targets, nil)
}
