package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/bondwatch-lab/bondwatch/internal/core/config"
	"github.com/bondwatch-lab/bondwatch/internal/core/storage/postgres"
	"github.com/bondwatch-lab/bondwatch/internal/dashboard"
	"github.com/bondwatch-lab/bondwatch/internal/ingestion"
	"github.com/bondwatch-lab/bondwatch/internal/metrics"
	"github.com/bondwatch-lab/bondwatch/internal/migrations"
	"github.com/bondwatch-lab/bondwatch/internal/rebucket"
	"github.com/bondwatch-lab/bondwatch/internal/server"
	"github.com/bondwatch-lab/bondwatch/internal/sources"
)

func main() {
	configPath := flag.String("config", "bondwatch.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config", "config_path", *configPath, "server", cfg.Server.Addr())

	// 2. Initialize Storage (PostgreSQL)
	db, err := postgres.OpenDB(
		cfg.Database.DSN,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
	)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 2.1. Run Database Migrations
	if err := migrations.Run(db, cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	dbAdapter, err := postgres.NewAdapter(db)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 3. Load source field mappings
	if err := cfg.Sources.CheckDir(); err != nil {
		slog.Error("Invalid source mapping directory", "error", err)
		os.Exit(1)
	}
	registry, err := sources.LoadDir(cfg.Sources.ConfigDir)
	if err != nil {
		slog.Error("Failed to load source mappings", "dir", cfg.Sources.ConfigDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Source mappings loaded", "sources", registry.Len(), "counties", registry.Counties())
	for _, src := range registry.List() {
		slog.Info("Source mapping", "source", src.Name, "county", src.County, "fingerprint", src.Fingerprint)
	}

	m := metrics.New()

	// 4. Optional dashboard cache (Redis)
	var cache dashboard.Cache
	var redisCheck server.HealthChecker
	if cfg.Redis.URL != "" && cfg.Dashboard.TTL() > 0 {
		rc, err := dashboard.NewRedisCache(cfg.Redis.URL)
		if err != nil {
			slog.Error("Failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer rc.Close()
		cache = rc
		redisCheck = rc
		slog.Info("Dashboard cache enabled", "ttl", cfg.Dashboard.TTL())
	} else {
		slog.Info("Dashboard cache disabled")
	}

	// 5. Services
	ingestionSvc := ingestion.NewService(registry, dbAdapter, m, cfg.Server.MaxBodySizeMB)
	dashboardSvc := dashboard.NewService(dbAdapter, cache, m, dashboard.Options{
		TopLimit:    cfg.Dashboard.TopLimit,
		MaxTopLimit: cfg.Dashboard.MaxTopLimit,
		CacheTTL:    cfg.Dashboard.TTL(),
	})

	// 6. Initialize Server
	srv := server.New(cfg.Server.Addr(), cfg.Server.Mode, map[string]server.HealthChecker{
		"database": dbAdapter,
		"redis":    redisCheck,
	})
	srv.MountMetrics(m.Handler())
	ingestionSvc.RegisterRoutes(srv.Engine)
	dashboardSvc.RegisterRoutes(srv.Engine)

	// 7. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var schedulerDone <-chan struct{}
	if cfg.Rebucket.Enabled {
		scheduler := rebucket.NewScheduler(cfg.Rebucket.RebucketInterval(), dbAdapter, m, cfg.Rebucket.BatchSize)
		schedulerDone = scheduler.Done()
		go func() {
			if err := scheduler.Start(ctx); err != nil {
				slog.Error("Rebucket scheduler stopped with error", "error", err)
			}
		}()
	} else {
		slog.Info("Rebucket scheduler disabled by config")
	}

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	// The database stays open until the final rebucket sweep finishes.
	cancel()
	if schedulerDone != nil {
		<-schedulerDone
	}

	slog.Info("Shutdown complete")
}
