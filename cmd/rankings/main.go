package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/isa-rankings/rankings/internal/core/config"
	"github.com/isa-rankings/rankings/internal/core/storage"
	"github.com/isa-rankings/rankings/internal/core/storage/memory"
	"github.com/isa-rankings/rankings/internal/core/storage/postgres"
	"github.com/isa-rankings/rankings/internal/engine"
	"github.com/isa-rankings/rankings/internal/ingestion"
	"github.com/isa-rankings/rankings/internal/migrations"
	"github.com/isa-rankings/rankings/internal/projection"
	"github.com/isa-rankings/rankings/internal/registry"
	"github.com/isa-rankings/rankings/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// backend bundles the stores one storage choice provides.
type backend struct {
	changes  storage.ChangeLog
	contests storage.ContestStore
	rankings storage.RankingStore
	athletes registry.Store
	health   server.HealthChecker
	close    func()
}

func main() {
	configPath := flag.String("config", "rankings.yaml", "Path to configuration file")
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
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"hierarchy", cfg.Hierarchy.Path,
		"consumer_enabled", cfg.Consumer.Enabled)

	// 2. Initialize Storage
	be, err := openBackend(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer be.close()

	athletes := registry.NewCachedRegistryWithCache(be.athletes, cfg.Athletes.CacheSize, cfg.Athletes.TTL())

	// 3. Initialize Ranking Engine
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := engine.NewMetrics(reg)

	upserter := engine.NewUpserter(cfg.Categories, be.rankings, cfg.Consumer.CombinationWorkers, metrics)
	processor := engine.NewProcessor(athletes, upserter, metrics)
	consumer := engine.NewConsumer(be.changes, processor, metrics, engine.ConsumerOptions{
		Name:         cfg.Consumer.Name,
		PollInterval: cfg.Consumer.PollEvery(),
		BatchSize:    cfg.Consumer.BatchSize,
		WorkerCount:  cfg.Consumer.WorkerCount,
	})

	slog.Info("Ranking consumer initialized",
		"name", cfg.Consumer.Name,
		"interval", cfg.Consumer.PollEvery(),
		"batch_size", cfg.Consumer.BatchSize,
		"worker_count", cfg.Consumer.WorkerCount,
		"combination_workers", cfg.Consumer.CombinationWorkers,
	)

	// 4. Initialize Ingestion (writes only reach the change log)
	ingestionSvc := ingestion.NewService(be.changes, be.contests, athletes, cfg.Categories, cfg.Server.MaxBodySizeMB)

	// 5. Initialize Projection (query API)
	projectionSvc := projection.NewService(be.contests, be.rankings, cfg.Categories)

	// 6. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), be.health, reg, cfg.Server.Mode)
	ingestionSvc.RegisterRoutes(srv.Engine)
	projectionSvc.RegisterRoutes(srv.Engine)

	// 7. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumerDone := make(chan struct{})
	if cfg.Consumer.Enabled {
		go func() {
			defer close(consumerDone)
			if err := consumer.Start(ctx); err != nil {
				slog.Error("Consumer stopped with error", "error", err)
			}
		}()
	} else {
		close(consumerDone)
		slog.Info("Ranking consumer disabled by config")
	}

	// Signal handler → triggers the shutdown sequence below.
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
		cancel()
	}

	// Let the consumer finish its final drain before the pool closes.
	<-consumerDone
	slog.Info("Shutdown complete")
}

func openBackend(cfg corecfg.DatabaseConfig) (*backend, error) {
	if cfg.Type == "memory" {
		slog.Warn("Using in-memory storage: data is lost on restart")
		store := memory.NewStore()
		return &backend{
			changes:  store,
			contests: store,
			rankings: store,
			athletes: store,
			close:    func() {},
		}, nil
	}

	db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, err
	}

	schemaVersion, err := migrations.RunMigrations(db, cfg.AutoMigrate)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	slog.Info("Rankings schema ready", "schema_version", schemaVersion, "auto_migrate", cfg.AutoMigrate)

	adapter, err := postgres.NewAdapter(db)
	if err != nil {
		return nil, err
	}

	return &backend{
		changes:  adapter,
		contests: postgres.NewContestAdapter(db),
		rankings: postgres.NewRankingAdapter(db),
		athletes: postgres.NewAthleteAdapter(db),
		health:   adapter,
		close: func() {
			if err := adapter.Close(); err != nil {
				slog.Error("Failed to close database", "error", err)
			}
		},
	}, nil
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
