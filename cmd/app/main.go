// Package main runs the WheelShow round engine and its HTTP API.
//
//	@title						WheelShow API
//	@version					1.0
//	@description				Single-player wheel wagering round engine.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/WheelShow_Go/internal/bootstrap"
	"github.com/osse101/WheelShow_Go/internal/config"
	"github.com/osse101/WheelShow_Go/internal/event"
	"github.com/osse101/WheelShow_Go/internal/jobs"
	"github.com/osse101/WheelShow_Go/internal/metrics"
	"github.com/osse101/WheelShow_Go/internal/rng"
	"github.com/osse101/WheelShow_Go/internal/round"
	"github.com/osse101/WheelShow_Go/internal/roundlog"
	"github.com/osse101/WheelShow_Go/internal/scheduler"
	"github.com/osse101/WheelShow_Go/internal/server"
	"github.com/osse101/WheelShow_Go/internal/simulator"
	"github.com/osse101/WheelShow_Go/internal/sse"
	"github.com/osse101/WheelShow_Go/internal/worker"
)

// shutdownTimeout bounds the whole graceful shutdown sequence
const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("WheelShow exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tbl, err := bootstrap.LoadTable(cfg)
	if err != nil {
		return err
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	rounds := roundlog.NewService(storage.RoundRepo, cfg.RecentRoundsCacheSize, cfg.RecentRoundsCacheTTL)

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		return err
	}

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        bus,
		Publisher:       publisher,
		RoundLogService: rounds,
		Pool:            pool,
		Hub:             hub,
		Config:          cfg,
	}); err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
			Pool:               pool,
			Hub:                hub,
			ResilientPublisher: publisher,
			Storage:            storage,
		})
		return err
	}

	var engine *round.Engine
	sinks := []round.Sink{
		event.NewRoundSink(publisher).WithBalance(func() int64 { return engine.Balance() }),
	}
	if storage.RedisSink != nil {
		sinks = append(sinks, storage.RedisSink)
	}
	engine = round.NewEngine(tbl, rng.Default(), scheduler.NewTimerScheduler(), cfg.RoundConfig(),
		round.WithPublisher(publisher),
		round.WithSinks(sinks...),
	)
	engine.Start(ctx)

	scheduled := jobs.New(pool)
	if err := scheduled.Cron(bootstrap.JobNameRoundCleanup, cfg.CleanupCron, roundlog.NewCleanupJob(rounds, cfg.RoundRetentionDays)); err != nil {
		slog.Warn("Round cleanup not scheduled", "cron", cfg.CleanupCron, "error", err)
	}
	scheduled.Every(bootstrap.JobNameBalanceSample, bootstrap.BalanceSampleInterval, metrics.NewBalanceJob(engine.Balance))
	scheduled.Start()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimit:      cfg.RateLimit,
		Service:        cfg.ServiceName,
		Version:        cfg.Version,
	}, server.Deps{
		Engine:    engine,
		RoundLog:  rounds,
		Table:     tbl,
		Simulator: simulator.New(tbl),
		Hub:       hub,
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Engine:             engine,
		Jobs:               scheduled,
		Pool:               pool,
		Hub:                hub,
		ResilientPublisher: publisher,
		Storage:            storage,
	})
	return err
}
