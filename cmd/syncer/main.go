package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"portfolio_sync/internal/api"
	"portfolio_sync/internal/config"
	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/publisher"
	"portfolio_sync/internal/scheduler"
	"portfolio_sync/internal/service"
	"portfolio_sync/internal/source"
	"portfolio_sync/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	serve := flag.Bool("serve", false, "run the HTTP trigger server with periodic resync")
	pushType := flag.String("push", "", "reverse-push one content type back to the source system")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Optional sync-event publisher
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	store := postgres.NewRecordStore(db)

	client := source.NewClient(source.Config{
		BaseURL:        cfg.Source.BaseURL,
		PageSize:       cfg.Source.PageSize,
		Timeout:        cfg.Source.Timeout,
		MaxAttempts:    cfg.Source.Retry.MaxAttempts,
		InitialBackoff: cfg.Source.Retry.InitialBackoff,
		MaxBackoff:     cfg.Source.Retry.MaxBackoff,
	}, logger)

	reconciler := service.NewReconciler(store, logger)
	orchestrator := service.NewOrchestrator(cfg, client, reconciler, pub, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	switch {
	case *pushType != "":
		runPush(ctx, cfg, client, store, logger, *pushType)
	case *serve:
		runServe(ctx, cfg, orchestrator, logger)
	default:
		runOnce(ctx, cfg, orchestrator)
	}
}

// runOnce runs a single sync pass and prints the per-type summary. Record
// errors are a normal outcome and never change the exit code.
func runOnce(ctx context.Context, cfg *config.Config, orchestrator *service.Orchestrator) {
	passCtx, cancel := context.WithTimeout(ctx, cfg.Sync.PassTimeout)
	defer cancel()

	report := orchestrator.SyncAll(passCtx)

	fmt.Printf("sync completed at %s\n", report.SyncedAt.Format(time.RFC3339))
	for _, t := range domain.AllTypes {
		result, ok := report.Results[t]
		if !ok {
			continue
		}
		fmt.Printf("  %-14s synced=%d errors=%d\n", t, result.Synced, result.Errors)
	}
}

func runPush(ctx context.Context, cfg *config.Config, client *source.Client, store *postgres.RecordStore, logger *slog.Logger, pushType string) {
	pusher := service.NewPusher(cfg, client, store, logger)

	created, err := pusher.Push(ctx, domain.ContentType(pushType))
	if err != nil {
		logger.Error("reverse push failed", "type", pushType, "error", err)
		os.Exit(1)
	}

	fmt.Printf("created %d source items for %s\n", len(created), pushType)
}

func runServe(ctx context.Context, cfg *config.Config, orchestrator *service.Orchestrator, logger *slog.Logger) {
	handler := api.NewHandler(orchestrator, logger)
	router := api.NewServer(handler, cfg.Server.AccessKey)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Sync.PassTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	if cfg.Sync.Interval > 0 {
		sched := scheduler.NewScheduler(orchestrator, cfg.Sync.Interval, cfg.Sync.PassTimeout, logger)
		go func() {
			if err := sched.Start(ctx); err != nil && err != context.Canceled {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
	case err := <-serverErrChan:
		logger.Error("HTTP server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	} else {
		logger.Info("HTTP server stopped")
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
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
