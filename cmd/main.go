package main

import (
	"context"
	"log/slog"
	"loyalty-campaigns/internal/adapter/channel"
	"loyalty-campaigns/internal/adapter/usecase"
	"loyalty-campaigns/internal/worker"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fmt"

	httpadapter "loyalty-campaigns/internal/adapter/http"
	"loyalty-campaigns/internal/adapter/postgres"
	"loyalty-campaigns/internal/adapter/redis"
	"loyalty-campaigns/internal/config"
	"loyalty-campaigns/internal/core/port"
	"loyalty-campaigns/internal/db"
)

// main is the entry point of the campaign engine. It loads configuration,
// optionally runs database migrations, initializes the database pool,
// repositories and usecases, starts the scheduler and processor loops, then
// serves the HTTP API. On receiving a termination signal it stops the loops
// and gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel(), AddSource: cfg.Log.AddSource}
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, opts)
		default:
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	campaignRepo := postgres.NewCampaignRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	metricRepo := postgres.NewMetricRepository(pool)
	directory := postgres.NewUserDirectory(pool)

	// The preview cache is optional. A typed nil must never reach the
	// segmentation engine, so the port variable is only assigned on success.
	var cache port.PreviewCache
	if cfg.Redis.Enabled() {
		rc, err := redis.NewPreviewCache(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Error("preview cache unavailable, continuing without it", slog.Any("error", err))
		} else {
			defer rc.Close()
			cache = rc
		}
	}

	segmentation := usecase.NewSegmentation(directory, cache, logger, cfg.Loops.PreviewSampleSize, cfg.Redis.PreviewTTL)
	campaignSvc := usecase.NewCampaignService(campaignRepo, deliveryRepo, segmentation)
	engagementSvc := usecase.NewEngagementService(deliveryRepo, campaignRepo, metricRepo, logger)
	analyticsSvc := usecase.NewAnalyticsService(metricRepo)

	scheduler := worker.NewScheduler(campaignRepo, deliveryRepo, segmentation, metricRepo, logger, cfg.Loops.ClaimLease)
	processor := worker.NewProcessor(
		deliveryRepo,
		directory,
		channel.NewLogAdapter(logger),
		metricRepo,
		logger,
		cfg.Loops.ClaimBatchSize,
		cfg.Loops.ClaimLease,
		cfg.Loops.SendTimeout,
	)

	schedulerLoop := worker.NewLoop("scheduler", cfg.Loops.SchedulerInterval, logger, scheduler.Tick)
	processorLoop := worker.NewLoop("processor", cfg.Loops.ProcessorInterval, logger, processor.Tick)
	schedulerLoop.Start(ctx)
	processorLoop.Start(ctx)

	handler := httpadapter.NewHandler(campaignSvc, engagementSvc, analyticsSvc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	schedulerLoop.Stop()
	processorLoop.Stop()
	<-schedulerLoop.Done()
	<-processorLoop.Done()

	// ctx is already cancelled by now; the drain needs its own deadline.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
