package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"printer-agent/internal/core/cache"
	"printer-agent/internal/core/config"
	"printer-agent/internal/core/logger"
	"printer-agent/internal/core/server"
	jobsadapter "printer-agent/internal/features/jobs/adapters"
	jobsservice "printer-agent/internal/features/jobs/service"
	labelservice "printer-agent/internal/features/labels/service"
	printadapter "printer-agent/internal/features/printing/adapters"
	printhandler "printer-agent/internal/features/printing/handler"
	printservice "printer-agent/internal/features/printing/service"

	"go.uber.org/zap"
)

// @title Printer Agent API
// @version 1.0
// @description Local print agent that renders shipping labels and dispatches them to a printer.
// @contact.name API Support
// @contact.email support@printeragent.local
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Printer agent starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional printed-order guard. Without Redis the agent relies on
	// acknowledgments alone.
	var guard cache.Cache
	if cfg.RedisURL != "" {
		redisGuard, err := cache.NewRedisAdapter(cfg.RedisURL)
		if err != nil {
			l.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisGuard.Close()

		if err := redisGuard.Ping(ctx); err != nil {
			l.Fatal("Redis ping failed", zap.Error(err))
		}
		guard = redisGuard
		l.Info("Printed-order guard enabled",
			zap.Int("ttl_seconds", cfg.PrintedGuardTTLSeconds),
		)
	}

	// Initialize the API adapter and verify connectivity before polling.
	apiAdapter := jobsadapter.NewHantarAdapter(cfg.API)
	if err := apiAdapter.HealthCheck(); err != nil {
		l.Fatal("Order API health check failed", zap.Error(err))
	}
	l.Info("Order API connection verified", zap.String("url", cfg.API.URL))

	// Initialize the label renderer.
	renderer, err := labelservice.NewRenderService(cfg.Printing.OutputDir, cfg.Printing.AssetDir)
	if err != nil {
		l.Fatal("Failed to initialize label renderer", zap.Error(err))
	}

	// Probe installed print tooling once and lock in the dispatch pipeline.
	locator := printadapter.NewPathLocator()
	dispatcher := printadapter.SelectDispatcher(cfg.Printing, locator)

	printSvc := printservice.NewPrintService(renderer, dispatcher)
	printHdl := printhandler.NewPrintHandler(printSvc, cfg.Printing.OutputDir)

	poller := jobsservice.NewPoller(
		apiAdapter,
		printSvc,
		guard,
		time.Duration(cfg.PrintedGuardTTLSeconds)*time.Second,
		time.Duration(cfg.API.PollIntervalSeconds)*time.Second,
		time.Duration(cfg.API.OrderDelayMS)*time.Millisecond,
	)
	go poller.Run(ctx)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/print-label", printHdl.PrintLabel)
	srv.App.Get("/labels/:filename", printHdl.GetLabel)

	go func() {
		<-ctx.Done()
		l.Info("Shutdown signal received")
		if err := srv.App.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}

	l.Info("Printer agent stopped")
}
