package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"geldplan/internal/advisor"
	"geldplan/internal/advisor/gemini"
	"geldplan/internal/cli"
	apphttp "geldplan/internal/http"
	"geldplan/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	cfg := cli.LoadAndValidateConfig(logger)

	store, closeStore := cli.OpenStore(logger, cfg)
	defer closeStore()

	amqpClient := cli.OpenAMQP(logger, cfg)

	// Advisor is optional; without an API key the advice endpoint reports 503.
	var adv advisor.Advisor
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("Failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
		adv = client
		logger.Info("Gemini advisor initialized", "model", cfg.GeminiModel)
	} else {
		logger.Info("Advisor disabled, no GEMINI_API_KEY provided")
	}

	datasets := services.NewDatasetService(context.Background(), store, amqpClient)
	defer datasets.Close()
	planner := services.NewPlannerService(datasets)

	srv := apphttp.NewServer(":"+cfg.Port, datasets, planner, adv, apphttp.Options{
		AdviceCacheSize: cfg.AdviceCacheSize,
		AdviceCacheTTL:  cfg.AdviceCacheTTL,
	})

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	})

	logger.Info("Starting geldplan server", "port", cfg.Port, "backend", cfg.KVBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
