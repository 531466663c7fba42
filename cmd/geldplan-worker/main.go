package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"geldplan/internal/amqp"
	"geldplan/internal/cli"
	"geldplan/internal/services"
)

// The worker listens for dataset change notifications and keeps a warm
// month outlook, so the first dashboard request after an edit does not pay
// the simulation cost. It also logs every change for auditing.
func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting geldplan-worker")

	cfg := cli.LoadAndValidateConfig(logger)
	if cfg.AMQPURL == "" {
		logger.Error("Worker requires AMQP_URL to be set")
		os.Exit(1)
	}

	store, closeStore := cli.OpenStore(logger, cfg)
	defer closeStore()

	amqpClient := cli.OpenAMQP(logger, cfg)
	defer amqpClient.Close()

	datasets := services.NewDatasetService(context.Background(), store, nil)
	planner := services.NewPlannerService(datasets)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	warm := func(ctx context.Context, reason string) {
		// The server process owns the writes; pick them up before computing.
		datasets.ReloadBudget(ctx)
		period := time.Now().Format("2006-01")
		out, err := planner.Outlook(ctx, period, time.Now())
		if err != nil {
			logger.Error("Outlook refresh failed", "error", err, "period", period)
			return
		}
		logger.Info("Outlook refreshed",
			"reason", reason,
			"period", period,
			"total_debt", out.Portfolio.TotalDebt,
			"free_budget", out.FreeBudget,
			"outcome", out.Repayment.Outcome)
	}

	warm(ctx, "startup")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return amqpClient.ConsumeDatasetChanged(ctx, func(msg *amqp.DatasetChangedMessage) error {
			logger.Info("Dataset changed",
				"dataset", msg.Dataset,
				"revision", msg.Revision,
				"changed_at", msg.Timestamp)
			warm(ctx, "change notification")
			return nil
		})
	})

	// Periodic refresh catches missed notifications and month rollover.
	g.Go(func() error {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				warm(ctx, "periodic")
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
