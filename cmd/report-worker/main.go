package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"finhealth/internal/amqp"
	"finhealth/internal/config"
	"finhealth/internal/log"
	"finhealth/internal/storage"
	"finhealth/internal/worker"
)

const connectAttempts = 10

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()
	logger := log.New(log.Config{Level: log.ParseLevel(cfg.LogLevel), Component: log.ComponentWorker})
	log.SetDefault(logger)

	logger.Info("Starting report-worker")

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", log.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The broker may come up after us; keep dialing with backoff.
	amqpClient, err := amqp.NewClientWithRetry(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, connectAttempts)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	audit := worker.NewAuditWorker(repo, cfg.AuditRetention, logger)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return amqpClient.ConsumeEvents(ctx, func(msg *amqp.ReportEventMessage) error {
			return audit.RecordEvent(ctx, msg)
		})
	})

	g.Go(func() error {
		schedule := cron.New()
		_, err := schedule.AddFunc(cfg.AuditSweepCron, func() {
			if err := audit.RunRetentionSweep(ctx); err != nil {
				logger.Error("Retention sweep failed", log.FieldError, err)
			}
		})
		if err != nil {
			return err
		}

		schedule.Start()
		logger.Info("Audit retention sweep scheduled", "cron", cfg.AuditSweepCron)

		<-ctx.Done()
		<-schedule.Stop().Done()
		return ctx.Err()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
