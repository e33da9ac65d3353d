package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/insightlab/insightsort/internal/bootstrap"
	"github.com/insightlab/insightsort/internal/config"
	"github.com/insightlab/insightsort/internal/core/domain"
	"github.com/insightlab/insightsort/internal/observability/logging"
	"github.com/insightlab/insightsort/internal/observability/metrics"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logging.NewJSONLogger("insightsort-worker", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	if err := app.ConnectQueue(); err != nil {
		log.Fatalf("queue error: %v", err)
	}

	workerMetrics := metrics.NewWorkerMetrics("insightsort-worker")
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: workerMetrics.Handler(),
	}
	go func() {
		logger.Info("metrics listening", "port", cfg.WorkerMetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("metrics server error: %v", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("worker subscribed", "subject", cfg.NATS.Subject)
	err = app.Queue.SubscribeDocuments(ctx, func(handlerCtx context.Context, path string) error {
		processCtx, cancel := context.WithTimeout(handlerCtx, 5*time.Minute)
		defer cancel()

		events := make(chan domain.ProgressEvent, 16)
		go app.ProcessUC.ProcessBatch(processCtx, []string{path}, events)
		for event := range events {
			switch event.Kind {
			case domain.ProgressFileStarted:
				workerMetrics.StartDocument()
			case domain.ProgressFileFinished:
				if event.Result != nil {
					workerMetrics.FinishDocument("insightsort-worker", *event.Result)
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}
}
