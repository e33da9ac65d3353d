package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/insightlab/insightsort/internal/bootstrap"
	"github.com/insightlab/insightsort/internal/config"
	"github.com/insightlab/insightsort/internal/core/domain"
	"github.com/insightlab/insightsort/internal/infrastructure/scan"
	"github.com/insightlab/insightsort/internal/observability/logging"
)

const timePrecision = 10 * time.Millisecond

func main() {
	var (
		dir        = flag.String("dir", "", "directory to scan for documents")
		configPath = flag.String("config", "", "path to config file")
		publish    = flag.Bool("publish", false, "enqueue documents for the service worker instead of processing locally")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logging.NewJSONLogger("insightsort", cfg.LogLevel)

	paths := flag.Args()
	if *dir != "" {
		scanned, err := scan.Directory(*dir)
		if err != nil {
			log.Fatalf("scan error: %v", err)
		}
		paths = append(paths, scanned...)
	}
	paths = scan.Dedupe(paths)
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "no documents to process; pass file paths or -dir")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	if *publish {
		if err := app.ConnectQueue(); err != nil {
			log.Fatalf("queue error: %v", err)
		}
		for _, path := range paths {
			if err := app.Queue.PublishDocument(ctx, path); err != nil {
				log.Fatalf("publish %s: %v", path, err)
			}
		}
		fmt.Printf("published %d documents to %s\n", len(paths), cfg.NATS.Subject)
		return
	}

	events := make(chan domain.ProgressEvent, 16)
	go app.ProcessUC.ProcessBatch(ctx, paths, events)

	var summary *domain.BatchSummary
	for event := range events {
		switch event.Kind {
		case domain.ProgressFileStarted:
			fmt.Printf("[%d/%d] %s\n", event.Index, event.Total, event.Message)
		case domain.ProgressFileFinished:
			printResult(event.Result)
		case domain.ProgressWarning:
			fmt.Printf("  warning: %s\n", event.Message)
		case domain.ProgressBatchDone:
			summary = event.Summary
		}
	}
	if summary == nil {
		log.Fatal("batch ended without a summary")
	}
	printSummary(*summary)

	if summary.Successful < summary.Total {
		os.Exit(1)
	}
}

func printResult(result *domain.FileResult) {
	if result == nil {
		return
	}
	if !result.Succeeded() {
		fmt.Printf("  failed (%s): %v\n", domain.FailedStage(result.Err), result.Err)
		return
	}
	fmt.Printf("  -> %s (%s)\n", result.Result.Topic, result.Elapsed.Round(timePrecision))
	if len(result.Result.Keywords) > 0 {
		fmt.Printf("     keywords: %s\n", domain.JoinKeywords(result.Result.Keywords))
	}
}

func printSummary(summary domain.BatchSummary) {
	fmt.Printf("\nprocessed %d documents: %d ok, %d failed (%.1f%%) in %s\n",
		summary.Total,
		summary.Successful,
		len(summary.Errors),
		summary.SuccessRate(),
		summary.Elapsed.Round(timePrecision),
	)
	for _, fileErr := range summary.Errors {
		fmt.Printf("  %s: %s failed: %s\n", fileErr.Filename, fileErr.Stage, fileErr.Reason)
	}
}
