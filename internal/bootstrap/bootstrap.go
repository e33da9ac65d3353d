// Package bootstrap constructs and wires the pipeline once at process start.
// Store and schema initialization are explicit, idempotent calls here; there
// are no import-time side effects anywhere in the tree.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/insightlab/insightsort/internal/config"
	"github.com/insightlab/insightsort/internal/core/ports"
	"github.com/insightlab/insightsort/internal/core/usecase"
	"github.com/insightlab/insightsort/internal/infrastructure/classify/rulebased"
	"github.com/insightlab/insightsort/internal/infrastructure/extractor"
	"github.com/insightlab/insightsort/internal/infrastructure/llm/ollama"
	"github.com/insightlab/insightsort/internal/infrastructure/organizer/localfs"
	natsqueue "github.com/insightlab/insightsort/internal/infrastructure/queue/nats"
	"github.com/insightlab/insightsort/internal/infrastructure/report/csvlog"
	"github.com/insightlab/insightsort/internal/infrastructure/repository/sqlite"
	"github.com/insightlab/insightsort/internal/infrastructure/resilience"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	ProcessUC   *usecase.ProcessBatchUseCase
	DeleteUC    *usecase.DeleteOrganizedUseCase
	ReportingUC *usecase.ReportingUseCase

	Queue ports.DocumentQueue

	closeFns []func()
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sqlite.Open(cfg.Paths.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open metadata store: %w", err)
	}
	store := sqlite.NewMetadataStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	organizer, err := localfs.New(cfg.Paths.OrganizedDir)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init organizer: %w", err)
	}

	report := csvlog.New(cfg.Paths.ReportPath)
	gateway := extractor.NewGateway(logger)

	executor := resilience.NewExecutor(resilience.DefaultConfig())
	completion := ollama.New(
		cfg.Ollama.URL,
		cfg.Ollama.Model,
		ollama.WithRequestsPerSecond(cfg.Ollama.RequestsPerSecond),
		ollama.WithExecutor(executor),
	)

	processUC := usecase.NewProcessBatchUseCase(
		gateway,
		rulebased.NewClassifier(),
		ollama.NewClassifier(completion),
		rulebased.NewKeywordExtractor(),
		ollama.NewKeywordExtractor(completion),
		rulebased.NewSummarizer(cfg.Extractor.SummarySentences),
		ollama.NewSummarizer(completion),
		organizer,
		report,
		store,
		usecase.Strategy{
			UseLLMFirst:    cfg.Classifier.UseLLMFirst,
			FallbackToRule: cfg.Classifier.FallbackToRule,
			LLMExtraction:  cfg.Extractor.LLMMode,
		},
		cfg.Extractor.TopKeywords,
		logger,
	)

	app := &App{
		Config:      cfg,
		Logger:      logger,
		ProcessUC:   processUC,
		DeleteUC:    usecase.NewDeleteOrganizedUseCase(organizer, report, store, logger),
		ReportingUC: usecase.NewReportingUseCase(store),
		closeFns:    []func(){func() { _ = db.Close() }},
	}
	return app, nil
}

// ConnectQueue attaches the NATS document queue; only the service worker and
// publishers need it.
func (a *App) ConnectQueue() error {
	queue, err := natsqueue.NewWithOptions(a.Config.NATS.URL, a.Config.NATS.Subject, natsqueue.Options{
		Logger: a.Logger,
	})
	if err != nil {
		return fmt.Errorf("init document queue: %w", err)
	}
	a.Queue = queue
	a.closeFns = append(a.closeFns, queue.Close)
	return nil
}

func (a *App) Close() {
	for i := len(a.closeFns) - 1; i >= 0; i-- {
		a.closeFns[i]()
	}
}
