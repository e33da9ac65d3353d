package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/insightlab/insightsort/internal/core/domain"
	"github.com/insightlab/insightsort/internal/core/ports"
)

// Strategy holds the three booleans that fully determine classifier and
// extractor selection.
type Strategy struct {
	UseLLMFirst    bool
	FallbackToRule bool
	LLMExtraction  bool
}

// ProcessBatchUseCase drives each queued document through
// extract -> classify -> keyword/summary -> organize -> persist.
// One document fully completes or fails before the next starts, and no
// failure stops the batch.
type ProcessBatchUseCase struct {
	extractor ports.TextExtractor

	ruleClassifier ports.Classifier
	llmClassifier  ports.Classifier

	ruleKeywords  ports.KeywordExtractor
	llmKeywords   ports.KeywordExtractor
	ruleSummarize ports.Summarizer
	llmSummarize  ports.Summarizer

	organizer ports.FileOrganizer
	report    ports.ReportLog
	store     ports.MetadataStore

	strategy Strategy
	topN     int
	logger   *slog.Logger
}

func NewProcessBatchUseCase(
	extractor ports.TextExtractor,
	ruleClassifier, llmClassifier ports.Classifier,
	ruleKeywords, llmKeywords ports.KeywordExtractor,
	ruleSummarize, llmSummarize ports.Summarizer,
	organizer ports.FileOrganizer,
	report ports.ReportLog,
	store ports.MetadataStore,
	strategy Strategy,
	topN int,
	logger *slog.Logger,
) *ProcessBatchUseCase {
	if topN <= 0 {
		topN = 5
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProcessBatchUseCase{
		extractor:      extractor,
		ruleClassifier: ruleClassifier,
		llmClassifier:  llmClassifier,
		ruleKeywords:   ruleKeywords,
		llmKeywords:    llmKeywords,
		ruleSummarize:  ruleSummarize,
		llmSummarize:   llmSummarize,
		organizer:      organizer,
		report:         report,
		store:          store,
		strategy:       strategy,
		topN:           topN,
		logger:         logger,
	}
}

// ProcessBatch runs every path to a terminal state and returns the summary.
// Progress events are pushed to events as they happen; the channel is closed
// after the final batch_done event. A nil channel disables progress.
func (uc *ProcessBatchUseCase) ProcessBatch(
	ctx context.Context,
	paths []string,
	events chan<- domain.ProgressEvent,
) domain.BatchSummary {
	if events != nil {
		defer close(events)
	}

	startedAt := time.Now()
	summary := domain.BatchSummary{
		BatchID:   uuid.NewString(),
		Total:     len(paths),
		StartedAt: startedAt,
	}

	for i, path := range paths {
		doc := domain.Document{SourcePath: path}
		uc.emit(events, domain.ProgressEvent{
			Kind:    domain.ProgressFileStarted,
			Index:   i + 1,
			Total:   len(paths),
			Message: doc.Filename(),
		})

		result := uc.processOne(ctx, path, events)

		if result.Succeeded() {
			summary.Successful++
		} else {
			summary.Errors = append(summary.Errors, domain.FileError{
				Filename: result.Filename,
				Stage:    domain.FailedStage(result.Err),
				Reason:   result.Err.Error(),
			})
			uc.logger.Error("document failed",
				"filename", result.Filename,
				"stage", domain.FailedStage(result.Err),
				"error", result.Err,
			)
		}

		uc.emit(events, domain.ProgressEvent{
			Kind:   domain.ProgressFileFinished,
			Index:  i + 1,
			Total:  len(paths),
			Result: &result,
		})
	}

	summary.FinishedAt = time.Now()
	summary.Elapsed = summary.FinishedAt.Sub(startedAt)

	uc.emit(events, domain.ProgressEvent{
		Kind:    domain.ProgressBatchDone,
		Index:   len(paths),
		Total:   len(paths),
		Summary: &summary,
	})
	return summary
}

func (uc *ProcessBatchUseCase) processOne(
	ctx context.Context,
	path string,
	events chan<- domain.ProgressEvent,
) domain.FileResult {
	start := time.Now()
	doc := domain.Document{SourcePath: path}
	result := domain.FileResult{SourcePath: path, Filename: doc.Filename()}

	fail := func(stage domain.Stage, err error) domain.FileResult {
		result.Err = domain.FailStage(stage, err)
		result.Elapsed = time.Since(start)
		return result
	}

	text, err := uc.extractor.Extract(ctx, path)
	if err != nil {
		return fail(domain.StageExtracting, err)
	}
	doc.ExtractedText = text

	topic := uc.classify(ctx, doc, events)
	keywords, summaryText := uc.extractMetadata(ctx, doc, events)

	if _, err := uc.organizer.Move(ctx, path, topic); err != nil {
		return fail(domain.StageOrganizing, err)
	}

	entry := domain.ReportEntry{
		Filename:    doc.Filename(),
		Topic:       topic,
		Keywords:    keywords,
		Summary:     summaryText,
		ProcessedAt: time.Now(),
	}
	// The move already happened and is not rolled back; a persistence
	// failure is surfaced instead of hidden.
	if err := uc.persist(ctx, entry); err != nil {
		return fail(domain.StagePersisting, err)
	}

	result.Result = domain.ClassificationResult{Topic: topic, Keywords: keywords, Summary: summaryText}
	result.Elapsed = time.Since(start)
	return result
}

// classify applies the configured strategy. A model failure or an
// unconfident model reply downgrades, never aborts: the fallback branch is
// explicit here rather than hidden inside the classifier.
func (uc *ProcessBatchUseCase) classify(
	ctx context.Context,
	doc domain.Document,
	events chan<- domain.ProgressEvent,
) domain.Topic {
	if !uc.strategy.UseLLMFirst {
		topic, _ := uc.ruleClassifier.Classify(ctx, doc.ExtractedText)
		return topic
	}

	topic, err := uc.llmClassifier.Classify(ctx, doc.ExtractedText)
	if err != nil {
		uc.warn(events, doc.Filename(), "model classification failed, using Misc", err)
		topic = domain.TopicMisc
	}
	if topic == domain.TopicMisc && uc.strategy.FallbackToRule {
		topic, _ = uc.ruleClassifier.Classify(ctx, doc.ExtractedText)
	}
	return topic
}

// extractMetadata never fails the document: a model error yields empty
// keywords or summary plus a warning event.
func (uc *ProcessBatchUseCase) extractMetadata(
	ctx context.Context,
	doc domain.Document,
	events chan<- domain.ProgressEvent,
) ([]string, string) {
	keywordExtractor := uc.ruleKeywords
	summarizer := uc.ruleSummarize
	if uc.strategy.LLMExtraction {
		keywordExtractor = uc.llmKeywords
		summarizer = uc.llmSummarize
	}

	keywords, err := keywordExtractor.Keywords(ctx, doc.ExtractedText, uc.topN)
	if err != nil {
		uc.warn(events, doc.Filename(), "keyword extraction failed", err)
		keywords = nil
	}
	summaryText, err := summarizer.Summarize(ctx, doc.ExtractedText)
	if err != nil {
		uc.warn(events, doc.Filename(), "summary extraction failed", err)
		summaryText = ""
	}
	return keywords, summaryText
}

func (uc *ProcessBatchUseCase) persist(ctx context.Context, entry domain.ReportEntry) error {
	if err := uc.report.Append(ctx, entry); err != nil {
		return err
	}
	_, err := uc.store.Insert(ctx, domain.MetadataRecord{
		Filename:    entry.Filename,
		Topic:       entry.Topic,
		Keywords:    entry.Keywords,
		Summary:     entry.Summary,
		ProcessedAt: entry.ProcessedAt,
	})
	return err
}

func (uc *ProcessBatchUseCase) warn(events chan<- domain.ProgressEvent, filename, message string, err error) {
	uc.logger.Warn(message, "filename", filename, "error", err)
	uc.emit(events, domain.ProgressEvent{
		Kind:    domain.ProgressWarning,
		Message: filename + ": " + message,
	})
}

func (uc *ProcessBatchUseCase) emit(events chan<- domain.ProgressEvent, event domain.ProgressEvent) {
	if events != nil {
		events <- event
	}
}
