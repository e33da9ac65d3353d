package ports

import (
	"context"

	"github.com/insightlab/insightsort/internal/core/domain"
)

// TextExtractor pulls raw text out of a single source file.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Classifier assigns one taxonomy topic to extracted text.
type Classifier interface {
	Classify(ctx context.Context, text string) (domain.Topic, error)
}

// KeywordExtractor produces at most topN keywords for a document.
type KeywordExtractor interface {
	Keywords(ctx context.Context, text string, topN int) ([]string, error)
}

// Summarizer produces a bounded-length summary for a document.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// FileOrganizer relocates processed source files into topic folders.
type FileOrganizer interface {
	// Move relocates path into the folder for topic, creating it if absent,
	// and returns the destination path.
	Move(ctx context.Context, path string, topic domain.Topic) (string, error)
	// Remove deletes an organized file and prunes its topic folder if that
	// leaves the folder empty.
	Remove(ctx context.Context, organizedPath string) error
	// ListFolder returns the base names of regular files in a topic folder.
	ListFolder(ctx context.Context, folder string) ([]string, error)
}

// ReportLog is the append-only tabular report.
type ReportLog interface {
	Append(ctx context.Context, entry domain.ReportEntry) error
	// Remove deletes every row keyed by filename and reports how many rows
	// were dropped. A missing log is a no-op, not an error.
	Remove(ctx context.Context, filename string) (int, error)
}

// MetadataStore is the keyed metadata relation. Each write commits
// independently; there are no cross-document transactions.
type MetadataStore interface {
	Insert(ctx context.Context, record domain.MetadataRecord) (int64, error)
	DeleteByFilename(ctx context.Context, filename string) error
	DeleteForFolder(ctx context.Context, filenames []string) error
	QueryByTopic(ctx context.Context, topic domain.Topic) ([]domain.MetadataRecord, error)
	TopicCounts(ctx context.Context) ([]domain.TopicCount, error)
}

// CompletionOptions bound a single text-completion call.
type CompletionOptions struct {
	Stop        []string
	Temperature float64
	MaxTokens   int
}

// CompletionService is the opaque text-completion collaborator.
type CompletionService interface {
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

// DocumentQueue publishes/consumes document paths for the service worker.
type DocumentQueue interface {
	PublishDocument(ctx context.Context, path string) error
	SubscribeDocuments(ctx context.Context, handler func(context.Context, string) error) error
}
