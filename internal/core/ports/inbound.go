package ports

import (
	"context"

	"github.com/insightlab/insightsort/internal/core/domain"
)

// BatchProcessor is the inbound contract for running one classification batch.
// Events are pushed to the progress channel as documents complete; the channel
// is closed by the processor when the batch summary has been sent.
type BatchProcessor interface {
	ProcessBatch(ctx context.Context, paths []string, events chan<- domain.ProgressEvent) domain.BatchSummary
}

// OrganizedDeleter removes an organized file together with its report row and
// metadata record.
type OrganizedDeleter interface {
	Delete(ctx context.Context, organizedPath string) error
	DeleteFolder(ctx context.Context, folder string) error
}

// ReportReader is the inbound read model for reporting surfaces.
type ReportReader interface {
	RecordsByTopic(ctx context.Context, topic domain.Topic) ([]domain.MetadataRecord, error)
	TopicCounts(ctx context.Context) ([]domain.TopicCount, error)
}
