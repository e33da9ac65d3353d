package usecase

import (
	"context"

	"github.com/insightlab/insightsort/internal/core/domain"
	"github.com/insightlab/insightsort/internal/core/ports"
)

// ReportingUseCase is the read model behind reporting surfaces. Reads are
// eventually consistent relative to an in-progress batch.
type ReportingUseCase struct {
	store ports.MetadataStore
}

func NewReportingUseCase(store ports.MetadataStore) *ReportingUseCase {
	return &ReportingUseCase{store: store}
}

// RecordsByTopic returns the records for one topic, newest first.
func (uc *ReportingUseCase) RecordsByTopic(ctx context.Context, topic domain.Topic) ([]domain.MetadataRecord, error) {
	return uc.store.QueryByTopic(ctx, topic)
}

// TopicCounts returns per-topic record counts, descending.
func (uc *ReportingUseCase) TopicCounts(ctx context.Context) ([]domain.TopicCount, error) {
	return uc.store.TopicCounts(ctx)
}
