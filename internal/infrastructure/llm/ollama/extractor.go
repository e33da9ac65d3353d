package ollama

import (
	"context"
	"strings"

	"github.com/insightlab/insightsort/internal/core/domain"
	"github.com/insightlab/insightsort/internal/core/ports"
	"github.com/insightlab/insightsort/internal/infrastructure/textnorm"
)

// KeywordExtractor parses the model reply as a comma-separated list.
type KeywordExtractor struct {
	service ports.CompletionService
}

func NewKeywordExtractor(service ports.CompletionService) *KeywordExtractor {
	return &KeywordExtractor{service: service}
}

func (e *KeywordExtractor) Keywords(ctx context.Context, text string, topN int) ([]string, error) {
	if topN <= 0 {
		return nil, nil
	}
	snippet := textnorm.Truncate(textnorm.Normalize(text), keywordWordBudget)
	reply, err := e.service.Complete(ctx, buildKeywordPrompt(snippet, topN), ports.CompletionOptions{
		Stop:        []string{"\n"},
		Temperature: 0.2,
		MaxTokens:   40,
	})
	if err != nil {
		return nil, domain.WrapError(domain.ErrModelUnavailable, "extract keywords", err)
	}

	parts := strings.Split(reply, ",")
	keywords := make([]string, 0, topN)
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		keywords = append(keywords, trimmed)
		if len(keywords) == topN {
			break
		}
	}
	return keywords, nil
}

// Summarizer asks the model for a short free-form summary.
type Summarizer struct {
	service ports.CompletionService
}

func NewSummarizer(service ports.CompletionService) *Summarizer {
	return &Summarizer{service: service}
}

func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	snippet := textnorm.Truncate(textnorm.Normalize(text), summaryWordBudget)
	reply, err := s.service.Complete(ctx, buildSummaryPrompt(snippet), ports.CompletionOptions{
		Stop:        []string{"\n\n"},
		Temperature: 0.3,
		MaxTokens:   100,
	})
	if err != nil {
		return "", domain.WrapError(domain.ErrModelUnavailable, "summarize", err)
	}
	return reply, nil
}
