package rulebased

import (
	"context"
	"strings"

	"github.com/insightlab/insightsort/internal/infrastructure/textnorm"
)

const (
	defaultMaxSentences = 3
	minSentenceLength   = 21
)

// Summarizer keeps the first sentences long enough to carry content.
type Summarizer struct {
	maxSentences int
}

func NewSummarizer(maxSentences int) *Summarizer {
	if maxSentences <= 0 {
		maxSentences = defaultMaxSentences
	}
	return &Summarizer{maxSentences: maxSentences}
}

// Summarize splits normalized text on sentence-terminating periods and keeps
// the first maxSentences whose trimmed length exceeds 20 characters, rejoined
// with ". " and a trailing period. Empty when no sentence qualifies.
func (s *Summarizer) Summarize(_ context.Context, text string) (string, error) {
	sentences := strings.Split(textnorm.Normalize(text), ".")
	kept := make([]string, 0, s.maxSentences)
	for _, sentence := range sentences {
		trimmed := strings.TrimSpace(sentence)
		if len(trimmed) >= minSentenceLength {
			kept = append(kept, trimmed)
			if len(kept) == s.maxSentences {
				break
			}
		}
	}
	if len(kept) == 0 {
		return "", nil
	}
	return strings.Join(kept, ". ") + ".", nil
}
