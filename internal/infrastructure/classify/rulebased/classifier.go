// Package rulebased implements the deterministic classifier and the
// rule-based keyword/summary extractors. Everything here is pure: no I/O,
// no external calls, no failure modes beyond empty output.
package rulebased

import (
	"context"
	"strings"

	"github.com/insightlab/insightsort/internal/core/domain"
	"github.com/insightlab/insightsort/internal/infrastructure/textnorm"
)

// Classifier scores text against the ordered taxonomy rules. The topic with
// the highest nonzero count of matching keyword phrases wins; ties go to the
// first topic in rule order because only a strictly greater score displaces
// the current best.
type Classifier struct {
	rules []domain.TopicRule
}

func NewClassifier() *Classifier {
	return &Classifier{rules: domain.TaxonomyRules}
}

func (c *Classifier) Classify(_ context.Context, text string) (domain.Topic, error) {
	lowered := strings.ToLower(textnorm.Normalize(text))
	if lowered == "" {
		return domain.TopicMisc, nil
	}

	best := domain.TopicMisc
	bestScore := 0
	for _, rule := range c.rules {
		score := 0
		for _, keyword := range rule.Keywords {
			// Plain substring containment, not word-boundary matching.
			if strings.Contains(lowered, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = rule.Topic
			bestScore = score
		}
	}
	return best, nil
}
