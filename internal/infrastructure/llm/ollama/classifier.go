package ollama

import (
	"context"

	"github.com/insightlab/insightsort/internal/core/domain"
	"github.com/insightlab/insightsort/internal/core/ports"
	"github.com/insightlab/insightsort/internal/infrastructure/textnorm"
)

// Classifier asks the model for a single topic name. Replies that are not an
// exact taxonomy member resolve to Misc; the service failing resolves to the
// error, and the orchestrator owns the downgrade-to-Misc decision.
type Classifier struct {
	service ports.CompletionService
}

func NewClassifier(service ports.CompletionService) *Classifier {
	return &Classifier{service: service}
}

func (c *Classifier) Classify(ctx context.Context, text string) (domain.Topic, error) {
	snippet := textnorm.Truncate(textnorm.Normalize(text), classifyWordBudget)
	reply, err := c.service.Complete(ctx, buildClassifyPrompt(snippet), ports.CompletionOptions{
		Stop:        []string{"\n"},
		Temperature: 0.2,
		MaxTokens:   10,
	})
	if err != nil {
		return domain.TopicMisc, domain.WrapError(domain.ErrModelUnavailable, "classify", err)
	}
	return domain.ParseTopic(reply), nil
}
