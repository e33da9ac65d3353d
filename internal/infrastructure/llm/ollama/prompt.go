package ollama

import (
	"fmt"
	"strings"

	"github.com/insightlab/insightsort/internal/core/domain"
)

const (
	classifyWordBudget = 500
	keywordWordBudget  = 400
	summaryWordBudget  = 500
)

func buildClassifyPrompt(text string) string {
	topics := domain.AllTopics()
	names := make([]string, len(topics))
	for i, topic := range topics {
		names[i] = string(topic)
	}

	return fmt.Sprintf(`You are a smart document classifier. Classify the following document into one of the following categories:
%s

Document:
"""
%s
"""

Respond only with the topic name, nothing else.
`, strings.Join(names, ", "), text)
}

func buildKeywordPrompt(text string, topN int) string {
	return fmt.Sprintf(`Extract the %d most important keywords from the following document:

"""
%s
"""

Return them as a comma-separated list only.
`, topN, text)
}

func buildSummaryPrompt(text string) string {
	return fmt.Sprintf(`Summarize the following document in 2-3 sentences:

"""
%s
"""
`, text)
}
