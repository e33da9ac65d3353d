package rulebased

import "strings"

// englishStopwords are common English words excluded from keyword scoring.
var englishStopwords = []string{
	"the", "a", "an", "is", "was", "are", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "shall", "can", "need", "dare", "ought",
	"to", "of", "in", "for", "on", "with", "at", "by", "from", "as",
	"into", "through", "during", "before", "after", "above", "below",
	"between", "out", "off", "over", "under", "again", "further", "then",
	"once", "and", "but", "or", "nor", "not", "so", "yet", "both",
	"either", "neither", "each", "every", "all", "any", "few", "more",
	"most", "other", "some", "such", "no", "only", "own", "same",
	"than", "too", "very", "just", "because", "if", "when", "while",
	"that", "which", "who", "whom", "this", "these", "those", "there",
	"here", "where", "why", "how", "what", "it", "its", "itself",
	"he", "him", "she", "his", "her", "hers", "they", "them", "their",
	"theirs", "we", "us", "our", "ours", "you", "your", "yours",
	"i", "me", "my", "mine", "up", "down", "about", "against",
}

func newStopwordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(englishStopwords))
	for _, w := range englishStopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
