package domain

import (
	"regexp"
	"strings"
)

// Topic is one element of the closed classification taxonomy.
type Topic string

const (
	TopicTech      Topic = "Tech"
	TopicHealth    Topic = "Health"
	TopicFinance   Topic = "Finance"
	TopicEducation Topic = "Education"
	TopicLegal     Topic = "Legal"
	TopicPersonal  Topic = "Personal"
	TopicNotes     Topic = "Notes"

	// TopicMisc is the fallback, never produced by a keyword match.
	TopicMisc Topic = "Misc"
)

// TopicRule binds a topic to the keyword phrases that vote for it.
type TopicRule struct {
	Topic    Topic
	Keywords []string
}

// TaxonomyRules is the ordered rule set for the keyword classifier. Order is
// part of the contract: on tied scores the earlier topic wins.
var TaxonomyRules = []TopicRule{
	{Topic: TopicTech, Keywords: []string{
		"ai", "software", "machine learning", "programming", "cloud",
		"neural", "python", "server", "network",
	}},
	{Topic: TopicHealth, Keywords: []string{
		"health", "medicine", "doctor", "exercise", "diet", "mental",
		"therapy", "disease",
	}},
	{Topic: TopicFinance, Keywords: []string{
		"stock", "investment", "money", "interest rate", "bank", "loan",
		"inflation", "trading",
	}},
	{Topic: TopicEducation, Keywords: []string{
		"student", "exam", "university", "teacher", "school", "lecture",
		"curriculum",
	}},
	{Topic: TopicLegal, Keywords: []string{
		"law", "contract", "court", "legal", "evidence", "attorney",
		"rights", "jurisdiction",
	}},
	{Topic: TopicPersonal, Keywords: []string{
		"journal", "diary", "my life", "experience", "feelings", "goals",
	}},
	{Topic: TopicNotes, Keywords: []string{
		"notes", "summary", "lecture notes", "meeting", "to-do", "checklist",
	}},
}

// AllTopics returns the taxonomy including the Misc fallback, in rule order.
func AllTopics() []Topic {
	topics := make([]Topic, 0, len(TaxonomyRules)+1)
	for _, rule := range TaxonomyRules {
		topics = append(topics, rule.Topic)
	}
	return append(topics, TopicMisc)
}

// ParseTopic maps a raw model reply onto the taxonomy, case-insensitively.
// Anything that is not an exact topic name parses as Misc.
func ParseTopic(raw string) Topic {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	for _, topic := range AllTopics() {
		if cleaned == strings.ToLower(string(topic)) {
			return topic
		}
	}
	return TopicMisc
}

var folderNameStrip = regexp.MustCompile(`[^\w_]`)

// FolderName derives the organized-output directory name: lower-cased,
// spaces to underscores, all other non-word runes removed.
func (t Topic) FolderName() string {
	name := strings.ToLower(string(t))
	name = strings.ReplaceAll(name, " ", "_")
	return folderNameStrip.ReplaceAllString(name, "")
}
