package domain

import (
	"errors"
	"testing"
)

func TestParseTopicMatchesCaseInsensitively(t *testing.T) {
	cases := map[string]Topic{
		"Tech":      TopicTech,
		"tech":      TopicTech,
		"  LEGAL  ": TopicLegal,
		"misc":      TopicMisc,
	}
	for raw, want := range cases {
		if got := ParseTopic(raw); got != want {
			t.Fatalf("ParseTopic(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestParseTopicRejectsNonMembers(t *testing.T) {
	for _, raw := range []string{"", "Technology", "Tech.", "the topic is Tech", "finance news"} {
		if got := ParseTopic(raw); got != TopicMisc {
			t.Fatalf("ParseTopic(%q) = %s, want Misc", raw, got)
		}
	}
}

func TestFolderName(t *testing.T) {
	if got := TopicTech.FolderName(); got != "tech" {
		t.Fatalf("FolderName() = %q, want tech", got)
	}
	if got := Topic("Personal Notes").FolderName(); got != "personal_notes" {
		t.Fatalf("FolderName() = %q, want personal_notes", got)
	}
	if got := Topic("Q&A / Misc!").FolderName(); got != "qa__misc" {
		t.Fatalf("FolderName() = %q, want qa__misc", got)
	}
}

func TestAllTopicsEndsWithMisc(t *testing.T) {
	topics := AllTopics()
	if len(topics) != len(TaxonomyRules)+1 {
		t.Fatalf("AllTopics() returned %d topics", len(topics))
	}
	if topics[len(topics)-1] != TopicMisc {
		t.Fatalf("last topic = %s, want Misc", topics[len(topics)-1])
	}
}

func TestFailedStageReadsTheTag(t *testing.T) {
	err := FailStage(StageOrganizing, errors.New("disk full"))
	if got := FailedStage(err); got != StageOrganizing {
		t.Fatalf("FailedStage() = %s, want organizing", got)
	}
	if got := FailedStage(errors.New("untagged")); got != StageFailed {
		t.Fatalf("FailedStage(untagged) = %s, want failed", got)
	}
	if FailStage(StageExtracting, nil) != nil {
		t.Fatal("FailStage(nil) should stay nil")
	}
}

func TestWrapErrorKeepsKind(t *testing.T) {
	err := WrapError(ErrExtractionFailed, "extract .pdf", errors.New("bad xref"))
	if !IsKind(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed kind, got %v", err)
	}
	if WrapError(ErrExtractionFailed, "extract", nil) != nil {
		t.Fatal("wrapping nil should stay nil")
	}
}

func TestSplitKeywordsRoundTrip(t *testing.T) {
	keywords := []string{"neural", "server", "cloud"}
	got := SplitKeywords(JoinKeywords(keywords))
	if len(got) != 3 || got[0] != "neural" || got[2] != "cloud" {
		t.Fatalf("round trip = %v", got)
	}
	if SplitKeywords("  ") != nil {
		t.Fatal("blank input should yield nil")
	}
}
