package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// Stage names the pipeline step a document is currently in. Failure is
// terminal for the document, never for the batch.
type Stage string

const (
	StageQueued      Stage = "queued"
	StageExtracting  Stage = "extracting"
	StageClassifying Stage = "classifying"
	StageMetadata    Stage = "extracting_metadata"
	StageOrganizing  Stage = "organizing"
	StagePersisting  Stage = "persisting"
	StageDone        Stage = "done"
	StageFailed      Stage = "failed"
)

// Document is the ephemeral processing unit for one queued source file.
// Only its derived metadata outlives the run.
type Document struct {
	SourcePath    string
	ExtractedText string
}

// Filename returns the base name used as the persistence key.
func (d Document) Filename() string {
	return filepath.Base(d.SourcePath)
}

// Extension returns the lower-cased file extension including the dot.
func (d Document) Extension() string {
	return strings.ToLower(filepath.Ext(d.SourcePath))
}

// ClassificationResult is produced once per document and immutable after.
type ClassificationResult struct {
	Topic    Topic
	Keywords []string
	Summary  string
}

// ReportEntry is one appended row of the durable tabular report log.
// Filename is the natural, non-unique key used for later deletion.
type ReportEntry struct {
	Filename    string
	Topic       Topic
	Keywords    []string
	Summary     string
	ProcessedAt time.Time
}

// MetadataRecord is the structured equivalent of a ReportEntry in the keyed
// metadata store.
type MetadataRecord struct {
	ID          int64
	Filename    string
	Topic       Topic
	Keywords    []string
	Summary     string
	ProcessedAt time.Time
}

// TopicCount pairs a topic with how many records it holds, ordered by count
// descending when returned from the store.
type TopicCount struct {
	Topic Topic
	Count int64
}

// JoinKeywords serializes a keyword list the way both persistence layers
// store it.
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}

// SplitKeywords is the inverse of JoinKeywords; empty input yields nil.
func SplitKeywords(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
