// Package csvlog implements the durable tabular report: one CSV row per
// successfully processed document, header written on first use, append-only
// except for filename-keyed deletion which rewrites the file.
package csvlog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/insightlab/insightsort/internal/core/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

var header = []string{"filename", "topic", "keywords", "summary", "processed_at"}

type Log struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Log {
	if path == "" {
		path = filepath.Join("output", "report.csv")
	}
	return &Log{path: path}
}

func (l *Log) Path() string { return l.path }

// Append writes one row, creating the log with its header first if needed.
func (l *Log) Append(_ context.Context, entry domain.ReportEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	_, statErr := os.Stat(l.path)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open report log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write report header: %w", err)
		}
	}
	row := []string{
		entry.Filename,
		string(entry.Topic),
		domain.JoinKeywords(entry.Keywords),
		entry.Summary,
		entry.ProcessedAt.Format(timestampLayout),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write report row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush report row: %w", err)
	}
	return nil
}

// Remove drops every row whose filename column equals filename, preserving
// the order of the remaining rows. A missing log is a no-op.
func (l *Log) Remove(_ context.Context, filename string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("open report log: %w", err)
	}

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	f.Close()
	if err != nil {
		return 0, fmt.Errorf("read report log: %w", err)
	}

	kept := rows[:0]
	removed := 0
	for i, row := range rows {
		if i > 0 && len(row) > 0 && row[0] == filename {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	if removed == 0 {
		return 0, nil
	}

	tmp := l.path + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return 0, fmt.Errorf("create report rewrite: %w", err)
	}
	w := csv.NewWriter(out)
	if err := w.WriteAll(kept); err != nil {
		out.Close()
		return 0, fmt.Errorf("rewrite report log: %w", err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("close report rewrite: %w", err)
	}
	if err := os.Rename(tmp, l.path); err != nil {
		return 0, fmt.Errorf("replace report log: %w", err)
	}
	return removed, nil
}
