// Package sqlite persists per-document metadata in an embedded SQLite
// database. Every write is its own single-row commit; a crash mid-batch
// loses at most the in-flight row.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/insightlab/insightsort/internal/core/domain"
)

type MetadataStore struct {
	db *sql.DB
}

func NewMetadataStore(db *sql.DB) *MetadataStore {
	return &MetadataStore{db: db}
}

// Open creates the database file (and its directory) if absent and enables
// WAL so a concurrent reporting reader never blocks the writer.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return db, nil
}

// EnsureSchema is idempotent and safe to call on every startup.
func (s *MetadataStore) EnsureSchema(ctx context.Context) error {
	const query = `
CREATE TABLE IF NOT EXISTS file_memory (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	filename TEXT NOT NULL,
	topic TEXT NOT NULL,
	keywords TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT '',
	processed_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_file_memory_topic ON file_memory(topic);
CREATE INDEX IF NOT EXISTS idx_file_memory_filename ON file_memory(filename);
`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}
	return nil
}

func (s *MetadataStore) Insert(ctx context.Context, record domain.MetadataRecord) (int64, error) {
	processedAt := record.ProcessedAt
	if processedAt.IsZero() {
		processedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO file_memory (filename, topic, keywords, summary, processed_at)
VALUES (?, ?, ?, ?, ?)
`,
		record.Filename,
		string(record.Topic),
		domain.JoinKeywords(record.Keywords),
		record.Summary,
		processedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert metadata: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("metadata insert id: %w", err)
	}
	return id, nil
}

func (s *MetadataStore) DeleteByFilename(ctx context.Context, filename string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM file_memory WHERE filename = ?`, filename); err != nil {
		return fmt.Errorf("delete metadata: %w", err)
	}
	return nil
}

// DeleteForFolder removes the records for every filename in one folder
// listing. Each delete commits on its own; a failure stops the walk.
func (s *MetadataStore) DeleteForFolder(ctx context.Context, filenames []string) error {
	for _, filename := range filenames {
		if err := s.DeleteByFilename(ctx, filename); err != nil {
			return err
		}
	}
	return nil
}

func (s *MetadataStore) QueryByTopic(ctx context.Context, topic domain.Topic) ([]domain.MetadataRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, filename, topic, keywords, summary, processed_at
FROM file_memory
WHERE topic = ?
ORDER BY processed_at DESC, id DESC
`, string(topic))
	if err != nil {
		return nil, fmt.Errorf("query by topic: %w", err)
	}
	defer rows.Close()

	var records []domain.MetadataRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate metadata rows: %w", err)
	}
	return records, nil
}

func (s *MetadataStore) TopicCounts(ctx context.Context) ([]domain.TopicCount, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT topic, COUNT(*) AS count
FROM file_memory
GROUP BY topic
ORDER BY count DESC, topic ASC
`)
	if err != nil {
		return nil, fmt.Errorf("query topic counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.TopicCount
	for rows.Next() {
		var tc domain.TopicCount
		var topic string
		if err := rows.Scan(&topic, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan topic count: %w", err)
		}
		tc.Topic = domain.Topic(topic)
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topic counts: %w", err)
	}
	return counts, nil
}

func scanRecord(rows *sql.Rows) (domain.MetadataRecord, error) {
	var record domain.MetadataRecord
	var topic, keywords, processedAt string
	if err := rows.Scan(&record.ID, &record.Filename, &topic, &keywords, &record.Summary, &processedAt); err != nil {
		return domain.MetadataRecord{}, fmt.Errorf("scan metadata row: %w", err)
	}
	record.Topic = domain.Topic(topic)
	record.Keywords = domain.SplitKeywords(keywords)
	ts, err := time.Parse(time.RFC3339Nano, processedAt)
	if err != nil {
		return domain.MetadataRecord{}, fmt.Errorf("parse processed_at: %w", err)
	}
	record.ProcessedAt = ts
	return record, nil
}
