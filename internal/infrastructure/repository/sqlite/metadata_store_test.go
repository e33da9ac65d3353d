package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/insightlab/insightsort/internal/core/domain"
)

func openTestStore(t *testing.T) *MetadataStore {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewMetadataStore(db)
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	return store
}

func record(filename string, topic domain.Topic, at time.Time) domain.MetadataRecord {
	return domain.MetadataRecord{
		Filename:    filename,
		Topic:       topic,
		Keywords:    []string{"alpha", "beta"},
		Summary:     "short summary",
		ProcessedAt: at,
	}
}

func TestInsertAndQueryByTopicNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, name := range []string{"old.pdf", "mid.txt", "new.docx"} {
		id, err := store.Insert(ctx, record(name, domain.TopicTech, base.Add(time.Duration(i)*time.Hour)))
		if err != nil {
			t.Fatalf("Insert(%s) error = %v", name, err)
		}
		if id <= 0 {
			t.Fatalf("Insert(%s) id = %d", name, id)
		}
	}
	if _, err := store.Insert(ctx, record("other.txt", domain.TopicHealth, base)); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	records, err := store.QueryByTopic(ctx, domain.TopicTech)
	if err != nil {
		t.Fatalf("QueryByTopic() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("record count = %d, want 3", len(records))
	}
	if records[0].Filename != "new.docx" || records[2].Filename != "old.pdf" {
		t.Fatalf("records not newest first: %s .. %s", records[0].Filename, records[2].Filename)
	}
	if len(records[0].Keywords) != 2 || records[0].Keywords[0] != "alpha" {
		t.Fatalf("keywords = %v", records[0].Keywords)
	}
	if !records[0].ProcessedAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("processed_at = %v", records[0].ProcessedAt)
	}
}

func TestTopicCountsDescending(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	for range 3 {
		if _, err := store.Insert(ctx, record("t.txt", domain.TopicTech, now)); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	if _, err := store.Insert(ctx, record("h.txt", domain.TopicHealth, now)); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	counts, err := store.TopicCounts(ctx)
	if err != nil {
		t.Fatalf("TopicCounts() error = %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("count groups = %d, want 2", len(counts))
	}
	if counts[0].Topic != domain.TopicTech || counts[0].Count != 3 {
		t.Fatalf("first group = %+v", counts[0])
	}
	if counts[1].Topic != domain.TopicHealth || counts[1].Count != 1 {
		t.Fatalf("second group = %+v", counts[1])
	}
}

func TestDeleteByFilenameDropsEveryMatch(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	for _, name := range []string{"dup.txt", "dup.txt", "other.txt"} {
		if _, err := store.Insert(ctx, record(name, domain.TopicNotes, now)); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	if err := store.DeleteByFilename(ctx, "dup.txt"); err != nil {
		t.Fatalf("DeleteByFilename() error = %v", err)
	}
	records, err := store.QueryByTopic(ctx, domain.TopicNotes)
	if err != nil {
		t.Fatalf("QueryByTopic() error = %v", err)
	}
	if len(records) != 1 || records[0].Filename != "other.txt" {
		t.Fatalf("records after delete = %v", records)
	}
}

func TestDeleteForFolder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		if _, err := store.Insert(ctx, record(name, domain.TopicMisc, now)); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	if err := store.DeleteForFolder(ctx, []string{"a.txt", "c.txt"}); err != nil {
		t.Fatalf("DeleteForFolder() error = %v", err)
	}
	records, err := store.QueryByTopic(ctx, domain.TopicMisc)
	if err != nil {
		t.Fatalf("QueryByTopic() error = %v", err)
	}
	if len(records) != 1 || records[0].Filename != "b.txt" {
		t.Fatalf("records after folder delete = %v", records)
	}
}

func TestInsertPropagatesDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO file_memory").WillReturnError(errors.New("disk I/O error"))

	store := NewMetadataStore(db)
	if _, err := store.Insert(context.Background(), record("x.txt", domain.TopicTech, time.Now())); err == nil {
		t.Fatal("expected insert error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQueryByTopicPropagatesScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "filename", "topic", "keywords", "summary", "processed_at"}).
		AddRow(1, "a.txt", "Tech", "", "", "not-a-timestamp")
	mock.ExpectQuery("SELECT id, filename, topic").WillReturnRows(rows)

	store := NewMetadataStore(db)
	if _, err := store.QueryByTopic(context.Background(), domain.TopicTech); err == nil {
		t.Fatal("expected parse error for malformed processed_at")
	}
}
