package extractor

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/insightlab/insightsort/internal/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestExtractTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(path, []byte("hello\n\n  world\t!"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	g := NewGateway(testLogger())
	got, err := g.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "hello world !" {
		t.Fatalf("text = %q", got)
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	g := NewGateway(testLogger())
	_, err := g.Extract(context.Background(), "report.odt")
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("error kind = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtractMissingFileIsExtractionFailure(t *testing.T) {
	g := NewGateway(testLogger())
	_, err := g.Extract(context.Background(), filepath.Join(t.TempDir(), "gone.txt"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.ErrExtractionFailed) {
		t.Fatalf("error kind = %v, want ErrExtractionFailed", err)
	}
}

func TestExtractDropsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binaryish.txt")
	if err := os.WriteFile(path, []byte{'o', 'k', 0xff, 0xfe, ' ', 'g', 'o'}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	g := NewGateway(testLogger())
	got, err := g.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "ok go" {
		t.Fatalf("text = %q", got)
	}
}
