package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/insightlab/insightsort/internal/core/domain"
)

type deleteOrganizerFake struct {
	removeErr    error
	removedPaths []string
	folderFiles  []string
	listedFolder string
}

func (f *deleteOrganizerFake) Move(context.Context, string, domain.Topic) (string, error) {
	return "", nil
}

func (f *deleteOrganizerFake) Remove(_ context.Context, path string) error {
	f.removedPaths = append(f.removedPaths, path)
	return f.removeErr
}

func (f *deleteOrganizerFake) ListFolder(_ context.Context, folder string) ([]string, error) {
	f.listedFolder = folder
	return f.folderFiles, nil
}

type deleteReportFake struct {
	removed   []string
	removeErr error
}

func (f *deleteReportFake) Append(context.Context, domain.ReportEntry) error { return nil }

func (f *deleteReportFake) Remove(_ context.Context, filename string) (int, error) {
	f.removed = append(f.removed, filename)
	if f.removeErr != nil {
		return 0, f.removeErr
	}
	return 1, nil
}

type deleteStoreFake struct {
	deleted      []string
	deletedBatch []string
	deleteErr    error
}

func (f *deleteStoreFake) Insert(context.Context, domain.MetadataRecord) (int64, error) {
	return 0, nil
}

func (f *deleteStoreFake) DeleteByFilename(_ context.Context, filename string) error {
	f.deleted = append(f.deleted, filename)
	return f.deleteErr
}

func (f *deleteStoreFake) DeleteForFolder(_ context.Context, filenames []string) error {
	f.deletedBatch = append(f.deletedBatch, filenames...)
	return nil
}

func (f *deleteStoreFake) QueryByTopic(context.Context, domain.Topic) ([]domain.MetadataRecord, error) {
	return nil, nil
}

func (f *deleteStoreFake) TopicCounts(context.Context) ([]domain.TopicCount, error) {
	return nil, nil
}

func TestDeleteRemovesAllThreeLayers(t *testing.T) {
	organizer := &deleteOrganizerFake{}
	report := &deleteReportFake{}
	store := &deleteStoreFake{}
	uc := NewDeleteOrganizedUseCase(organizer, report, store, slog.New(slog.DiscardHandler))

	if err := uc.Delete(context.Background(), "tech/notes.pdf"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(organizer.removedPaths) != 1 || organizer.removedPaths[0] != "tech/notes.pdf" {
		t.Fatalf("organizer removals = %v", organizer.removedPaths)
	}
	// The persistence layers are keyed by base filename, not path.
	if len(report.removed) != 1 || report.removed[0] != "notes.pdf" {
		t.Fatalf("report removals = %v", report.removed)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "notes.pdf" {
		t.Fatalf("store deletions = %v", store.deleted)
	}
}

func TestDeleteAttemptsEveryStepOnFailure(t *testing.T) {
	organizer := &deleteOrganizerFake{removeErr: errors.New("file gone")}
	report := &deleteReportFake{}
	store := &deleteStoreFake{}
	uc := NewDeleteOrganizedUseCase(organizer, report, store, slog.New(slog.DiscardHandler))

	err := uc.Delete(context.Background(), "legal/contract.docx")
	if err == nil {
		t.Fatal("expected joined error")
	}
	if len(report.removed) != 1 || len(store.deleted) != 1 {
		t.Fatal("later steps skipped after organizer failure")
	}
}

func TestDeleteJoinsAllErrors(t *testing.T) {
	organizerErr := errors.New("remove failed")
	storeErr := errors.New("delete failed")
	uc := NewDeleteOrganizedUseCase(
		&deleteOrganizerFake{removeErr: organizerErr},
		&deleteReportFake{},
		&deleteStoreFake{deleteErr: storeErr},
		slog.New(slog.DiscardHandler),
	)

	err := uc.Delete(context.Background(), "misc/a.txt")
	if !errors.Is(err, organizerErr) || !errors.Is(err, storeErr) {
		t.Fatalf("joined error missing parts: %v", err)
	}
}

func TestDeleteFolderDropsListedRecords(t *testing.T) {
	organizer := &deleteOrganizerFake{folderFiles: []string{"a.txt", "b.pdf"}}
	store := &deleteStoreFake{}
	uc := NewDeleteOrganizedUseCase(organizer, &deleteReportFake{}, store, slog.New(slog.DiscardHandler))

	if err := uc.DeleteFolder(context.Background(), "finance"); err != nil {
		t.Fatalf("DeleteFolder() error = %v", err)
	}
	if organizer.listedFolder != "finance" {
		t.Fatalf("listed folder = %s", organizer.listedFolder)
	}
	if len(store.deletedBatch) != 2 {
		t.Fatalf("batch deletions = %v", store.deletedBatch)
	}
}
