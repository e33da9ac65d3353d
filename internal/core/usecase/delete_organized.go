package usecase

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/insightlab/insightsort/internal/core/ports"
)

// DeleteOrganizedUseCase undoes one organized document: the file itself, its
// report rows and its metadata records, all keyed by base filename. The two
// stores are only advisorily consistent, so every step is attempted even
// when an earlier one fails.
type DeleteOrganizedUseCase struct {
	organizer ports.FileOrganizer
	report    ports.ReportLog
	store     ports.MetadataStore
	logger    *slog.Logger
}

func NewDeleteOrganizedUseCase(
	organizer ports.FileOrganizer,
	report ports.ReportLog,
	store ports.MetadataStore,
	logger *slog.Logger,
) *DeleteOrganizedUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeleteOrganizedUseCase{
		organizer: organizer,
		report:    report,
		store:     store,
		logger:    logger,
	}
}

// Delete removes the organized file, then all report rows and metadata
// records sharing its base filename. Matching is by bare filename: if two
// organized files share a basename, both layers drop every match.
func (uc *DeleteOrganizedUseCase) Delete(ctx context.Context, organizedPath string) error {
	filename := filepath.Base(organizedPath)

	var errs []error
	if err := uc.organizer.Remove(ctx, organizedPath); err != nil {
		errs = append(errs, err)
	}
	removed, err := uc.report.Remove(ctx, filename)
	if err != nil {
		errs = append(errs, err)
	} else if removed > 0 {
		uc.logger.Info("removed report rows", "filename", filename, "rows", removed)
	}
	if err := uc.store.DeleteByFilename(ctx, filename); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// DeleteFolder drops the metadata records for every file currently listed in
// a topic folder. The files and the report log are left alone.
func (uc *DeleteOrganizedUseCase) DeleteFolder(ctx context.Context, folder string) error {
	filenames, err := uc.organizer.ListFolder(ctx, folder)
	if err != nil {
		return err
	}
	return uc.store.DeleteForFolder(ctx, filenames)
}
