// Package extractor dispatches text extraction by file extension.
package extractor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/insightlab/insightsort/internal/core/domain"
	"github.com/insightlab/insightsort/internal/infrastructure/textnorm"
)

// backend extracts raw text from one file format.
type backend func(ctx context.Context, path string) (string, error)

// Gateway routes a source file to the extractor for its extension and
// normalizes whatever comes back. Failures are returned as tagged errors; the
// caller decides whether to treat missing text as fatal.
type Gateway struct {
	backends map[string]backend
	logger   *slog.Logger
}

func NewGateway(logger *slog.Logger) *Gateway {
	return &Gateway{
		backends: map[string]backend{
			".txt":  extractText,
			".pdf":  extractPDF,
			".docx": extractDocx,
			".xlsx": extractXLSX,
		},
		logger: logger,
	}
}

func (g *Gateway) Extract(ctx context.Context, path string) (string, error) {
	doc := domain.Document{SourcePath: path}
	ext := doc.Extension()

	extract, ok := g.backends[ext]
	if !ok {
		g.logger.Warn("unsupported file type", "path", path, "extension", ext)
		return "", domain.WrapError(domain.ErrUnsupportedFormat, "extract", fmt.Errorf("extension %q", ext))
	}

	raw, err := extract(ctx, path)
	if err != nil {
		g.logger.Error("text extraction failed", "path", path, "error", err)
		return "", domain.WrapError(domain.ErrExtractionFailed, "extract "+ext, err)
	}
	return textnorm.Normalize(raw), nil
}
