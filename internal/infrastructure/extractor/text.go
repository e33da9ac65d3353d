package extractor

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func extractText(_ context.Context, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	// Invalid UTF-8 bytes are dropped rather than failing the document.
	return strings.ToValidUTF8(string(raw), ""), nil
}
