// Package filewriter persists rendered output to the local filesystem.
package filewriter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driven"
	"github.com/FabioLiberti/EHDSLens/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.FileWriter = (*Writer)(nil)

// Writer writes payloads to disk, creating parent directories as needed.
type Writer struct{}

// NewWriter creates a new filesystem writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores payload at path. Existing files are overwritten.
func (w *Writer) Write(_ context.Context, path string, payload []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Info("Wrote %d bytes to %s", len(payload), path)
	return nil
}
