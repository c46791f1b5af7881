package board

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/leoyouyang/snack-time/internal/export"
)

// now is replaced in tests.
var now = time.Now

// DefaultFileName returns a timestamped PNG name.
func DefaultFileName(t time.Time) string {
	return "snacktime-" + t.Format("20060102-150405") + ".png"
}

// Export writes the canvas to path and returns the file written. An empty
// path or a directory gets a timestamped PNG name, under the save directory
// when path is empty.
func (b *Board) Export(path string) (string, error) {
	path = b.resolvePath(path)
	if err := export.WriteFile(path, b.raster.Image()); err != nil {
		b.log.Warn("export failed", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("export: %w", err)
	}
	b.log.Info("exported", zap.String("path", path))
	return path, nil
}

func (b *Board) resolvePath(path string) string {
	if path == "" {
		return filepath.Join(b.saveDir, DefaultFileName(now()))
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, DefaultFileName(now()))
	}
	return path
}

// ExportURI returns the canvas as a PNG data URI.
func (b *Board) ExportURI() (string, error) {
	uri, err := export.DataURI(b.raster.Image())
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return uri, nil
}

// ExportPNG returns the canvas encoded as PNG.
func (b *Board) ExportPNG() ([]byte, error) {
	data, err := export.EncodePNG(b.raster.Image())
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return data, nil
}
