package gencmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/devtype-tools/devtypegen/internal/batch"
	"github.com/devtype-tools/devtypegen/internal/images"
)

func executeNormalize(dir, prefix string) error {
	slog.Info("Starting elevation normalization", "dir", dir, "in_place", prefix == "")

	// A missing image directory fails the whole run up front; Glob would
	// silently report an empty, fully successful batch.
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("image directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("image directory is not a directory: %s", dir)
	}

	entries, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return fmt.Errorf("failed to list directory: %w", err)
	}

	summary := &batch.Summary{}

	for _, src := range entries {
		name := filepath.Base(src)
		if !strings.EqualFold(filepath.Ext(name), ".png") {
			continue
		}

		dst := src
		if prefix != "" {
			dst = filepath.Join(dir, prefix+name)
		}

		if err := images.Normalize(src, dst); err != nil {
			slog.Error("Failed to normalize image", "file", name, "error", err)
			summary.Fail(batch.Errorf(batch.KindResource, name, "%v", err))
			continue
		}

		slog.Info("Normalized image", "file", name, "output", dst)
		summary.Success()
	}

	printSummary("Elevation normalization", summary, dir)

	return summary.Err()
}
