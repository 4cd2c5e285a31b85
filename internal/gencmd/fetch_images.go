package gencmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/devtype-tools/devtypegen/internal/batch"
	"github.com/devtype-tools/devtypegen/internal/devicetype"
	"github.com/devtype-tools/devtypegen/internal/images"
)

func executeFetchImages(table, output string) error {
	slog.Info("Starting photo download", "table", table, "output", output)

	records, summary, err := loadTable(table)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(output, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fetcher := images.NewFetcher()

	for _, rec := range records {
		for _, view := range devicetype.Views {
			url := rec.ImageURL(view)
			if url == "" {
				slog.Debug("No photo URL", "model", rec.Model, "view", view)
				summary.Skip()
				continue
			}

			dst := filepath.Join(output, devicetype.ImageFilename(&rec, view))
			if fileExists(dst) {
				slog.Info("Photo already exists, skipping", "model", rec.Model, "view", view)
				summary.Skip()
				continue
			}

			if err := fetcher.Download(url, dst); err != nil {
				slog.Error("Failed to download photo", "model", rec.Model, "view", view, "url", url, "error", err)
				summary.Fail(batch.Errorf(batch.KindResource, fmt.Sprintf("%s %s", rec.Model, view), "%v", err))
				continue
			}

			slog.Info("Downloaded photo", "model", rec.Model, "view", view, "path", dst)
			summary.Success()
		}
	}

	printSummary("Photo download", summary, output)

	return summary.Err()
}
