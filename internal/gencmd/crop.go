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

func executeCrop(table, source, output, rect string) error {
	slog.Info("Starting photo cropping", "table", table, "source", source, "output", output)

	var defaultSpec *images.CropSpec
	if rect != "" {
		spec, err := images.ParseCropSpec(rect)
		if err != nil {
			return fmt.Errorf("invalid --rect: %w", err)
		}
		defaultSpec = &spec
	}

	records, summary, err := loadTable(table)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(output, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, rec := range records {
		for _, view := range devicetype.Views {
			id := fmt.Sprintf("%s %s", rec.Model, view)

			spec := defaultSpec
			override := rec.CropOverride(view)
			if override != "" {
				parsed, err := images.ParseCropSpec(override)
				if err != nil {
					slog.Error("Invalid crop override", "model", rec.Model, "view", view, "error", err)
					summary.Fail(batch.Errorf(batch.KindGeometry, id, "%v", err))
					continue
				}
				spec = &parsed
			}

			if spec == nil {
				slog.Debug("No crop configured", "model", rec.Model, "view", view)
				summary.Skip()
				continue
			}

			name := devicetype.ImageFilename(&rec, view)
			img, err := images.Load(filepath.Join(source, name))
			if err != nil {
				slog.Error("Failed to open source photo", "model", rec.Model, "view", view, "error", err)
				summary.Fail(batch.Errorf(batch.KindResource, id, "%v", err))
				continue
			}

			cropped, err := images.Crop(img, *spec)
			if err != nil {
				slog.Error("Invalid crop rectangle", "model", rec.Model, "view", view, "error", err)
				summary.Fail(batch.Errorf(batch.KindGeometry, id, "%v", err))
				continue
			}

			dst := filepath.Join(output, name)
			if err := images.Save(cropped, dst); err != nil {
				slog.Error("Failed to save cropped image", "model", rec.Model, "view", view, "error", err)
				summary.Fail(batch.Errorf(batch.KindResource, id, "%v", err))
				continue
			}

			slog.Info("Cropped image", "model", rec.Model, "view", view, "path", dst, "size", fmt.Sprintf("%dx%d", spec.Width(), spec.Height()))
			summary.Success()
		}
	}

	printSummary("Photo cropping", summary, output)

	return summary.Err()
}
