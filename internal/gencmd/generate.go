// Package gencmd implements the devtypegen subcommands. Each command is a
// one-shot batch over the model table: every record is attempted, per-record
// failures are collected into a summary, and the command returns an error
// (non-zero exit) when any record failed.
package gencmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/devtype-tools/devtypegen/internal/batch"
	"github.com/devtype-tools/devtypegen/internal/dataset"
	"github.com/devtype-tools/devtypegen/internal/devicetype"
)

func executeGenerate(input, output, imagesDir string) error {
	slog.Info("Starting definition generation", "input", input, "output", output)

	records, summary, err := loadTable(input)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(output, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, rec := range records {
		slog.Info("Processing record", "index", i+1, "total", len(records), "model", rec.Model)

		front := fileExists(filepath.Join(imagesDir, devicetype.ImageFilename(&rec, devicetype.ViewFront)))
		rear := fileExists(filepath.Join(imagesDir, devicetype.ImageFilename(&rec, devicetype.ViewRear)))

		dev := devicetype.Build(&rec, front, rear)

		path, err := devicetype.Write(&rec, dev, output)
		if err != nil {
			slog.Error("Failed to write definition", "model", rec.Model, "error", err)
			summary.Fail(batch.Errorf(batch.KindResource, rec.Model, "%v", err))
			continue
		}

		slog.Info("Generated definition", "model", rec.Model, "path", path)
		summary.Success()
	}

	printSummary("Definition generation", summary, output)

	return summary.Err()
}

// loadTable loads the model table and seeds a summary with any rows the
// loader rejected. A load failure here is a whole-run precondition failure.
func loadTable(path string) ([]dataset.ModelRecord, *batch.Summary, error) {
	loader := dataset.NewLoader(path)

	records, diags, err := loader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load model table: %w", err)
	}

	slog.Info("Loaded model table", "records", len(records), "rejected", len(diags))

	summary := &batch.Summary{}
	for _, d := range diags {
		slog.Warn("Rejected row", "id", d.ID, "error", d.Err)
		summary.Fail(d)
	}

	return records, summary, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// printSummary prints the final batch report, including one line per failed
// record so partial runs are diagnosable from the console output alone.
func printSummary(task string, s *batch.Summary, output string) {
	fmt.Printf("\n%s complete!\n", task)
	fmt.Printf("  Successfully processed: %d\n", s.OK)
	fmt.Printf("  Skipped: %d\n", s.Skipped)
	fmt.Printf("  Failed: %d\n", s.Failed())
	for _, f := range s.Failures {
		fmt.Printf("    - %s\n", f)
	}
	if output != "" {
		fmt.Printf("  Output location: %s\n", output)
	}
}
