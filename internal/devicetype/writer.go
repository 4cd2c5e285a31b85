package devicetype

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devtype-tools/devtypegen/internal/dataset"
	"gopkg.in/yaml.v3"
)

// Write renders the document to YAML and writes it into dir under the
// record's deterministic filename, overwriting any previous run's output.
// Returns the path written.
func Write(rec *dataset.ModelRecord, dev *Device, dir string) (string, error) {
	data, err := Marshal(dev)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, Filename(rec))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write definition file: %w", err)
	}

	return path, nil
}

// Marshal renders the document as a YAML file body: a leading document
// marker followed by the definition with 2-space indentation, matching the
// formatting of existing library submissions.
func Marshal(dev *Device) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(dev); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize YAML: %w", err)
	}

	return buf.Bytes(), nil
}
